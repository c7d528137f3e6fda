package quoteRepo

import (
	"context"
	"fmt"
	"time"

	"drdhobi/database"
	"drdhobi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoQuoteRepo implements QuoteRepository using MongoDB.
type MongoQuoteRepo struct {
	coll *mongo.Collection
}

// NewMongoQuoteRepo creates a new instance of QuoteRepository using MongoDB.
func NewMongoQuoteRepo() QuoteRepository {
	repo := &MongoQuoteRepo{coll: database.Collection("quoteRequests")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoQuoteRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new quote request document.
func (r *MongoQuoteRepo) Create(q *models.QuoteRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, q)
	if err != nil {
		return fmt.Errorf("failed to create quote request: %w", err)
	}
	return nil
}

// GetAll retrieves quote requests newest first.
func (r *MongoQuoteRepo) GetAll() ([]models.QuoteRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve quote requests: %w", err)
	}
	defer cursor.Close(ctx)

	var quotes []models.QuoteRequest
	for cursor.Next(ctx) {
		var q models.QuoteRequest
		if err := cursor.Decode(&q); err != nil {
			return nil, fmt.Errorf("failed to decode quote request: %w", err)
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// SetStatus writes a new status and stamps updated_at.
func (r *MongoQuoteRepo) SetStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update quote request with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("quote request with id %s not found", id)
	}
	return nil
}

// Delete removes a quote request document by its ID.
func (r *MongoQuoteRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete quote request with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("quote request with id %s not found", id)
	}
	return nil
}
