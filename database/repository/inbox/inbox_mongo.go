package inboxRepo

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

// MongoInboxRepo implements InboxRepository using MongoDB.
type MongoInboxRepo struct {
	coll *mongo.Collection
}

// NewMongoInboxRepo creates a new instance of InboxRepository using MongoDB.
func NewMongoInboxRepo() InboxRepository {
	repo := &MongoInboxRepo{coll: database.Collection("messages")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoInboxRepo) ensureIndexes() error {
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

// Create inserts a new contact message document.
func (r *MongoInboxRepo) Create(m *models.ContactMessage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// GetAll retrieves contact messages newest first.
func (r *MongoInboxRepo) GetAll() ([]models.ContactMessage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve contact messages: %w", err)
	}
	defer cursor.Close(ctx)

	var msgs []models.ContactMessage
	for cursor.Next(ctx) {
		var m models.ContactMessage
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode contact message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// Delete removes a contact message document by its ID.
func (r *MongoInboxRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete contact message with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("contact message with id %s not found", id)
	}
	return nil
}
