package tokenRepo

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

// MongoTokenRepo implements TokenRepository using MongoDB.
type MongoTokenRepo struct {
	coll *mongo.Collection
}

// NewMongoTokenRepo creates a new instance of TokenRepository using MongoDB.
func NewMongoTokenRepo() TokenRepository {
	repo := &MongoTokenRepo{coll: database.Collection("adminTokens")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTokenRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Save registers a token, replacing any prior registration.
func (r *MongoTokenRepo) Save(t *models.AdminToken) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"token": t.Token}, t, opts); err != nil {
		return fmt.Errorf("failed to save admin token: %w", err)
	}
	return nil
}

// GetAll retrieves every registered token.
func (r *MongoTokenRepo) GetAll() ([]models.AdminToken, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve admin tokens: %w", err)
	}
	defer cursor.Close(ctx)

	var tokens []models.AdminToken
	for cursor.Next(ctx) {
		var t models.AdminToken
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode admin token: %w", err)
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

// DeleteByToken removes a registration by its token string.
func (r *MongoTokenRepo) DeleteByToken(token string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"token": token}); err != nil {
		return fmt.Errorf("failed to delete admin token: %w", err)
	}
	return nil
}
