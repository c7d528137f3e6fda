package settingsRepo

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

const (
	pricingDocID = "pricing"
	siteDocID    = "site"
)

// MongoSettingsRepo implements SettingsRepository using MongoDB. Both
// singleton documents live in the "settings" collection, keyed by _id.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo creates a new instance of SettingsRepository using MongoDB.
func NewMongoSettingsRepo() SettingsRepository {
	return &MongoSettingsRepo{coll: database.Collection("settings")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

type pricingDoc struct {
	ID     string               `bson:"_id"`
	Config models.PricingConfig `bson:"config"`
}

type siteDoc struct {
	ID       string              `bson:"_id"`
	Settings models.SiteSettings `bson:"settings"`
}

// GetPricing retrieves the pricing configuration.
func (r *MongoSettingsRepo) GetPricing() (*models.PricingConfig, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc pricingDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": pricingDocID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch pricing configuration: %w", err)
	}
	return &doc.Config, nil
}

// SetPricing replaces the stored pricing configuration wholesale. The
// previous configuration is irrecoverably overwritten.
func (r *MongoSettingsRepo) SetPricing(cfg *models.PricingConfig) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cfg.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	doc := pricingDoc{ID: pricingDocID, Config: *cfg}
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": pricingDocID}, doc, opts); err != nil {
		return fmt.Errorf("failed to save pricing configuration: %w", err)
	}
	return nil
}

// GetSite retrieves the site settings.
func (r *MongoSettingsRepo) GetSite() (*models.SiteSettings, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc siteDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": siteDocID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch site settings: %w", err)
	}
	return &doc.Settings, nil
}

// SetSite replaces the stored site settings wholesale.
func (r *MongoSettingsRepo) SetSite(s *models.SiteSettings) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	s.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	doc := siteDoc{ID: siteDocID, Settings: *s}
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": siteDocID}, doc, opts); err != nil {
		return fmt.Errorf("failed to save site settings: %w", err)
	}
	return nil
}
