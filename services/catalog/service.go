package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	catalogRepo "drdhobi/database/repository/catalog"
	"drdhobi/models"
	"drdhobi/utils"

	"go.uber.org/zap"
)

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a catalog ID from a service name.
func Slugify(name string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// CatalogService manages the public service catalog.
type CatalogService interface {
	// GetAll returns all catalog entries, seeding the defaults when the
	// store is empty.
	GetAll() ([]models.ServiceItem, error)
	// Save inserts or updates a catalog entry, deriving an ID from the
	// name when none is given.
	Save(item models.ServiceItem) (*models.ServiceItem, error)
	// Delete removes a catalog entry by ID.
	Delete(id string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}

// GetAll returns the catalog, seeding defaults the first time it is read.
func (s *DefaultCatalogService) GetAll() ([]models.ServiceItem, error) {
	items, err := s.Repo.GetAll()
	if err != nil {
		// Serve the built-in defaults so the public site keeps working.
		utils.GetLogger().Error("catalog fetch failed, serving defaults", zap.Error(err))
		return s.seeded(), nil
	}
	if len(items) == 0 {
		defaults := s.seeded()
		for i := range defaults {
			if err := s.Repo.Upsert(&defaults[i]); err != nil {
				utils.GetLogger().Error("failed to seed default service",
					zap.String("id", defaults[i].ID), zap.Error(err))
			}
		}
		return defaults, nil
	}
	return items, nil
}

// Save inserts or updates a catalog entry.
func (s *DefaultCatalogService) Save(item models.ServiceItem) (*models.ServiceItem, error) {
	if item.ID == "" {
		if item.Name == "" {
			return nil, fmt.Errorf("service name is required")
		}
		item.ID = Slugify(item.Name)
	}
	if item.ID == "" {
		return nil, fmt.Errorf("could not derive a service ID from %q", item.Name)
	}
	if item.Icon == "" {
		item.Icon = "default"
	}
	if item.Features == nil {
		item.Features = []string{}
	}
	if item.Pricing == nil {
		item.Pricing = []models.PriceLine{}
	}
	if item.Turnaround == "" {
		item.Turnaround = "24 hours"
	}
	if item.Order == 0 {
		item.Order = 99
	}
	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now
	if err := s.Repo.Upsert(&item); err != nil {
		return nil, fmt.Errorf("failed to save service: %w", err)
	}
	return &item, nil
}

// Delete removes a catalog entry.
func (s *DefaultCatalogService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("service ID is required")
	}
	return s.Repo.Delete(id)
}

func (s *DefaultCatalogService) seeded() []models.ServiceItem {
	items := DefaultServices()
	now := time.Now()
	for i := range items {
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}
	return items
}
