package catalogRepo

import "drdhobi/models"

// CatalogRepository defines methods for service catalog data access.
type CatalogRepository interface {
	// GetAll retrieves all catalog entries ordered by display order.
	GetAll() ([]models.ServiceItem, error)
	// Upsert inserts or replaces a catalog entry by ID.
	Upsert(item *models.ServiceItem) error
	// Delete removes a catalog entry by its ID.
	Delete(id string) error
}
