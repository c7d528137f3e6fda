package quoteRepo

import "drdhobi/models"

// QuoteRepository defines methods for quote request data access.
type QuoteRepository interface {
	// Create inserts a new quote request.
	Create(q *models.QuoteRequest) error
	// GetAll retrieves quote requests newest first.
	GetAll() ([]models.QuoteRequest, error)
	// SetStatus writes a new status and stamps updated_at.
	SetStatus(id, status string) error
	// Delete removes a quote request by its ID.
	Delete(id string) error
}
