package quote

import (
	"context"
	"fmt"

	quoteRepo "drdhobi/database/repository/quote"
	"drdhobi/models"
	"drdhobi/services/pricing"

	"github.com/google/uuid"
)

// QuoteService manages instant-quote submissions.
type QuoteService interface {
	// Create stores a quote request, computing the estimated cost from the
	// current pricing configuration. userID may be empty.
	Create(ctx context.Context, input models.QuoteInput, userID string) (*models.QuoteRequest, error)
	// GetAll retrieves quote requests newest first (admin).
	GetAll() ([]models.QuoteRequest, error)
	// UpdateStatus advances a quote's status (admin).
	UpdateStatus(id, status string) error
	// Delete removes a quote request (admin).
	Delete(id string) error
}

// DefaultQuoteService is the production implementation.
type DefaultQuoteService struct {
	Repo    quoteRepo.QuoteRepository
	Pricing pricing.PricingService
}

// Create stores a quote request with a server-computed estimate.
func (s *DefaultQuoteService) Create(ctx context.Context, input models.QuoteInput, userID string) (*models.QuoteRequest, error) {
	if input.Name == "" || input.Phone == "" {
		return nil, fmt.Errorf("name and phone are required")
	}
	rate, ok := pricing.ServiceRates[input.ServiceType]
	if !ok {
		return nil, fmt.Errorf("unknown service type %q", input.ServiceType)
	}

	cfg := s.Pricing.Get(ctx)
	estimate := pricing.Estimate(rate, input.Weight, input.Items, cfg.PickupCharge, cfg.FreePickupThreshold)

	q := &models.QuoteRequest{
		ID:            uuid.New().String(),
		UserID:        userID,
		Name:          input.Name,
		Phone:         input.Phone,
		Email:         input.Email,
		ServiceType:   input.ServiceType,
		Weight:        input.Weight,
		Items:         input.Items,
		SelectiveWash: input.SelectiveWash,
		EstimatedCost: estimate,
		Status:        models.QuotePending,
	}
	if err := s.Repo.Create(q); err != nil {
		return nil, fmt.Errorf("failed to create quote request: %w", err)
	}
	return q, nil
}

// GetAll retrieves quote requests newest first.
func (s *DefaultQuoteService) GetAll() ([]models.QuoteRequest, error) {
	return s.Repo.GetAll()
}

// UpdateStatus advances a quote's status.
func (s *DefaultQuoteService) UpdateStatus(id, status string) error {
	if !models.ValidQuoteStatus(status) {
		return fmt.Errorf("invalid quote status %q", status)
	}
	return s.Repo.SetStatus(id, status)
}

// Delete removes a quote request.
func (s *DefaultQuoteService) Delete(id string) error {
	return s.Repo.Delete(id)
}
