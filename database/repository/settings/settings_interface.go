package settingsRepo

import (
	"errors"

	"drdhobi/models"
)

// ErrNotFound is returned when a singleton settings document has never been
// written.
var ErrNotFound = errors.New("settings document not found")

// SettingsRepository defines access to the singleton settings documents
// (pricing configuration and site settings).
type SettingsRepository interface {
	// GetPricing retrieves the pricing configuration, ErrNotFound if unset.
	GetPricing() (*models.PricingConfig, error)
	// SetPricing replaces the stored pricing configuration wholesale.
	SetPricing(cfg *models.PricingConfig) error
	// GetSite retrieves the site settings, ErrNotFound if unset.
	GetSite() (*models.SiteSettings, error)
	// SetSite replaces the stored site settings wholesale.
	SetSite(s *models.SiteSettings) error
}
