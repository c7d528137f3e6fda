package settings

import (
	"errors"
	"time"

	settingsRepo "drdhobi/database/repository/settings"
	"drdhobi/models"
	"drdhobi/utils"

	"go.uber.org/zap"
)

// DefaultSite returns the built-in site settings served until an admin has
// saved their own.
func DefaultSite() models.SiteSettings {
	return models.SiteSettings{
		Phone:          "+918080808080",
		PhoneDisplay:   "080-8080-8080",
		Email:          "hello@drdhobi.in",
		WhatsappNumber: "+918080808080",

		Address: "Koramangala",
		City:    "Bangalore",
		State:   "Karnataka",
		Country: "India",

		WeekdayHours:  "8:00 AM - 8:00 PM",
		WeekendHours:  "10:00 AM - 4:00 PM",
		OperatingDays: "Mon - Sat",

		FacebookURL:  "https://facebook.com/drdhobi",
		InstagramURL: "https://instagram.com/drdhobi",
		TwitterURL:   "https://x.com/drdhobi",
		WhatsappURL:  "https://wa.me/918080808080",

		BusinessName: "Dr Dhobi",
		Tagline:      "Premium Doorstep Laundry Service",
	}
}

// SettingsService manages the singleton site settings document.
type SettingsService interface {
	// Get returns the site settings merged over defaults. It never fails:
	// on any storage error the defaults are served.
	Get() models.SiteSettings
	// Set merges the given fields into the stored settings.
	Set(update models.SiteSettings) error
}

// DefaultSettingsService is the production implementation.
type DefaultSettingsService struct {
	Repo settingsRepo.SettingsRepository
}

// Get returns the site settings merged over defaults.
func (s *DefaultSettingsService) Get() models.SiteSettings {
	stored, err := s.Repo.GetSite()
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrNotFound) {
			utils.GetLogger().Error("site settings fetch failed, serving defaults", zap.Error(err))
		}
		return DefaultSite()
	}
	return mergeWithDefaults(stored)
}

// Set merges the update into the current settings and stores the result.
// Empty fields in the update keep their current value, matching the
// merge-write semantics the admin panel expects.
func (s *DefaultSettingsService) Set(update models.SiteSettings) error {
	merged := overlay(s.Get(), update)
	merged.UpdatedAt = time.Now()
	return s.Repo.SetSite(&merged)
}

// mergeWithDefaults fills blank fields of a stored document from the
// defaults so new fields always have a value.
func mergeWithDefaults(stored *models.SiteSettings) models.SiteSettings {
	return overlay(DefaultSite(), *stored)
}

// overlay returns base with every non-empty string field of top applied.
func overlay(base, top models.SiteSettings) models.SiteSettings {
	apply := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	apply(&base.Phone, top.Phone)
	apply(&base.PhoneDisplay, top.PhoneDisplay)
	apply(&base.Email, top.Email)
	apply(&base.WhatsappNumber, top.WhatsappNumber)
	apply(&base.Address, top.Address)
	apply(&base.City, top.City)
	apply(&base.State, top.State)
	apply(&base.Country, top.Country)
	apply(&base.WeekdayHours, top.WeekdayHours)
	apply(&base.WeekendHours, top.WeekendHours)
	apply(&base.OperatingDays, top.OperatingDays)
	apply(&base.FacebookURL, top.FacebookURL)
	apply(&base.InstagramURL, top.InstagramURL)
	apply(&base.TwitterURL, top.TwitterURL)
	apply(&base.WhatsappURL, top.WhatsappURL)
	apply(&base.BusinessName, top.BusinessName)
	apply(&base.Tagline, top.Tagline)
	if !top.UpdatedAt.IsZero() {
		base.UpdatedAt = top.UpdatedAt
	}
	return base
}
