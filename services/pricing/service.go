package pricing

import (
	"context"
	"encoding/json"
	"time"

	settingsRepo "drdhobi/database/repository/settings"
	"drdhobi/models"
	"drdhobi/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheKey = "pricing:config"
const cacheTTL = 5 * time.Minute

// PricingService exposes the singleton pricing configuration.
type PricingService interface {
	// Get returns the current configuration. It never fails the caller:
	// store errors are swallowed and the hardcoded defaults returned.
	Get(ctx context.Context) *models.PricingConfig
	// Set replaces the stored configuration wholesale.
	Set(ctx context.Context, cfg *models.PricingConfig) error
}

// DefaultPricingService is the production implementation.
type DefaultPricingService struct {
	Repo  settingsRepo.SettingsRepository
	Cache *redis.Client // optional read cache
}

// Get returns the pricing configuration, falling back to defaults when the
// document is absent or the store errors. Partial documents are merged with
// defaults so every field has a value.
func (s *DefaultPricingService) Get(ctx context.Context) *models.PricingConfig {
	logger := utils.GetLogger()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var cfg models.PricingConfig
			if jsonErr := json.Unmarshal([]byte(cached), &cfg); jsonErr == nil {
				return &cfg
			}
		} else if err != redis.Nil {
			logger.Warn("pricing cache read failed", zap.Error(err))
		}
	}

	stored, err := s.Repo.GetPricing()
	if err != nil {
		if err != settingsRepo.ErrNotFound {
			logger.Error("failed to load pricing configuration, serving defaults", zap.Error(err))
		}
		return DefaultConfig()
	}

	cfg := mergeWithDefaults(stored)
	s.cache(ctx, cfg)
	return cfg
}

// Set replaces the stored configuration wholesale and stamps UpdatedAt. No
// validation beyond type shape is performed.
func (s *DefaultPricingService) Set(ctx context.Context, cfg *models.PricingConfig) error {
	cfg.UpdatedAt = time.Now()
	if err := s.Repo.SetPricing(cfg); err != nil {
		return err
	}
	if s.Cache != nil {
		if err := s.Cache.Del(ctx, cacheKey).Err(); err != nil {
			utils.GetLogger().Warn("failed to invalidate pricing cache", zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultPricingService) cache(ctx context.Context, cfg *models.PricingConfig) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache pricing configuration", zap.Error(err))
	}
}

// mergeWithDefaults fills any unset section of a stored configuration from
// the defaults, mirroring the lazy-defaulting read behavior.
func mergeWithDefaults(stored *models.PricingConfig) *models.PricingConfig {
	defaults := DefaultConfig()
	cfg := *stored

	if len(cfg.Items) == 0 {
		cfg.Items = defaults.Items
	}
	if cfg.PickupCharge == 0 {
		cfg.PickupCharge = defaults.PickupCharge
	}
	if cfg.FreePickupThreshold == 0 {
		cfg.FreePickupThreshold = defaults.FreePickupThreshold
	}
	if len(cfg.Services) == 0 {
		cfg.Services = defaults.Services
	}
	return &cfg
}
