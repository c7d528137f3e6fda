package pricing

import (
	"context"
	"testing"

	settingsRepo "drdhobi/database/repository/settings"
	"drdhobi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSettingsRepo is an in-memory SettingsRepository.
type fakeSettingsRepo struct {
	pricing *models.PricingConfig
	site    *models.SiteSettings
	fail    error
}

func (f *fakeSettingsRepo) GetPricing() (*models.PricingConfig, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	if f.pricing == nil {
		return nil, settingsRepo.ErrNotFound
	}
	return f.pricing, nil
}

func (f *fakeSettingsRepo) SetPricing(cfg *models.PricingConfig) error {
	if f.fail != nil {
		return f.fail
	}
	f.pricing = cfg
	return nil
}

func (f *fakeSettingsRepo) GetSite() (*models.SiteSettings, error) {
	if f.site == nil {
		return nil, settingsRepo.ErrNotFound
	}
	return f.site, nil
}

func (f *fakeSettingsRepo) SetSite(s *models.SiteSettings) error {
	f.site = s
	return nil
}

func TestPricingGetServesDefaultsWhenUnset(t *testing.T) {
	svc := &DefaultPricingService{Repo: &fakeSettingsRepo{}}

	cfg := svc.Get(context.Background())
	require.NotNil(t, cfg)
	assert.Equal(t, 50, cfg.PickupCharge)
	assert.Equal(t, 300, cfg.FreePickupThreshold)
	assert.Equal(t, 30, cfg.Items["shirts"])
	assert.Contains(t, cfg.Services, "wash-fold")
}

func TestPricingGetMergesPartialDocument(t *testing.T) {
	repo := &fakeSettingsRepo{pricing: &models.PricingConfig{
		PickupCharge: 70,
	}}
	svc := &DefaultPricingService{Repo: repo}

	cfg := svc.Get(context.Background())
	assert.Equal(t, 70, cfg.PickupCharge)
	// Unset sections fall back to defaults.
	assert.Equal(t, 300, cfg.FreePickupThreshold)
	assert.NotEmpty(t, cfg.Items)
	assert.NotEmpty(t, cfg.Services)
}

func TestPricingSetRoundTrip(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := &DefaultPricingService{Repo: repo}

	in := &models.PricingConfig{
		Items:               map[string]int{"shirts": 35},
		PickupCharge:        60,
		FreePickupThreshold: 500,
		Services:            map[string]models.ServicePricing{"wash-fold": {Name: "Wash & Fold"}},
	}
	require.NoError(t, svc.Set(context.Background(), in))
	assert.False(t, in.UpdatedAt.IsZero())

	out := svc.Get(context.Background())
	assert.Equal(t, 60, out.PickupCharge)
	assert.Equal(t, 500, out.FreePickupThreshold)
	assert.Equal(t, 35, out.Items["shirts"])
}

func TestPricingGetSwallowsStoreErrors(t *testing.T) {
	repo := &fakeSettingsRepo{fail: assert.AnError}
	svc := &DefaultPricingService{Repo: repo}

	cfg := svc.Get(context.Background())
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultConfig().PickupCharge, cfg.PickupCharge)
}
