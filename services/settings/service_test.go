package settings

import (
	"testing"

	settingsRepo "drdhobi/database/repository/settings"
	"drdhobi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSettingsRepo is an in-memory SettingsRepository.
type fakeSettingsRepo struct {
	site    *models.SiteSettings
	failGet bool
}

func (f *fakeSettingsRepo) GetPricing() (*models.PricingConfig, error) {
	return nil, settingsRepo.ErrNotFound
}

func (f *fakeSettingsRepo) SetPricing(cfg *models.PricingConfig) error { return nil }

func (f *fakeSettingsRepo) GetSite() (*models.SiteSettings, error) {
	if f.failGet {
		return nil, assert.AnError
	}
	if f.site == nil {
		return nil, settingsRepo.ErrNotFound
	}
	copied := *f.site
	return &copied, nil
}

func (f *fakeSettingsRepo) SetSite(s *models.SiteSettings) error {
	copied := *s
	f.site = &copied
	return nil
}

func TestGetServesDefaultsWhenUnset(t *testing.T) {
	svc := &DefaultSettingsService{Repo: &fakeSettingsRepo{}}

	got := svc.Get()
	assert.Equal(t, "Dr Dhobi", got.BusinessName)
	assert.Equal(t, "+918080808080", got.Phone)
	assert.Equal(t, "Bangalore", got.City)
	assert.Equal(t, "Mon - Sat", got.OperatingDays)
}

func TestGetServesDefaultsOnStorageError(t *testing.T) {
	svc := &DefaultSettingsService{Repo: &fakeSettingsRepo{failGet: true}}

	got := svc.Get()
	assert.Equal(t, DefaultSite().Email, got.Email)
}

func TestSetMergesIntoCurrent(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := &DefaultSettingsService{Repo: repo}

	require.NoError(t, svc.Set(models.SiteSettings{Phone: "+911234567890"}))

	got := svc.Get()
	assert.Equal(t, "+911234567890", got.Phone)
	// Fields the update left blank keep their defaults.
	assert.Equal(t, "hello@drdhobi.in", got.Email)
	assert.Equal(t, "Koramangala", got.Address)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestSetSecondUpdateKeepsEarlierEdits(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := &DefaultSettingsService{Repo: repo}

	require.NoError(t, svc.Set(models.SiteSettings{Tagline: "Laundry, solved."}))
	require.NoError(t, svc.Set(models.SiteSettings{City: "Mysuru"}))

	got := svc.Get()
	assert.Equal(t, "Laundry, solved.", got.Tagline)
	assert.Equal(t, "Mysuru", got.City)
}
