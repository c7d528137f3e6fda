package device

import (
	"fmt"
	"time"

	tokenRepo "drdhobi/database/repository/admintoken"
	"drdhobi/models"
)

// DeviceService manages admin FCM device token registrations.
type DeviceService interface {
	// Register stores a device token for booking push alerts.
	Register(token, userID string) error
	// Unregister removes a device token, e.g. on sign-out.
	Unregister(token string) error
	// GetAll retrieves every registered token.
	GetAll() ([]models.AdminToken, error)
}

// DefaultDeviceService is the production implementation.
type DefaultDeviceService struct {
	Repo tokenRepo.TokenRepository
}

// Register stores a device token.
func (s *DefaultDeviceService) Register(token, userID string) error {
	if token == "" {
		return fmt.Errorf("device token is required")
	}
	return s.Repo.Save(&models.AdminToken{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Now(),
	})
}

// Unregister removes a device token.
func (s *DefaultDeviceService) Unregister(token string) error {
	if token == "" {
		return fmt.Errorf("device token is required")
	}
	return s.Repo.DeleteByToken(token)
}

// GetAll retrieves every registered token.
func (s *DefaultDeviceService) GetAll() ([]models.AdminToken, error) {
	return s.Repo.GetAll()
}
