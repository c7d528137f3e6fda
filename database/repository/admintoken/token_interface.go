package tokenRepo

import "drdhobi/models"

// TokenRepository defines methods for the registered admin FCM device
// tokens that the booking push worker multicasts to.
type TokenRepository interface {
	// Save registers a token, replacing any prior registration of the same
	// token string.
	Save(t *models.AdminToken) error
	// GetAll retrieves every registered token.
	GetAll() ([]models.AdminToken, error)
	// DeleteByToken removes a registration by its token string. Used both
	// for explicit sign-out and for pruning tokens the push provider
	// reports as invalid.
	DeleteByToken(token string) error
}
