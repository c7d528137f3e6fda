package userRepo

import "drdhobi/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, nil if absent.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// GetAdmins retrieves every profile with role admin.
	GetAdmins() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateProfile sets the mutable profile fields on a user record.
	UpdateProfile(id string, fields map[string]any) error
	// SetRole changes a user's role.
	SetRole(id, role string) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
