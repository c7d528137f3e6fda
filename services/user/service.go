package user

import (
	"fmt"
	"time"

	userRepo "drdhobi/database/repository/user"
	"drdhobi/models"
	"drdhobi/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 72 * time.Hour

// UserService manages customer and admin profiles.
type UserService interface {
	// Register creates a new customer account and returns it with a token.
	Register(input models.UserRegistration) (*models.User, string, error)
	// Authenticate verifies credentials and returns the user with a token.
	Authenticate(creds models.UserCredentials) (*models.User, string, error)
	// GetByID retrieves a user by ID.
	GetByID(id string) (*models.User, error)
	// UpdateProfile changes a user's own mutable fields.
	UpdateProfile(id string, update models.ProfileUpdate) error
	// SetPhoto records the storage reference of a user's profile photo.
	SetPhoto(id, photoID string) error
	// GetAll retrieves all users (admin).
	GetAll() ([]models.User, error)
	// SetRole changes a user's role (admin). An admin may not demote
	// themself.
	SetRole(actorID, targetID, role string) error
	// Delete removes a user account (admin).
	Delete(id string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates a new customer account.
func (s *DefaultUserService) Register(input models.UserRegistration) (*models.User, string, error) {
	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, "", fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, "", fmt.Errorf("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Role:         models.RoleUser,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenLifetime)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return u, token, nil
}

// Authenticate verifies credentials and issues a token.
func (s *DefaultUserService) Authenticate(creds models.UserCredentials) (*models.User, string, error) {
	u, err := s.Repo.GetByEmail(creds.Email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: lookup failed", zap.Error(err))
		return nil, "", fmt.Errorf("authentication failed, please try again")
	}
	if u == nil {
		return nil, "", fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, "", fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenLifetime)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return u, token, nil
}

// GetByID retrieves a user by ID.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// UpdateProfile changes a user's own mutable fields.
func (s *DefaultUserService) UpdateProfile(id string, update models.ProfileUpdate) error {
	fields := map[string]any{}
	if update.Name != "" {
		fields["name"] = update.Name
	}
	if update.Phone != "" {
		fields["phone"] = update.Phone
	}
	if len(fields) == 0 {
		return nil
	}
	return s.Repo.UpdateProfile(id, fields)
}

// SetPhoto records the storage reference of a user's profile photo.
func (s *DefaultUserService) SetPhoto(id, photoID string) error {
	return s.Repo.UpdateProfile(id, map[string]any{"photo_id": photoID})
}

// GetAll retrieves all users.
func (s *DefaultUserService) GetAll() ([]models.User, error) {
	return s.Repo.GetAll()
}

// SetRole changes a user's role. An admin demoting themself is rejected so
// the last admin cannot lock the team out by accident.
func (s *DefaultUserService) SetRole(actorID, targetID, role string) error {
	if role != models.RoleAdmin && role != models.RoleUser {
		return fmt.Errorf("invalid role %q", role)
	}
	if actorID == targetID && role != models.RoleAdmin {
		return fmt.Errorf("admins cannot demote themselves")
	}
	return s.Repo.SetRole(targetID, role)
}

// Delete removes a user account.
func (s *DefaultUserService) Delete(id string) error {
	return s.Repo.Delete(id)
}
