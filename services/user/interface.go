package user

import (
	"context"

	userRepo "resourcebooking/database/repository/user"
	"resourcebooking/models"

	"go.uber.org/zap"
)

// UserService manages accounts. Users returned from it never carry a
// username or password.
type UserService interface {
	Get(ctx context.Context, id string) (*models.User, error)
	ListByInstitution(ctx context.Context, institutionID string) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id string, user models.User) (models.Outcome, error)
	Delete(ctx context.Context, id string) (models.Outcome, error)
	// Authenticate returns the user for valid credentials and nil otherwise.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

func NewUserService(repo userRepo.UserRepository, logger *zap.Logger) *DefaultUserService {
	return &DefaultUserService{Repo: repo, Logger: logger}
}
