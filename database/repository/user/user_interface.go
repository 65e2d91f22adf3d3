package userRepo

import (
	"context"

	"resourcebooking/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by their unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByUsername retrieves a user, credentials included, by login name.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// ListByInstitution returns every user attached to an institution.
	ListByInstitution(ctx context.Context, institutionID string) ([]models.User, error)
	// Create inserts a new user record under a fresh ID.
	Create(ctx context.Context, user *models.User) error
	// Replace overwrites an existing user record.
	Replace(ctx context.Context, id string, user models.User) (models.Outcome, error)
	// Delete removes a user record by its ID.
	Delete(ctx context.Context, id string) (models.Outcome, error)
}
