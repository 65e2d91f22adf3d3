package resourceRepo

import (
	"context"

	"resourcebooking/models"
)

// ResourceRepository defines methods for resource data access.
type ResourceRepository interface {
	GetByID(ctx context.Context, id string) (*models.Resource, error)
	ListByInstitution(ctx context.Context, institutionID string) ([]models.Resource, error)
	Create(ctx context.Context, resource *models.Resource) error
	Replace(ctx context.Context, id string, resource models.Resource) (models.Outcome, error)
	Delete(ctx context.Context, id string) (models.Outcome, error)
}
