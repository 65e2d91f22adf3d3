package institutionRepo

import (
	"context"

	"resourcebooking/models"
)

type InstitutionRepository interface {
	GetByID(ctx context.Context, id string) (*models.Institution, error)
	List(ctx context.Context) ([]models.Institution, error)
	Create(ctx context.Context, institution *models.Institution) error
	Replace(ctx context.Context, id string, institution models.Institution) (models.Outcome, error)
	Delete(ctx context.Context, id string) (models.Outcome, error)
}
