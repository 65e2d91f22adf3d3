package resource

import (
	"context"
	"errors"
	"fmt"
	"strings"

	resourceRepo "resourcebooking/database/repository/resource"
	"resourcebooking/models"
)

var ErrNameRequired = errors.New("resource name is required")

// ResourceService covers resource reads and writes. Deletion goes through
// the cascade coordinator.
type ResourceService interface {
	Get(ctx context.Context, id string) (*models.Resource, error)
	ListByInstitution(ctx context.Context, institutionID string) ([]models.Resource, error)
	Create(ctx context.Context, resource *models.Resource) error
	Update(ctx context.Context, id string, resource models.Resource) (models.Outcome, error)
}

type DefaultResourceService struct {
	Repo resourceRepo.ResourceRepository
}

func NewResourceService(repo resourceRepo.ResourceRepository) *DefaultResourceService {
	return &DefaultResourceService{Repo: repo}
}

func (s *DefaultResourceService) Get(ctx context.Context, id string) (*models.Resource, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultResourceService) ListByInstitution(ctx context.Context, institutionID string) ([]models.Resource, error) {
	return s.Repo.ListByInstitution(ctx, institutionID)
}

func (s *DefaultResourceService) Create(ctx context.Context, resource *models.Resource) error {
	resource.ID = ""
	if strings.TrimSpace(resource.Name) == "" {
		return ErrNameRequired
	}
	if err := s.Repo.Create(ctx, resource); err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}
	return nil
}

func (s *DefaultResourceService) Update(ctx context.Context, id string, resource models.Resource) (models.Outcome, error) {
	if strings.TrimSpace(resource.Name) == "" {
		return models.OutcomeNotFound, ErrNameRequired
	}
	return s.Repo.Replace(ctx, id, resource)
}
