package institution

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	institutionRepo "resourcebooking/database/repository/institution"
	"resourcebooking/models"
)

var ErrInvalidInstitution = errors.New("invalid institution")

// InstitutionService covers institution reads and creation. Updates go
// through the cascade coordinator because they invalidate future bookings.
type InstitutionService interface {
	Get(ctx context.Context, id string) (*models.Institution, error)
	List(ctx context.Context) ([]models.Institution, error)
	Create(ctx context.Context, institution *models.Institution) error
}

type DefaultInstitutionService struct {
	Repo institutionRepo.InstitutionRepository
}

func NewInstitutionService(repo institutionRepo.InstitutionRepository) *DefaultInstitutionService {
	return &DefaultInstitutionService{Repo: repo}
}

func (s *DefaultInstitutionService) Get(ctx context.Context, id string) (*models.Institution, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultInstitutionService) List(ctx context.Context) ([]models.Institution, error) {
	return s.Repo.List(ctx)
}

func (s *DefaultInstitutionService) Create(ctx context.Context, institution *models.Institution) error {
	institution.ID = ""
	if err := Validate(*institution); err != nil {
		return err
	}
	if err := s.Repo.Create(ctx, institution); err != nil {
		return fmt.Errorf("failed to create institution: %w", err)
	}
	return nil
}

// Validate checks the name, the opening hours and the booking interval.
// Empty opening hours are allowed.
func Validate(in models.Institution) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInstitution)
	}
	if in.BookingInterval < 0 {
		return fmt.Errorf("%w: bookingInterval must not be negative", ErrInvalidInstitution)
	}
	if in.OpenTime == "" && in.CloseTime == "" {
		return nil
	}
	open, err := time.Parse("15:04", in.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: openTime %q", ErrInvalidInstitution, in.OpenTime)
	}
	closing, err := time.Parse("15:04", in.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: closeTime %q", ErrInvalidInstitution, in.CloseTime)
	}
	if !closing.After(open) {
		return fmt.Errorf("%w: closeTime must be after openTime", ErrInvalidInstitution)
	}
	return nil
}
