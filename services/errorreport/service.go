package errorreport

import (
	"context"
	"errors"
	"fmt"
	"time"

	errorReportRepo "resourcebooking/database/repository/errorreport"
	resourceRepo "resourcebooking/database/repository/resource"
	"resourcebooking/models"

	"go.uber.org/zap"
)

// ErrorReportService tracks which resources have open fault reports.
type ErrorReportService interface {
	Get(ctx context.Context, id string) (*models.ErrorReport, error)
	ListByInstitution(ctx context.Context, institutionID string) ([]models.ErrorReport, error)
	ListByResource(ctx context.Context, resourceID string) ([]models.ErrorReport, error)
	Create(ctx context.Context, report *models.ErrorReport) error
	Update(ctx context.Context, id string, report models.ErrorReport) (models.Outcome, error)
	Delete(ctx context.Context, id string) (models.Outcome, error)
	AnyActiveOnResource(ctx context.Context, resourceID string) (bool, error)
	// ResolveAllOnResource resolves every open report on the resource and
	// reports whether any changed.
	ResolveAllOnResource(ctx context.Context, resourceID string) (bool, error)
	ResourceHealth(ctx context.Context, resourceID string) (models.ResourceHealth, error)
}

// ErrUnknownResource is returned when a report names a resource that does
// not exist.
var ErrUnknownResource = errors.New("resource not found")

type DefaultErrorReportService struct {
	Repo errorReportRepo.ErrorReportRepository
	// Resources supplies the institution a report belongs to.
	Resources resourceRepo.ResourceRepository
	Logger    *zap.Logger
	Now       func() time.Time
}

func NewErrorReportService(repo errorReportRepo.ErrorReportRepository, resources resourceRepo.ResourceRepository, logger *zap.Logger) *DefaultErrorReportService {
	return &DefaultErrorReportService{Repo: repo, Resources: resources, Logger: logger, Now: time.Now}
}

func (s *DefaultErrorReportService) Get(ctx context.Context, id string) (*models.ErrorReport, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultErrorReportService) ListByInstitution(ctx context.Context, institutionID string) ([]models.ErrorReport, error) {
	return s.Repo.ListByInstitution(ctx, institutionID)
}

func (s *DefaultErrorReportService) ListByResource(ctx context.Context, resourceID string) ([]models.ErrorReport, error) {
	return s.Repo.ListByResource(ctx, resourceID)
}

// Create stores a new report. The institution is taken from the reported
// resource; CreatedDate defaults to now.
func (s *DefaultErrorReportService) Create(ctx context.Context, report *models.ErrorReport) error {
	report.ID = ""
	res, err := s.Resources.GetByID(ctx, report.ResourceID)
	if err != nil {
		return fmt.Errorf("failed to load resource %s: %w", report.ResourceID, err)
	}
	if res == nil {
		return ErrUnknownResource
	}
	report.InstitutionID = res.InstitutionID
	if report.CreatedDate.IsZero() {
		report.CreatedDate = s.Now().UTC()
	}
	if err := s.Repo.Create(ctx, report); err != nil {
		return fmt.Errorf("failed to create error report: %w", err)
	}
	s.Logger.Info("Error report filed",
		zap.String("reportID", report.ID), zap.String("resourceID", report.ResourceID))
	return nil
}

// Update replaces a report. The institution follows the resource; when the
// resource is gone (deleted after the report was filed) the stored
// institution is kept.
func (s *DefaultErrorReportService) Update(ctx context.Context, id string, report models.ErrorReport) (models.Outcome, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return models.OutcomeNotFound, err
	}
	if existing == nil {
		return models.OutcomeNotFound, nil
	}
	if report.ResourceID == "" {
		report.ResourceID = existing.ResourceID
	}
	res, err := s.Resources.GetByID(ctx, report.ResourceID)
	if err != nil {
		return models.OutcomeNotFound, fmt.Errorf("failed to load resource %s: %w", report.ResourceID, err)
	}
	switch {
	case res != nil:
		report.InstitutionID = res.InstitutionID
	case report.ResourceID == existing.ResourceID:
		report.InstitutionID = existing.InstitutionID
	default:
		return models.OutcomeNotFound, ErrUnknownResource
	}
	if report.CreatedDate.IsZero() {
		report.CreatedDate = existing.CreatedDate
	}
	report.ID = id
	return s.Repo.Replace(ctx, id, report)
}

func (s *DefaultErrorReportService) Delete(ctx context.Context, id string) (models.Outcome, error) {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultErrorReportService) AnyActiveOnResource(ctx context.Context, resourceID string) (bool, error) {
	n, err := s.Repo.CountActiveByResource(ctx, resourceID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *DefaultErrorReportService) ResolveAllOnResource(ctx context.Context, resourceID string) (bool, error) {
	n, err := s.Repo.ResolveByResource(ctx, resourceID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve error reports for resource %s: %w", resourceID, err)
	}
	if n > 0 {
		s.Logger.Info("Resolved error reports", zap.String("resourceID", resourceID), zap.Int64("resolved", n))
	}
	return n > 0, nil
}

func (s *DefaultErrorReportService) ResourceHealth(ctx context.Context, resourceID string) (models.ResourceHealth, error) {
	active, err := s.AnyActiveOnResource(ctx, resourceID)
	if err != nil {
		return models.ResourceHealth{}, err
	}
	return models.ResourceHealth{ResourceID: resourceID, Active: active}, nil
}
