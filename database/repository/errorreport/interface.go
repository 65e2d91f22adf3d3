// File: database/repository/errorreport/interface.go
package errorReportRepo

import (
	"context"

	"resourcebooking/models"
)

// ErrorReportRepository defines methods for error report data access.
type ErrorReportRepository interface {
	GetByID(ctx context.Context, id string) (*models.ErrorReport, error)
	ListByInstitution(ctx context.Context, institutionID string) ([]models.ErrorReport, error)
	ListByResource(ctx context.Context, resourceID string) ([]models.ErrorReport, error)
	Create(ctx context.Context, report *models.ErrorReport) error
	Replace(ctx context.Context, id string, report models.ErrorReport) (models.Outcome, error)
	Delete(ctx context.Context, id string) (models.Outcome, error)
	// CountActiveByResource counts unresolved reports on a resource.
	CountActiveByResource(ctx context.Context, resourceID string) (int64, error)
	// ResolveByResource marks every unresolved report on a resource as
	// resolved and returns how many changed.
	ResolveByResource(ctx context.Context, resourceID string) (int64, error)
}
