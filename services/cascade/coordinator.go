package cascade

import (
	"context"

	institutionRepo "resourcebooking/database/repository/institution"
	resourceRepo "resourcebooking/database/repository/resource"
	"resourcebooking/models"
	"resourcebooking/services/tasks"

	"go.uber.org/zap"
)

const (
	StepClearBookings      = "clearFutureBookings"
	StepResolveReports     = "resolveErrorReports"
	StepDeleteResource     = "deleteResource"
	StepReplaceInstitution = "replaceInstitution"
	StepScheduleImage      = "scheduleImageCleanup"
)

// BookingClearer removes bookings that have not happened yet.
type BookingClearer interface {
	ClearFutureBookingsForResource(ctx context.Context, resourceID string) (bool, error)
	ClearFutureBookingsForInstitution(ctx context.Context, institutionID string) (bool, error)
}

// ReportResolver closes open error reports.
type ReportResolver interface {
	ResolveAllOnResource(ctx context.Context, resourceID string) (bool, error)
}

// Coordinator runs the multi-entity workflows that must touch bookings and
// error reports before the parent entity changes. Steps run in order without
// locking or rollback; a failed side effect does not stop the mutation.
type Coordinator struct {
	Bookings     BookingClearer
	Reports      ReportResolver
	Resources    resourceRepo.ResourceRepository
	Institutions institutionRepo.InstitutionRepository
	// Images may be nil, in which case image clean-up is skipped.
	Images tasks.ImageJanitor
	Logger *zap.Logger
}

// DeleteResource clears the resource's future bookings, resolves its error
// reports, then deletes it.
func (c *Coordinator) DeleteResource(ctx context.Context, resourceID string) (Report, error) {
	report := Report{Operation: "DeleteResource", TargetID: resourceID}

	var imageURL string
	if existing, err := c.Resources.GetByID(ctx, resourceID); err != nil {
		c.Logger.Warn("Could not load resource before delete", zap.String("resourceID", resourceID), zap.Error(err))
	} else if existing != nil {
		imageURL = existing.ImageURL
	}

	runSideEffects(ctx, c.Logger, &report, []step{
		{StepClearBookings, func(ctx context.Context) (bool, error) {
			return c.Bookings.ClearFutureBookingsForResource(ctx, resourceID)
		}},
		{StepResolveReports, func(ctx context.Context) (bool, error) {
			return c.Reports.ResolveAllOnResource(ctx, resourceID)
		}},
	})

	outcome, err := c.Resources.Delete(ctx, resourceID)
	report.Outcome = outcome
	report.Steps = append(report.Steps, StepResult{Name: StepDeleteResource, Changed: outcome.Changed(), Err: err})
	if err != nil {
		return report, err
	}

	if outcome.Changed() && imageURL != "" && c.Images != nil {
		runSideEffects(ctx, c.Logger, &report, []step{
			{StepScheduleImage, func(ctx context.Context) (bool, error) {
				return true, c.Images.ScheduleImageDelete(ctx, imageURL)
			}},
		})
	}

	logReport(c.Logger, report)
	return report, nil
}

// UpdateInstitution clears the institution's future bookings, then replaces
// the institution. Bookings are cleared even when the replace finds nothing.
func (c *Coordinator) UpdateInstitution(ctx context.Context, institutionID string, institution models.Institution) (Report, error) {
	report := Report{Operation: "UpdateInstitution", TargetID: institutionID}

	runSideEffects(ctx, c.Logger, &report, []step{
		{StepClearBookings, func(ctx context.Context) (bool, error) {
			return c.Bookings.ClearFutureBookingsForInstitution(ctx, institutionID)
		}},
	})

	outcome, err := c.Institutions.Replace(ctx, institutionID, institution)
	report.Outcome = outcome
	report.Steps = append(report.Steps, StepResult{Name: StepReplaceInstitution, Changed: outcome.Changed(), Err: err})
	if err != nil {
		return report, err
	}

	logReport(c.Logger, report)
	return report, nil
}
