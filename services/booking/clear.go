package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ClearFutureBookingsForResource removes bookings dated today (UTC) or later.
func (s *DefaultBookingService) ClearFutureBookingsForResource(ctx context.Context, resourceID string) (bool, error) {
	from := startOfDay(s.Now().UTC())
	n, err := s.Repo.DeleteByResourceFromDate(ctx, resourceID, from)
	if err != nil {
		return false, fmt.Errorf("failed to clear bookings for resource %s: %w", resourceID, err)
	}
	s.Logger.Info("Cleared upcoming bookings",
		zap.String("resourceID", resourceID), zap.Int64("deleted", n), zap.Time("from", from))
	return n > 0, nil
}

func (s *DefaultBookingService) ClearFutureBookingsForInstitution(ctx context.Context, institutionID string) (bool, error) {
	from := startOfDay(s.Now().UTC())
	n, err := s.Repo.DeleteByInstitutionFromDate(ctx, institutionID, from)
	if err != nil {
		return false, fmt.Errorf("failed to clear bookings for institution %s: %w", institutionID, err)
	}
	s.Logger.Info("Cleared upcoming bookings",
		zap.String("institutionID", institutionID), zap.Int64("deleted", n), zap.Time("from", from))
	return n > 0, nil
}
