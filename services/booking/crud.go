package booking

import (
	"context"
	"fmt"

	"resourcebooking/models"

	"go.uber.org/zap"
)

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBookingService) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Create validates the booking, normalises its date and stores it under a
// fresh id. Any id supplied by the caller is discarded.
func (s *DefaultBookingService) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = ""
	booking.Date = startOfDay(booking.Date)

	w, err := bookingWindow(booking.StartTime, booking.EndTime)
	if err != nil {
		return err
	}
	if err := s.checkOverlap(ctx, *booking, w); err != nil {
		return err
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	s.Logger.Debug("Booking created",
		zap.String("bookingID", booking.ID),
		zap.String("resourceID", booking.ResourceID),
		zap.Time("date", booking.Date))
	return nil
}

func (s *DefaultBookingService) Update(ctx context.Context, id string, booking models.Booking) (models.Outcome, error) {
	booking.ID = id
	booking.Date = startOfDay(booking.Date)

	w, err := bookingWindow(booking.StartTime, booking.EndTime)
	if err != nil {
		return models.OutcomeNotFound, err
	}
	if err := s.checkOverlap(ctx, booking, w); err != nil {
		return models.OutcomeNotFound, err
	}
	return s.Repo.Replace(ctx, id, booking)
}

func (s *DefaultBookingService) Delete(ctx context.Context, id string) (models.Outcome, error) {
	return s.Repo.Delete(ctx, id)
}

// checkOverlap compares against the other bookings of the same resource and
// day. The booking's own id is skipped so updates do not collide with
// themselves.
func (s *DefaultBookingService) checkOverlap(ctx context.Context, booking models.Booking, w window) error {
	if !s.RejectOverlaps || booking.ResourceID == "" {
		return nil
	}
	from, to := dayWindow(booking.Date, booking.Date)
	sameDay, err := s.Repo.ListByResourceWithinDates(ctx, booking.ResourceID, from, to)
	if err != nil {
		return fmt.Errorf("failed to check overlapping bookings: %w", err)
	}
	for _, other := range sameDay {
		if other.ID == booking.ID && booking.ID != "" {
			continue
		}
		ow, err := bookingWindow(other.StartTime, other.EndTime)
		if err != nil {
			continue
		}
		if w.overlaps(ow) {
			return fmt.Errorf("%w: booking %s at %s", ErrConflict, other.ID, other.StartTime)
		}
	}
	return nil
}
