package booking

import (
	"context"
	"time"

	bookingRepo "resourcebooking/database/repository/booking"
	"resourcebooking/models"

	"go.uber.org/zap"
)

// BookingService holds the scheduling rules for bookings.
type BookingService interface {
	Get(ctx context.Context, id string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// ListByInstitutionAndDateRange returns bookings whose day falls between
	// the days of start and end, both inclusive.
	ListByInstitutionAndDateRange(ctx context.Context, institutionID string, start, end time.Time) ([]models.Booking, error)
	// ListPendingForUser returns bookings from currentDate's day onwards,
	// ordered by day then start time.
	ListPendingForUser(ctx context.Context, userID string, currentDate time.Time) ([]models.Booking, error)
	ListResourceBookingsOnDate(ctx context.Context, resourceID string, date time.Time) ([]models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	Update(ctx context.Context, id string, booking models.Booking) (models.Outcome, error)
	Delete(ctx context.Context, id string) (models.Outcome, error)
	// ClearFutureBookingsForResource deletes the resource's bookings from
	// today onwards and reports whether any were removed.
	ClearFutureBookingsForResource(ctx context.Context, resourceID string) (bool, error)
	ClearFutureBookingsForInstitution(ctx context.Context, institutionID string) (bool, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	Logger *zap.Logger
	// RejectOverlaps refuses bookings that overlap another booking of the
	// same resource on the same day.
	RejectOverlaps bool
	// Now is the clock used to decide which bookings lie in the future.
	Now func() time.Time
}

func NewBookingService(repo bookingRepo.BookingRepository, logger *zap.Logger, rejectOverlaps bool) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:           repo,
		Logger:         logger,
		RejectOverlaps: rejectOverlaps,
		Now:            time.Now,
	}
}
