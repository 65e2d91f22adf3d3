package booking

import (
	"context"
	"sort"
	"time"

	"resourcebooking/models"
)

func (s *DefaultBookingService) ListByInstitutionAndDateRange(ctx context.Context, institutionID string, start, end time.Time) ([]models.Booking, error) {
	from, to := dayWindow(start, end)
	return s.Repo.ListByInstitutionWithinDates(ctx, institutionID, from, to)
}

func (s *DefaultBookingService) ListResourceBookingsOnDate(ctx context.Context, resourceID string, date time.Time) ([]models.Booking, error) {
	from, to := dayWindow(date, date)
	return s.Repo.ListByResourceWithinDates(ctx, resourceID, from, to)
}

func (s *DefaultBookingService) ListPendingForUser(ctx context.Context, userID string, currentDate time.Time) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByUserFromDate(ctx, userID, startOfDay(currentDate))
	if err != nil {
		return nil, err
	}
	sortByDayAndStart(bookings)
	return bookings, nil
}

// sortByDayAndStart orders bookings by date, then by parsed start time.
// Entries whose start time does not parse go last within their day.
func sortByDayAndStart(bookings []models.Booking) {
	type entry struct {
		booking models.Booking
		start   time.Duration
		ok      bool
	}
	entries := make([]entry, len(bookings))
	for i, b := range bookings {
		start, err := parseTimeOfDay(b.StartTime)
		entries[i] = entry{booking: b, start: start, ok: err == nil}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.booking.Date.Equal(b.booking.Date) {
			return a.booking.Date.Before(b.booking.Date)
		}
		if a.ok != b.ok {
			return a.ok
		}
		return a.start < b.start
	})

	for i := range entries {
		bookings[i] = entries[i].booking
	}
}
