package memoryRepo

import (
	"context"
	"time"

	"resourcebooking/models"
)

type BookingStore struct {
	s *Store
}

func byBookingDate(a, b models.Booking) bool { return a.Date.Before(b.Date) }

func inWindow(date, from, to time.Time) bool {
	return !date.Before(from) && date.Before(to)
}

func (r *BookingStore) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return getRow(r.s.bookings, id), nil
}

func (r *BookingStore) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterRows(r.s.bookings, func(b models.Booking) bool {
		return b.UserID == userID
	}, byBookingDate), nil
}

func (r *BookingStore) ListByUserFromDate(_ context.Context, userID string, from time.Time) ([]models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterRows(r.s.bookings, func(b models.Booking) bool {
		return b.UserID == userID && !b.Date.Before(from)
	}, byBookingDate), nil
}

func (r *BookingStore) ListByInstitutionWithinDates(_ context.Context, institutionID string, from, to time.Time) ([]models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterRows(r.s.bookings, func(b models.Booking) bool {
		return b.InstitutionID == institutionID && inWindow(b.Date, from, to)
	}, byBookingDate), nil
}

func (r *BookingStore) ListByResourceWithinDates(_ context.Context, resourceID string, from, to time.Time) ([]models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterRows(r.s.bookings, func(b models.Booking) bool {
		return b.ResourceID == resourceID && inWindow(b.Date, from, to)
	}, byBookingDate), nil
}

func (r *BookingStore) Create(_ context.Context, booking *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	booking.ID = ""
	id := insertRow(r.s.bookings, *booking)
	booking.ID = id
	r.s.bookings[id] = *booking
	return nil
}

func (r *BookingStore) Replace(_ context.Context, id string, booking models.Booking) (models.Outcome, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	booking.ID = id
	return replaceRow(r.s.bookings, id, booking), nil
}

func (r *BookingStore) Delete(_ context.Context, id string) (models.Outcome, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return deleteRow(r.s.bookings, id), nil
}

func (r *BookingStore) DeleteByResourceFromDate(_ context.Context, resourceID string, from time.Time) (int64, error) {
	return r.deleteWhere(func(b models.Booking) bool {
		return b.ResourceID == resourceID && !b.Date.Before(from)
	}), nil
}

func (r *BookingStore) DeleteByInstitutionFromDate(_ context.Context, institutionID string, from time.Time) (int64, error) {
	return r.deleteWhere(func(b models.Booking) bool {
		return b.InstitutionID == institutionID && !b.Date.Before(from)
	}), nil
}

func (r *BookingStore) deleteWhere(match func(models.Booking) bool) int64 {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, b := range r.s.bookings {
		if match(b) {
			delete(r.s.bookings, id)
			n++
		}
	}
	return n
}
