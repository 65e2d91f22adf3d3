// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"resourcebooking/database"
	"resourcebooking/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines methods for booking data access.
// Date windows are half-open: from <= date < to.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListByUserFromDate(ctx context.Context, userID string, from time.Time) ([]models.Booking, error)
	ListByInstitutionWithinDates(ctx context.Context, institutionID string, from, to time.Time) ([]models.Booking, error)
	ListByResourceWithinDates(ctx context.Context, resourceID string, from, to time.Time) ([]models.Booking, error)
	// Create assigns a fresh ID to the booking before inserting it.
	Create(ctx context.Context, booking *models.Booking) error
	Replace(ctx context.Context, id string, booking models.Booking) (models.Outcome, error)
	Delete(ctx context.Context, id string) (models.Outcome, error)
	DeleteByResourceFromDate(ctx context.Context, resourceID string, from time.Time) (int64, error)
	DeleteByInstitutionFromDate(ctx context.Context, institutionID string, from time.Time) (int64, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB BookingRepository and makes sure
// its indexes exist.
func NewMongoBookingRepo(db *mongo.Database) (BookingRepository, error) {
	repo := &mongoBookingRepo{coll: db.Collection(database.BookingsCollection)}
	if err := repo.ensureIndexes(); err != nil {
		return nil, fmt.Errorf("bookings: %w", err)
	}
	return repo, nil
}
