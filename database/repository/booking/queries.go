// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"resourcebooking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *mongoBookingRepo) ListByUserFromDate(ctx context.Context, userID string, from time.Time) ([]models.Booking, error) {
	return r.find(ctx, bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": from},
	})
}

func (r *mongoBookingRepo) ListByInstitutionWithinDates(ctx context.Context, institutionID string, from, to time.Time) ([]models.Booking, error) {
	return r.find(ctx, bson.M{
		"institutionId": institutionID,
		"date":          bson.M{"$gte": from, "$lt": to},
	})
}

func (r *mongoBookingRepo) ListByResourceWithinDates(ctx context.Context, resourceID string, from, to time.Time) ([]models.Booking, error) {
	return r.find(ctx, bson.M{
		"resourceId": resourceID,
		"date":       bson.M{"$gte": from, "$lt": to},
	})
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
