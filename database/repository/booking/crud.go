// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resourcebooking/database"
	"resourcebooking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	booking.ID = database.NewID()
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) Replace(ctx context.Context, id string, booking models.Booking) (models.Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	booking.ID = id
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, booking)
	if err != nil {
		return models.OutcomeNotFound, fmt.Errorf("failed to replace booking with id %s: %w", id, err)
	}
	return database.ReplaceOutcome(result), nil
}

func (r *mongoBookingRepo) Delete(ctx context.Context, id string) (models.Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.OutcomeNotFound, fmt.Errorf("failed to delete booking with id %s: %w", id, err)
	}
	return database.DeleteOutcome(result), nil
}

func (r *mongoBookingRepo) DeleteByResourceFromDate(ctx context.Context, resourceID string, from time.Time) (int64, error) {
	return r.deleteFromDate(ctx, bson.M{"resourceId": resourceID, "date": bson.M{"$gte": from}})
}

func (r *mongoBookingRepo) DeleteByInstitutionFromDate(ctx context.Context, institutionID string, from time.Time) (int64, error) {
	return r.deleteFromDate(ctx, bson.M{"institutionId": institutionID, "date": bson.M{"$gte": from}})
}

func (r *mongoBookingRepo) deleteFromDate(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete bookings: %w", err)
	}
	return result.DeletedCount, nil
}
