package database

import (
	"resourcebooking/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names.
const (
	BookingsCollection     = "bookings"
	ErrorReportsCollection = "errorReports"
	ResourcesCollection    = "resources"
	InstitutionsCollection = "institutions"
	UsersCollection        = "users"
)

// NewID returns a fresh document id. Ids supplied by clients are never stored.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// ReplaceOutcome maps a ReplaceOne/UpdateOne result onto an Outcome.
func ReplaceOutcome(res *mongo.UpdateResult) models.Outcome {
	switch {
	case res == nil || res.MatchedCount == 0:
		return models.OutcomeNotFound
	case res.ModifiedCount == 0:
		return models.OutcomeUnchanged
	default:
		return models.OutcomeApplied
	}
}

// DeleteOutcome maps a DeleteOne result onto an Outcome.
func DeleteOutcome(res *mongo.DeleteResult) models.Outcome {
	if res == nil || res.DeletedCount == 0 {
		return models.OutcomeNotFound
	}
	return models.OutcomeApplied
}
