// File: database/repository/user/userMongoCrud.go
package userRepo

import (
	"context"
	"fmt"
	"time"

	"resourcebooking/database"
	"resourcebooking/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new user document.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	user.ID = database.NewID()
	_, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Replace overwrites an existing user document.
func (r *MongoUserRepo) Replace(ctx context.Context, id string, user models.User) (models.Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	user.ID = id
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, user)
	if err != nil {
		return models.OutcomeNotFound, fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	return database.ReplaceOutcome(result), nil
}

// Delete removes a user document by its ID.
func (r *MongoUserRepo) Delete(ctx context.Context, id string) (models.Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.OutcomeNotFound, fmt.Errorf("failed to delete user with id %s: %w", id, err)
	}
	return database.DeleteOutcome(result), nil
}
