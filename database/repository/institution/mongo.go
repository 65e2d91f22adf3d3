package institutionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resourcebooking/database"
	"resourcebooking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoInstitutionRepo struct {
	coll *mongo.Collection
}

// NewMongoInstitutionRepo constructs a MongoDB InstitutionRepository.
func NewMongoInstitutionRepo(db *mongo.Database) InstitutionRepository {
	return &mongoInstitutionRepo{coll: db.Collection(database.InstitutionsCollection)}
}

func (r *mongoInstitutionRepo) GetByID(ctx context.Context, id string) (*models.Institution, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var institution models.Institution
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&institution)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch institution with id %s: %w", id, err)
	}
	return &institution, nil
}

func (r *mongoInstitutionRepo) List(ctx context.Context) ([]models.Institution, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch institutions: %w", err)
	}
	defer cursor.Close(ctx)

	institutions := []models.Institution{}
	if err := cursor.All(ctx, &institutions); err != nil {
		return nil, fmt.Errorf("error decoding institutions: %w", err)
	}
	return institutions, nil
}

func (r *mongoInstitutionRepo) Create(ctx context.Context, institution *models.Institution) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	institution.ID = database.NewID()
	if _, err := r.coll.InsertOne(ctx, institution); err != nil {
		return fmt.Errorf("failed to create institution: %w", err)
	}
	return nil
}

func (r *mongoInstitutionRepo) Replace(ctx context.Context, id string, institution models.Institution) (models.Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	institution.ID = id
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, institution)
	if err != nil {
		return models.OutcomeNotFound, fmt.Errorf("failed to replace institution with id %s: %w", id, err)
	}
	return database.ReplaceOutcome(result), nil
}

func (r *mongoInstitutionRepo) Delete(ctx context.Context, id string) (models.Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.OutcomeNotFound, fmt.Errorf("failed to delete institution with id %s: %w", id, err)
	}
	return database.DeleteOutcome(result), nil
}
