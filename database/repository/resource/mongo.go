package resourceRepo

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

type mongoResourceRepo struct {
	coll *mongo.Collection
}

// NewMongoResourceRepo constructs a MongoDB ResourceRepository.
func NewMongoResourceRepo(db *mongo.Database) (ResourceRepository, error) {
	repo := &mongoResourceRepo{coll: db.Collection(database.ResourcesCollection)}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := repo.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "institutionId", Value: 1}},
		Options: options.Index().SetName("institution_idx"),
	})
	if err != nil {
		return nil, fmt.Errorf("resources: failed to create indexes: %w", err)
	}
	return repo, nil
}

func (r *mongoResourceRepo) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var resource models.Resource
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&resource)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resource with id %s: %w", id, err)
	}
	return &resource, nil
}

func (r *mongoResourceRepo) ListByInstitution(ctx context.Context, institutionID string) ([]models.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"institutionId": institutionID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resources: %w", err)
	}
	defer cursor.Close(ctx)

	resources := []models.Resource{}
	if err := cursor.All(ctx, &resources); err != nil {
		return nil, fmt.Errorf("error decoding resources: %w", err)
	}
	return resources, nil
}

func (r *mongoResourceRepo) Create(ctx context.Context, resource *models.Resource) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resource.ID = database.NewID()
	if _, err := r.coll.InsertOne(ctx, resource); err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}
	return nil
}

func (r *mongoResourceRepo) Replace(ctx context.Context, id string, resource models.Resource) (models.Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resource.ID = id
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, resource)
	if err != nil {
		return models.OutcomeNotFound, fmt.Errorf("failed to replace resource with id %s: %w", id, err)
	}
	return database.ReplaceOutcome(result), nil
}

func (r *mongoResourceRepo) Delete(ctx context.Context, id string) (models.Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.OutcomeNotFound, fmt.Errorf("failed to delete resource with id %s: %w", id, err)
	}
	return database.DeleteOutcome(result), nil
}
