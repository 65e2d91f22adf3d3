// File: database/repository/errorreport/mongo.go
package errorReportRepo

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

type mongoErrorReportRepo struct {
	coll *mongo.Collection
}

// NewMongoErrorReportRepo constructs a MongoDB ErrorReportRepository.
func NewMongoErrorReportRepo(db *mongo.Database) (ErrorReportRepository, error) {
	repo := &mongoErrorReportRepo{coll: db.Collection(database.ErrorReportsCollection)}
	if err := repo.ensureIndexes(); err != nil {
		return nil, fmt.Errorf("error reports: %w", err)
	}
	return repo, nil
}

func (r *mongoErrorReportRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "institutionId", Value: 1}}, Options: options.Index().SetName("institution_idx")},
		{Keys: bson.D{{Key: "resourceId", Value: 1}, {Key: "resolved", Value: 1}}, Options: options.Index().SetName("resource_resolved_idx")},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *mongoErrorReportRepo) GetByID(ctx context.Context, id string) (*models.ErrorReport, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var report models.ErrorReport
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch error report with id %s: %w", id, err)
	}
	return &report, nil
}

func (r *mongoErrorReportRepo) ListByInstitution(ctx context.Context, institutionID string) ([]models.ErrorReport, error) {
	return r.find(ctx, bson.M{"institutionId": institutionID})
}

func (r *mongoErrorReportRepo) ListByResource(ctx context.Context, resourceID string) ([]models.ErrorReport, error) {
	return r.find(ctx, bson.M{"resourceId": resourceID})
}

func (r *mongoErrorReportRepo) find(ctx context.Context, filter bson.M) ([]models.ErrorReport, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch error reports: %w", err)
	}
	defer cursor.Close(ctx)

	reports := []models.ErrorReport{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("error decoding error reports: %w", err)
	}
	return reports, nil
}

func (r *mongoErrorReportRepo) Create(ctx context.Context, report *models.ErrorReport) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	report.ID = database.NewID()
	if _, err := r.coll.InsertOne(ctx, report); err != nil {
		return fmt.Errorf("failed to create error report: %w", err)
	}
	return nil
}

func (r *mongoErrorReportRepo) Replace(ctx context.Context, id string, report models.ErrorReport) (models.Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	report.ID = id
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id}, report)
	if err != nil {
		return models.OutcomeNotFound, fmt.Errorf("failed to replace error report with id %s: %w", id, err)
	}
	return database.ReplaceOutcome(result), nil
}

func (r *mongoErrorReportRepo) Delete(ctx context.Context, id string) (models.Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.OutcomeNotFound, fmt.Errorf("failed to delete error report with id %s: %w", id, err)
	}
	return database.DeleteOutcome(result), nil
}

func (r *mongoErrorReportRepo) CountActiveByResource(ctx context.Context, resourceID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"resourceId": resourceID, "resolved": false})
	if err != nil {
		return 0, fmt.Errorf("failed to count error reports for resource %s: %w", resourceID, err)
	}
	return count, nil
}

func (r *mongoErrorReportRepo) ResolveByResource(ctx context.Context, resourceID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"resourceId": resourceID, "resolved": false}
	update := bson.M{"$set": bson.M{"resolved": true}}
	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve error reports for resource %s: %w", resourceID, err)
	}
	return result.ModifiedCount, nil
}
