package repository

import (
	"context"
	"fmt"

	"resourcebooking/config"
	bookingRepo "resourcebooking/database/repository/booking"
	errorReportRepo "resourcebooking/database/repository/errorreport"
	institutionRepo "resourcebooking/database/repository/institution"
	memoryRepo "resourcebooking/database/repository/memory"
	resourceRepo "resourcebooking/database/repository/resource"
	userRepo "resourcebooking/database/repository/user"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the repository interfaces.
type (
	BookingRepository     = bookingRepo.BookingRepository
	ErrorReportRepository = errorReportRepo.ErrorReportRepository
	ResourceRepository    = resourceRepo.ResourceRepository
	InstitutionRepository = institutionRepo.InstitutionRepository
	UserRepository        = userRepo.UserRepository
)

// Repositories bundles one repository per collection.
type Repositories struct {
	Bookings     BookingRepository
	ErrorReports ErrorReportRepository
	Resources    ResourceRepository
	Institutions InstitutionRepository
	Users        UserRepository
}

// NewMongoRepositories builds the MongoDB-backed repositories on db.
func NewMongoRepositories(db *mongo.Database) (*Repositories, error) {
	bookings, err := bookingRepo.NewMongoBookingRepo(db)
	if err != nil {
		return nil, err
	}
	errorReports, err := errorReportRepo.NewMongoErrorReportRepo(db)
	if err != nil {
		return nil, err
	}
	resources, err := resourceRepo.NewMongoResourceRepo(db)
	if err != nil {
		return nil, err
	}
	users, err := userRepo.NewMongoUserRepo(db)
	if err != nil {
		return nil, err
	}
	return &Repositories{
		Bookings:     bookings,
		ErrorReports: errorReports,
		Resources:    resources,
		Institutions: institutionRepo.NewMongoInstitutionRepo(db),
		Users:        users,
	}, nil
}

// NewMemoryRepositories builds repositories sharing one in-memory store.
func NewMemoryRepositories() *Repositories {
	store := memoryRepo.New()
	return &Repositories{
		Bookings:     store.Bookings(),
		ErrorReports: store.ErrorReports(),
		Resources:    store.Resources(),
		Institutions: store.Institutions(),
		Users:        store.Users(),
	}
}

// Open selects the backend named in cfg. The returned client is nil for the
// memory backend.
func Open(ctx context.Context, cfg *config.Config, connect func(context.Context, string) (*mongo.Client, error)) (*Repositories, *mongo.Client, error) {
	if cfg.StoreBackend == config.BackendMemory {
		return NewMemoryRepositories(), nil, nil
	}
	client, err := connect(ctx, cfg.MongoConnectionString)
	if err != nil {
		return nil, nil, err
	}
	repos, err := NewMongoRepositories(client.Database(cfg.MongoDatabaseName))
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to prepare collections: %w", err)
	}
	return repos, client, nil
}
