// Package memoryRepo keeps every collection in process memory behind the same
// repository interfaces as the MongoDB implementation. It backs the test
// suites and STORE_BACKEND=memory.
package memoryRepo

import (
	"reflect"
	"sort"
	"sync"

	"resourcebooking/database"
	bookingRepo "resourcebooking/database/repository/booking"
	errorReportRepo "resourcebooking/database/repository/errorreport"
	institutionRepo "resourcebooking/database/repository/institution"
	resourceRepo "resourcebooking/database/repository/resource"
	userRepo "resourcebooking/database/repository/user"
	"resourcebooking/models"
)

var (
	_ bookingRepo.BookingRepository         = (*BookingStore)(nil)
	_ errorReportRepo.ErrorReportRepository = (*ErrorReportStore)(nil)
	_ resourceRepo.ResourceRepository       = (*ResourceStore)(nil)
	_ institutionRepo.InstitutionRepository = (*InstitutionStore)(nil)
	_ userRepo.UserRepository               = (*UserStore)(nil)
)

// Store holds all collections under a single lock.
type Store struct {
	mu           sync.RWMutex
	bookings     map[string]models.Booking
	errorReports map[string]models.ErrorReport
	resources    map[string]models.Resource
	institutions map[string]models.Institution
	users        map[string]models.User
}

func New() *Store {
	return &Store{
		bookings:     map[string]models.Booking{},
		errorReports: map[string]models.ErrorReport{},
		resources:    map[string]models.Resource{},
		institutions: map[string]models.Institution{},
		users:        map[string]models.User{},
	}
}

func (s *Store) Bookings() *BookingStore         { return &BookingStore{s: s} }
func (s *Store) ErrorReports() *ErrorReportStore { return &ErrorReportStore{s: s} }
func (s *Store) Resources() *ResourceStore       { return &ResourceStore{s: s} }
func (s *Store) Institutions() *InstitutionStore { return &InstitutionStore{s: s} }
func (s *Store) Users() *UserStore               { return &UserStore{s: s} }

func getRow[T any](rows map[string]T, id string) *T {
	row, ok := rows[id]
	if !ok {
		return nil
	}
	return &row
}

func insertRow[T any](rows map[string]T, row T) string {
	id := database.NewID()
	for _, taken := rows[id]; taken; _, taken = rows[id] {
		id = database.NewID()
	}
	rows[id] = row
	return id
}

func replaceRow[T any](rows map[string]T, id string, row T) models.Outcome {
	current, ok := rows[id]
	if !ok {
		return models.OutcomeNotFound
	}
	if reflect.DeepEqual(current, row) {
		return models.OutcomeUnchanged
	}
	rows[id] = row
	return models.OutcomeApplied
}

func deleteRow[T any](rows map[string]T, id string) models.Outcome {
	if _, ok := rows[id]; !ok {
		return models.OutcomeNotFound
	}
	delete(rows, id)
	return models.OutcomeApplied
}

// filterRows returns the matching rows ordered by less. Ties keep id order.
func filterRows[T any](rows map[string]T, keep func(T) bool, less func(a, b T) bool) []T {
	ids := make([]string, 0, len(rows))
	for id := range rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := []T{}
	for _, id := range ids {
		if row := rows[id]; keep(row) {
			out = append(out, row)
		}
	}
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}
