package memoryRepo

import (
	"context"

	"resourcebooking/models"
)

type ErrorReportStore struct {
	s *Store
}

func newestReportFirst(a, b models.ErrorReport) bool { return a.CreatedDate.After(b.CreatedDate) }

func (r *ErrorReportStore) GetByID(_ context.Context, id string) (*models.ErrorReport, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return getRow(r.s.errorReports, id), nil
}

func (r *ErrorReportStore) ListByInstitution(_ context.Context, institutionID string) ([]models.ErrorReport, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterRows(r.s.errorReports, func(e models.ErrorReport) bool {
		return e.InstitutionID == institutionID
	}, newestReportFirst), nil
}

func (r *ErrorReportStore) ListByResource(_ context.Context, resourceID string) ([]models.ErrorReport, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return filterRows(r.s.errorReports, func(e models.ErrorReport) bool {
		return e.ResourceID == resourceID
	}, newestReportFirst), nil
}

func (r *ErrorReportStore) Create(_ context.Context, report *models.ErrorReport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	report.ID = ""
	id := insertRow(r.s.errorReports, *report)
	report.ID = id
	r.s.errorReports[id] = *report
	return nil
}

func (r *ErrorReportStore) Replace(_ context.Context, id string, report models.ErrorReport) (models.Outcome, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	report.ID = id
	return replaceRow(r.s.errorReports, id, report), nil
}

func (r *ErrorReportStore) Delete(_ context.Context, id string) (models.Outcome, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return deleteRow(r.s.errorReports, id), nil
}

func (r *ErrorReportStore) CountActiveByResource(_ context.Context, resourceID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, e := range r.s.errorReports {
		if e.ResourceID == resourceID && !e.Resolved {
			n++
		}
	}
	return n, nil
}

func (r *ErrorReportStore) ResolveByResource(_ context.Context, resourceID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, e := range r.s.errorReports {
		if e.ResourceID == resourceID && !e.Resolved {
			e.Resolved = true
			r.s.errorReports[id] = e
			n++
		}
	}
	return n, nil
}
