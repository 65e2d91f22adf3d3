package errorreport

import (
	"context"
	"errors"
	"testing"
	"time"

	memoryRepo "resourcebooking/database/repository/memory"
	"resourcebooking/models"

	"go.uber.org/zap"
)

func newService(t *testing.T, resources ...models.Resource) (*DefaultErrorReportService, []string) {
	t.Helper()
	store := memoryRepo.New()
	ids := make([]string, 0, len(resources))
	for _, r := range resources {
		r := r
		if err := store.Resources().Create(context.Background(), &r); err != nil {
			t.Fatalf("seed resource: %v", err)
		}
		ids = append(ids, r.ID)
	}
	return NewErrorReportService(store.ErrorReports(), store.Resources(), zap.NewNop()), ids
}

func TestActivityTracking(t *testing.T) {
	ctx := context.Background()
	svc, ids := newService(t, models.Resource{Name: "Lab", InstitutionID: "i1"})
	r1 := ids[0]

	active, err := svc.AnyActiveOnResource(ctx, r1)
	if err != nil || active {
		t.Fatalf("AnyActiveOnResource on empty store = %v, %v", active, err)
	}

	for _, resolved := range []bool{false, true} {
		r := models.ErrorReport{ResourceID: r1, Resolved: resolved}
		if err := svc.Create(ctx, &r); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if active, _ := svc.AnyActiveOnResource(ctx, r1); !active {
		t.Fatalf("expected an active report")
	}

	changed, err := svc.ResolveAllOnResource(ctx, r1)
	if err != nil || !changed {
		t.Fatalf("ResolveAllOnResource = %v, %v; want true", changed, err)
	}
	if active, _ := svc.AnyActiveOnResource(ctx, r1); active {
		t.Fatalf("no report should be active after resolving")
	}
	changed, _ = svc.ResolveAllOnResource(ctx, r1)
	if changed {
		t.Fatalf("resolving twice should report no change")
	}

	health, err := svc.ResourceHealth(ctx, r1)
	if err != nil || health.Active || health.ResourceID != r1 {
		t.Fatalf("ResourceHealth = %+v, %v", health, err)
	}
}

func TestCreateDefaultsCreatedDate(t *testing.T) {
	now := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	svc, ids := newService(t, models.Resource{Name: "Lab", InstitutionID: "i1"})
	svc.Now = func() time.Time { return now }

	r := models.ErrorReport{ID: "forged", ResourceID: ids[0], Description: "bulb out"}
	if err := svc.Create(context.Background(), &r); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !r.CreatedDate.Equal(now) {
		t.Fatalf("CreatedDate = %v, want %v", r.CreatedDate, now)
	}
	if r.ID == "forged" || r.Resolved {
		t.Fatalf("unexpected report state %+v", r)
	}
}

func TestCreateTakesInstitutionFromResource(t *testing.T) {
	ctx := context.Background()
	svc, ids := newService(t, models.Resource{Name: "Lab", InstitutionID: "inst1"})

	r := models.ErrorReport{ResourceID: ids[0], InstitutionID: "elsewhere", Description: "broken"}
	if err := svc.Create(ctx, &r); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r.InstitutionID != "inst1" {
		t.Errorf("InstitutionID = %q, want inst1", r.InstitutionID)
	}
	listed, _ := svc.ListByInstitution(ctx, "inst1")
	if len(listed) != 1 || listed[0].ID != r.ID {
		t.Errorf("ListByInstitution(inst1) = %+v", listed)
	}
	if other, _ := svc.ListByInstitution(ctx, "elsewhere"); len(other) != 0 {
		t.Errorf("client-supplied institution was stored: %+v", other)
	}

	err := svc.Create(ctx, &models.ErrorReport{ResourceID: "missing"})
	if !errors.Is(err, ErrUnknownResource) {
		t.Errorf("Create on unknown resource = %v, want ErrUnknownResource", err)
	}
}

func TestUpdateKeepsInstitutionConsistent(t *testing.T) {
	ctx := context.Background()
	svc, ids := newService(t,
		models.Resource{Name: "Lab", InstitutionID: "inst1"},
		models.Resource{Name: "Hall", InstitutionID: "inst2"},
	)
	r := models.ErrorReport{ResourceID: ids[0], Description: "broken"}
	if err := svc.Create(ctx, &r); err != nil {
		t.Fatalf("Create: %v", err)
	}

	outcome, err := svc.Update(ctx, r.ID, models.ErrorReport{ResourceID: ids[1], InstitutionID: "inst1", Description: "moved"})
	if err != nil || outcome != models.OutcomeApplied {
		t.Fatalf("Update = %v, %v", outcome, err)
	}
	got, _ := svc.Get(ctx, r.ID)
	if got.InstitutionID != "inst2" || !got.CreatedDate.Equal(r.CreatedDate) {
		t.Errorf("after update = %+v", got)
	}

	outcome, err = svc.Update(ctx, "nope", models.ErrorReport{ResourceID: ids[0]})
	if err != nil || outcome != models.OutcomeNotFound {
		t.Errorf("Update missing = %v, %v", outcome, err)
	}
	if _, err := svc.Update(ctx, r.ID, models.ErrorReport{ResourceID: "missing"}); !errors.Is(err, ErrUnknownResource) {
		t.Errorf("Update to unknown resource = %v", err)
	}
}

func TestListByInstitutionAndResource(t *testing.T) {
	ctx := context.Background()
	svc, ids := newService(t,
		models.Resource{Name: "A", InstitutionID: "i1"},
		models.Resource{Name: "B", InstitutionID: "i1"},
		models.Resource{Name: "C", InstitutionID: "i2"},
	)
	for _, id := range ids {
		r := models.ErrorReport{ResourceID: id}
		if err := svc.Create(ctx, &r); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	byInst, _ := svc.ListByInstitution(ctx, "i1")
	if len(byInst) != 2 {
		t.Fatalf("ListByInstitution = %d, want 2", len(byInst))
	}
	byRes, _ := svc.ListByResource(ctx, ids[2])
	if len(byRes) != 1 {
		t.Fatalf("ListByResource = %d, want 1", len(byRes))
	}
}
