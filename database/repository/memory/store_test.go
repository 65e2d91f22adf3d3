package memoryRepo

import (
	"context"
	"testing"
	"time"

	"resourcebooking/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateDiscardsClientID(t *testing.T) {
	ctx := context.Background()
	repo := New().Bookings()

	b := models.Booking{ID: "forged", UserID: "u1", Date: day(2025, 3, 1), StartTime: "09:00"}
	if err := repo.Create(ctx, &b); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.ID == "" || b.ID == "forged" {
		t.Fatalf("expected a store-assigned id, got %q", b.ID)
	}
	if got, _ := repo.GetByID(ctx, "forged"); got != nil {
		t.Fatalf("forged id must not be addressable")
	}
	if got, _ := repo.GetByID(ctx, b.ID); got == nil || got.UserID != "u1" {
		t.Fatalf("GetByID(%q) = %+v", b.ID, got)
	}
}

func TestReplaceAndDeleteOutcomes(t *testing.T) {
	ctx := context.Background()
	repo := New().Resources()

	r := models.Resource{Name: "Projector", InstitutionID: "i1"}
	_ = repo.Create(ctx, &r)

	if out, _ := repo.Replace(ctx, "missing", r); out != models.OutcomeNotFound {
		t.Fatalf("Replace missing = %v, want not_found", out)
	}
	if out, _ := repo.Replace(ctx, r.ID, r); out != models.OutcomeUnchanged {
		t.Fatalf("Replace identical = %v, want unchanged", out)
	}
	r.Name = "Beamer"
	if out, _ := repo.Replace(ctx, r.ID, r); out != models.OutcomeApplied {
		t.Fatalf("Replace changed = %v, want applied", out)
	}
	if out, _ := repo.Delete(ctx, r.ID); out != models.OutcomeApplied {
		t.Fatalf("Delete = %v, want applied", out)
	}
	if out, _ := repo.Delete(ctx, r.ID); out != models.OutcomeNotFound {
		t.Fatalf("second Delete = %v, want not_found", out)
	}
}

func TestBookingWindowsAreHalfOpen(t *testing.T) {
	ctx := context.Background()
	repo := New().Bookings()
	for _, d := range []time.Time{day(2025, 1, 9), day(2025, 1, 10), day(2025, 1, 11)} {
		b := models.Booking{ResourceID: "r1", InstitutionID: "i1", Date: d, StartTime: "10:00"}
		_ = repo.Create(ctx, &b)
	}

	got, _ := repo.ListByResourceWithinDates(ctx, "r1", day(2025, 1, 10), day(2025, 1, 11))
	if len(got) != 1 || !got[0].Date.Equal(day(2025, 1, 10)) {
		t.Fatalf("window returned %+v", got)
	}

	n, _ := repo.DeleteByInstitutionFromDate(ctx, "i1", day(2025, 1, 10))
	if n != 2 {
		t.Fatalf("deleted %d, want 2", n)
	}
}

func TestResolveByResource(t *testing.T) {
	ctx := context.Background()
	repo := New().ErrorReports()
	for _, resolved := range []bool{false, false, true} {
		e := models.ErrorReport{ResourceID: "r1", Resolved: resolved}
		_ = repo.Create(ctx, &e)
	}

	if n, _ := repo.CountActiveByResource(ctx, "r1"); n != 2 {
		t.Fatalf("active = %d, want 2", n)
	}
	if n, _ := repo.ResolveByResource(ctx, "r1"); n != 2 {
		t.Fatalf("resolved = %d, want 2", n)
	}
	if n, _ := repo.ResolveByResource(ctx, "r1"); n != 0 {
		t.Fatalf("second resolve = %d, want 0", n)
	}
}
