package cascade

import (
	"context"
	"errors"
	"testing"
	"time"

	memoryRepo "resourcebooking/database/repository/memory"
	"resourcebooking/models"
	"resourcebooking/services/booking"
	"resourcebooking/services/errorreport"

	"go.uber.org/zap"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	store    *memoryRepo.Store
	bookings *booking.DefaultBookingService
	reports  *errorreport.DefaultErrorReportService
	images   *recordingJanitor
	c        *Coordinator
}

type recordingJanitor struct {
	urls []string
}

func (r *recordingJanitor) ScheduleImageDelete(_ context.Context, u string) error {
	r.urls = append(r.urls, u)
	return nil
}

func newFixture(now time.Time) *fixture {
	store := memoryRepo.New()
	logger := zap.NewNop()
	bookings := booking.NewBookingService(store.Bookings(), logger, false)
	bookings.Now = func() time.Time { return now }
	reports := errorreport.NewErrorReportService(store.ErrorReports(), store.Resources(), logger)
	images := &recordingJanitor{}
	return &fixture{
		store:    store,
		bookings: bookings,
		reports:  reports,
		images:   images,
		c: &Coordinator{
			Bookings:     bookings,
			Reports:      reports,
			Resources:    store.Resources(),
			Institutions: store.Institutions(),
			Images:       images,
			Logger:       logger,
		},
	}
}

func (f *fixture) addBooking(t *testing.T, b models.Booking) models.Booking {
	t.Helper()
	if err := f.bookings.Create(context.Background(), &b); err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return b
}

func TestDeleteResourceCascades(t *testing.T) {
	ctx := context.Background()
	f := newFixture(time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC))

	res := models.Resource{Name: "Lab", InstitutionID: "i1", ImageURL: "https://img/lab.png"}
	_ = f.store.Resources().Create(ctx, &res)
	past := f.addBooking(t, models.Booking{ResourceID: res.ID, Date: date(2025, 1, 20), StartTime: "10:00"})
	future := f.addBooking(t, models.Booking{ResourceID: res.ID, Date: date(2025, 3, 1), StartTime: "10:00"})
	report := models.ErrorReport{ResourceID: res.ID}
	_ = f.reports.Create(ctx, &report)

	rep, err := f.c.DeleteResource(ctx, res.ID)
	if err != nil {
		t.Fatalf("DeleteResource: %v", err)
	}
	if rep.Outcome != models.OutcomeApplied {
		t.Fatalf("outcome = %v, want applied", rep.Outcome)
	}
	if got, _ := f.store.Resources().GetByID(ctx, res.ID); got != nil {
		t.Fatalf("resource still present")
	}
	if got, _ := f.bookings.Get(ctx, future.ID); got != nil {
		t.Fatalf("future booking should be cleared")
	}
	if got, _ := f.bookings.Get(ctx, past.ID); got == nil {
		t.Fatalf("past booking should be kept")
	}
	if active, _ := f.reports.AnyActiveOnResource(ctx, res.ID); active {
		t.Fatalf("error reports should be resolved")
	}
	if len(f.images.urls) != 1 || f.images.urls[0] != res.ImageURL {
		t.Fatalf("image clean-up = %v", f.images.urls)
	}

	wantSteps := []string{StepClearBookings, StepResolveReports, StepDeleteResource, StepScheduleImage}
	if len(rep.Steps) != len(wantSteps) {
		t.Fatalf("steps = %+v", rep.Steps)
	}
	for i, name := range wantSteps {
		if rep.Steps[i].Name != name {
			t.Fatalf("step %d = %s, want %s", i, rep.Steps[i].Name, name)
		}
	}
}

func TestDeleteResourceWithNothingToClear(t *testing.T) {
	ctx := context.Background()
	f := newFixture(date(2025, 2, 1))
	res := models.Resource{Name: "Room"}
	_ = f.store.Resources().Create(ctx, &res)

	rep, err := f.c.DeleteResource(ctx, res.ID)
	if err != nil || rep.Outcome != models.OutcomeApplied {
		t.Fatalf("DeleteResource = %v, %v", rep.Outcome, err)
	}
	if rep.Steps[0].Changed || rep.Steps[1].Changed {
		t.Fatalf("side effects should report no change: %+v", rep.Steps)
	}
	if len(f.images.urls) != 0 {
		t.Fatalf("no image to clean up, got %v", f.images.urls)
	}
}

func TestDeleteMissingResourceStillRunsSideEffects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(date(2025, 2, 1))
	b := f.addBooking(t, models.Booking{ResourceID: "gone", Date: date(2025, 5, 1), StartTime: "12:00"})

	rep, err := f.c.DeleteResource(ctx, "gone")
	if err != nil || rep.Outcome != models.OutcomeNotFound {
		t.Fatalf("DeleteResource = %v, %v; want not_found", rep.Outcome, err)
	}
	if got, _ := f.bookings.Get(ctx, b.ID); got != nil {
		t.Fatalf("bookings on a missing resource are still cleared")
	}
}

type failingClearer struct{}

func (failingClearer) ClearFutureBookingsForResource(context.Context, string) (bool, error) {
	return false, errors.New("store unavailable")
}

func (failingClearer) ClearFutureBookingsForInstitution(context.Context, string) (bool, error) {
	return false, errors.New("store unavailable")
}

func TestFailedStepDoesNotBlockMutation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(date(2025, 2, 1))
	f.c.Bookings = failingClearer{}

	res := models.Resource{Name: "Room"}
	_ = f.store.Resources().Create(ctx, &res)
	rep, err := f.c.DeleteResource(ctx, res.ID)
	if err != nil || rep.Outcome != models.OutcomeApplied {
		t.Fatalf("DeleteResource = %v, %v", rep.Outcome, err)
	}
	if failed := rep.Failed(); len(failed) != 1 || failed[0].Name != StepClearBookings {
		t.Fatalf("failed steps = %+v", failed)
	}

	inst := models.Institution{Name: "Uni"}
	_ = f.store.Institutions().Create(ctx, &inst)
	inst.Name = "University"
	rep, err = f.c.UpdateInstitution(ctx, inst.ID, inst)
	if err != nil || rep.Outcome != models.OutcomeApplied {
		t.Fatalf("UpdateInstitution = %v, %v", rep.Outcome, err)
	}
}

func TestUpdateInstitutionClearsFutureBookings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(date(2025, 2, 1))
	inst := models.Institution{Name: "Uni", OpenTime: "08:00", CloseTime: "18:00", BookingInterval: 30}
	_ = f.store.Institutions().Create(ctx, &inst)
	kept := f.addBooking(t, models.Booking{InstitutionID: inst.ID, Date: date(2025, 1, 10), StartTime: "10:00"})
	dropped := f.addBooking(t, models.Booking{InstitutionID: inst.ID, Date: date(2025, 6, 1), StartTime: "10:00"})

	inst.CloseTime = "20:00"
	rep, err := f.c.UpdateInstitution(ctx, inst.ID, inst)
	if err != nil || rep.Outcome != models.OutcomeApplied {
		t.Fatalf("UpdateInstitution = %v, %v", rep.Outcome, err)
	}
	if got, _ := f.bookings.Get(ctx, dropped.ID); got != nil {
		t.Fatalf("future booking should be cleared")
	}
	if got, _ := f.bookings.Get(ctx, kept.ID); got == nil {
		t.Fatalf("past booking should be kept")
	}

	// Bookings are cleared even when the institution does not exist.
	orphan := f.addBooking(t, models.Booking{InstitutionID: "missing", Date: date(2025, 6, 1), StartTime: "10:00"})
	rep, _ = f.c.UpdateInstitution(ctx, "missing", models.Institution{Name: "x"})
	if rep.Outcome != models.OutcomeNotFound {
		t.Fatalf("outcome = %v, want not_found", rep.Outcome)
	}
	if got, _ := f.bookings.Get(ctx, orphan.ID); got != nil {
		t.Fatalf("clear runs before the replace regardless of outcome")
	}
}
