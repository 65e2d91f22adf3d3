package institution

import (
	"context"
	"errors"
	"testing"

	memoryRepo "resourcebooking/database/repository/memory"
	"resourcebooking/models"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		in   models.Institution
		ok   bool
	}{
		{"minimal", models.Institution{Name: "Uni"}, true},
		{"hours", models.Institution{Name: "Uni", OpenTime: "08:00", CloseTime: "17:30", BookingInterval: 30}, true},
		{"no name", models.Institution{OpenTime: "08:00", CloseTime: "17:00"}, false},
		{"closes before opening", models.Institution{Name: "Uni", OpenTime: "18:00", CloseTime: "08:00"}, false},
		{"half hours", models.Institution{Name: "Uni", OpenTime: "08:00"}, false},
		{"negative interval", models.Institution{Name: "Uni", BookingInterval: -5}, false},
	}
	for _, tt := range cases {
		err := Validate(tt.in)
		if tt.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidInstitution) {
			t.Fatalf("%s: err = %v, want ErrInvalidInstitution", tt.name, err)
		}
	}
}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	svc := NewInstitutionService(memoryRepo.New().Institutions())
	for _, name := range []string{"Zeta", "Alpha"} {
		in := models.Institution{ID: "forged", Name: name}
		if err := svc.Create(ctx, &in); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if in.ID == "forged" {
			t.Fatalf("client id must be discarded")
		}
	}
	list, _ := svc.List(ctx)
	if len(list) != 2 || list[0].Name != "Alpha" {
		t.Fatalf("List = %+v", list)
	}
}
