package helper

import (
	"testing"
	"time"

	"lounge_booking/model"
)

func TestLayoutSpots(t *testing.T) {
	spots := LayoutSpots("saturday")
	if len(spots) != 18 {
		t.Fatalf("expected 18 spots, got %d", len(spots))
	}
	booths, bistros := 0, 0
	seen := map[string]bool{}
	for _, s := range spots {
		if seen[s.String()] {
			t.Fatalf("duplicate spot %s", s)
		}
		seen[s.String()] = true
		switch s.Type {
		case "booth":
			booths++
		case "bistro":
			bistros++
		}
	}
	if booths != 10 || bistros != 8 {
		t.Fatalf("expected 10 booths and 8 bistros, got %d and %d", booths, bistros)
	}
}

func TestIsValidSpot(t *testing.T) {
	cases := []struct {
		spot model.SpotID
		want bool
	}{
		{model.SpotID{Day: "friday", Type: "booth", Number: "10"}, true},
		{model.SpotID{Day: "saturday", Type: "bistro", Number: "17"}, true},
		{model.SpotID{Day: "friday", Type: "bistro", Number: "01"}, false},
		{model.SpotID{Day: "sunday", Type: "booth", Number: "01"}, false},
		{model.SpotID{Day: "friday", Type: "booth", Number: "1"}, false},
	}
	for _, tc := range cases {
		if got := IsValidSpot(tc.spot); got != tc.want {
			t.Fatalf("IsValidSpot(%s) = %v, want %v", tc.spot, got, tc.want)
		}
	}
}

func TestBuildFloorPlan(t *testing.T) {
	now := time.Now()
	rows := []model.Reservation{
		{ID: "friday|booth|10", Day: "friday", Type: "booth", Number: "10", Status: model.StatusReserved},
	}
	plan := BuildFloorPlan(rows, "friday", model.PriceConfig{"friday|bistro|20": 600}, now)

	if plan.DayLabel != "Sexta" || len(plan.Sections) != 5 {
		t.Fatalf("unexpected plan header %+v", plan)
	}
	top := plan.Sections[0].Rows[0][0]
	if top.ID != "friday|booth|10" || !top.Disabled || top.Label != "OCUPADO" {
		t.Fatalf("unexpected top booth %+v", top)
	}
	center := plan.Sections[2]
	if center.Name != "center" || len(center.Rows) != 4 || len(center.Rows[0]) != 2 {
		t.Fatalf("unexpected center section %+v", center)
	}
	first := center.Rows[0][0]
	if first.Number != "20" || first.Price != 600 || first.Label != "R$ 600" || first.Disabled {
		t.Fatalf("unexpected bistro 20 %+v", first)
	}
	if first.TypeLabel != "Mesa/Bistrô" {
		t.Fatalf("type label = %q", first.TypeLabel)
	}
}
