package helper

import (
	"testing"
	"time"

	"lounge_booking/model"
)

func TestResolveSpotStatus(t *testing.T) {
	now := time.Date(2026, 3, 7, 23, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute).UnixMilli()
	future := now.Add(time.Minute).UnixMilli()

	rows := []model.Reservation{
		{ID: "friday|booth|01", Day: "friday", Type: "booth", Number: "01", Status: model.StatusReserved},
		{ID: "friday|booth|02", Day: "friday", Type: "booth", Number: "02", Status: model.StatusBlocked},
		{ID: "friday|booth|03", Day: "friday", Type: "booth", Number: "03", Status: model.StatusPending, ExpiresAt: &future},
		{ID: "friday|booth|04", Day: "friday", Type: "booth", Number: "04", Status: model.StatusPending, ExpiresAt: &past},
		{ID: "friday|booth|05", Day: "friday", Type: "booth", Number: "05", Status: model.StatusPending},
	}

	cases := []struct {
		number string
		day    string
		want   string
	}{
		{"01", "friday", model.StatusReserved},
		{"02", "friday", model.StatusBlocked},
		{"03", "friday", model.StatusPending},
		{"04", "friday", model.StatusAvailable},
		{"05", "friday", model.StatusPending},
		{"06", "friday", model.StatusAvailable},
		{"01", "saturday", model.StatusAvailable},
	}
	for _, tc := range cases {
		got := ResolveSpotStatus(rows, tc.day, "booth", tc.number, now)
		if got != tc.want {
			t.Fatalf("%s booth %s: got %s, want %s", tc.day, tc.number, got, tc.want)
		}
	}
}

func TestStatusLabelAndPrice(t *testing.T) {
	prices := model.PriceConfig{"friday|bistro|13": 450.4, "friday|booth|01": 0}

	if got := EffectivePrice(prices, model.SpotID{Day: "friday", Type: "bistro", Number: "13"}); got != 450.4 {
		t.Fatalf("override price = %v", got)
	}
	if got := EffectivePrice(prices, model.SpotID{Day: "friday", Type: "booth", Number: "01"}); got != 1500 {
		t.Fatalf("zero override should fall back to default, got %v", got)
	}
	if got := BlockPrice(prices, model.SpotID{Day: "friday", Type: "booth", Number: "02"}); got != 0 {
		t.Fatalf("block price without override = %v", got)
	}

	labels := map[string]string{
		model.StatusAvailable: "R$ 450",
		model.StatusBlocked:   "RESERVADO ADM",
		model.StatusPending:   "EM PROCESSO",
		model.StatusReserved:  "OCUPADO",
	}
	for status, want := range labels {
		if got := StatusLabel(status, 450.4); got != want {
			t.Fatalf("label for %s = %q, want %q", status, got, want)
		}
	}
}
