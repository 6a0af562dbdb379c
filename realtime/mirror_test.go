package realtime

import (
	"encoding/json"
	"testing"

	"gorm.io/datatypes"

	"lounge_booking/model"
)

func pendingRow(id string) model.Reservation {
	spot, _ := model.ParseSpotID(id)
	expires := int64(1_700_000_900_000)
	return model.Reservation{
		ID:        id,
		Day:       spot.Day,
		Type:      spot.Type,
		Number:    spot.Number,
		Status:    model.StatusPending,
		Price:     1500,
		ExpiresAt: &expires,
		HeldBy:    "token",
		Customer:  datatypes.NewJSONType[*model.Customer](nil),
	}
}

func TestMirrorAppliesInsertUpdateDelete(t *testing.T) {
	m := NewMirror()
	row := pendingRow("friday|booth|01")

	if err := m.Apply(ReservationEvent(EventInsert, row)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	got := m.Reservations("friday")
	if len(got) != 1 || got[0].Status != model.StatusPending {
		t.Fatalf("expected one pending row, got %+v", got)
	}

	row.Status = model.StatusReserved
	row.ExpiresAt = nil
	if err := m.Apply(ReservationEvent(EventUpdate, row)); err != nil {
		t.Fatalf("update: %v", err)
	}
	got = m.Reservations("friday")
	if len(got) != 1 || got[0].Status != model.StatusReserved {
		t.Fatalf("expected reserved row after update, got %+v", got)
	}
	if len(m.Reservations("saturday")) != 0 {
		t.Fatalf("expected no saturday rows")
	}

	if err := m.Apply(ReservationEvent(EventDelete, row)); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(m.Reservations("")) != 0 {
		t.Fatalf("expected empty mirror after delete")
	}
}

func TestMirrorUpdateForUnknownRowInserts(t *testing.T) {
	m := NewMirror()
	if err := m.Apply(ReservationEvent(EventUpdate, pendingRow("saturday|bistro|13"))); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(m.Reservations("saturday")) != 1 {
		t.Fatalf("expected update of a missing row to insert it")
	}
}

func TestMirrorConfigEvents(t *testing.T) {
	m := NewMirror()
	cfg := model.AppConfig{Key: model.ConfigPrices, Value: datatypes.JSON(`{"friday|booth|01":2000}`)}
	if err := m.Apply(ConfigEvent(EventInsert, cfg)); err != nil {
		t.Fatalf("insert config: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(m.Snapshot(false).New, &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if len(snap.Config) != 1 || snap.Config[0].Key != model.ConfigPrices {
		t.Fatalf("expected prices in mirror, got %+v", snap.Config)
	}
	var prices model.PriceConfig
	if err := json.Unmarshal(snap.Config[0].Value, &prices); err != nil {
		t.Fatalf("decode prices: %v", err)
	}
	if prices["friday|booth|01"] != 2000 {
		t.Fatalf("unexpected prices %v", prices)
	}
}

func TestMirrorRejectsMalformedEvent(t *testing.T) {
	m := NewMirror()
	ev := Event{Table: TableReservations, Type: EventInsert, New: json.RawMessage(`{"id":`)}
	if err := m.Apply(ev); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestSnapshotPublicStripsCustomer(t *testing.T) {
	m := NewMirror()
	row := pendingRow("friday|booth|02")
	row.Status = model.StatusReserved
	row.Customer = datatypes.NewJSONType(&model.Customer{FullName: "ANA", Phone: "11999999999"})
	m.Hydrate([]model.Reservation{row}, nil)

	var public Snapshot
	if err := json.Unmarshal(m.Snapshot(true).New, &public); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if len(public.Reservations) != 1 {
		t.Fatalf("expected one row, got %d", len(public.Reservations))
	}
	if public.Reservations[0].CustomerData() != nil || public.Reservations[0].HeldBy != "" {
		t.Fatalf("public snapshot leaked customer data: %+v", public.Reservations[0])
	}

	var full Snapshot
	if err := json.Unmarshal(m.Snapshot(false).New, &full); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if c := full.Reservations[0].CustomerData(); c == nil || c.FullName != "ANA" {
		t.Fatalf("admin snapshot should keep the customer, got %+v", c)
	}
}
