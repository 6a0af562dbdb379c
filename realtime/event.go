package realtime

import (
	"context"
	"encoding/json"
	"time"

	"lounge_booking/model"
)

const (
	TableReservations = "reservations"
	TableAppConfig    = "app_config"

	EventInsert   = "INSERT"
	EventUpdate   = "UPDATE"
	EventDelete   = "DELETE"
	EventSnapshot = "SNAPSHOT"
)

// Event is one row change, shaped like a hosted-database change feed payload.
type Event struct {
	Table           string          `json:"table"`
	Type            string          `json:"eventType"`
	New             json.RawMessage `json:"new,omitempty"`
	Old             json.RawMessage `json:"old,omitempty"`
	CommitTimestamp time.Time       `json:"commitTimestamp"`
}

// Publisher is the write side of the change feed.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

type rowKey struct {
	ID  string `json:"id,omitempty"`
	Key string `json:"key,omitempty"`
}

func ReservationEvent(eventType string, row model.Reservation) Event {
	ev := Event{Table: TableReservations, Type: eventType, CommitTimestamp: time.Now().UTC()}
	if eventType != EventDelete {
		ev.New, _ = json.Marshal(row)
	}
	ev.Old, _ = json.Marshal(rowKey{ID: row.ID})
	return ev
}

func ConfigEvent(eventType string, cfg model.AppConfig) Event {
	ev := Event{Table: TableAppConfig, Type: eventType, CommitTimestamp: time.Now().UTC()}
	if eventType != EventDelete {
		ev.New, _ = json.Marshal(cfg)
	}
	ev.Old, _ = json.Marshal(rowKey{Key: cfg.Key})
	return ev
}

// Discard drops every event; used when nothing listens.
type Discard struct{}

func (Discard) Publish(context.Context, Event) error { return nil }
