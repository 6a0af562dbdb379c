package realtime

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"lounge_booking/model"
)

// Snapshot is the payload of a SNAPSHOT event.
type Snapshot struct {
	Reservations []model.Reservation `json:"reservations"`
	Config       []model.AppConfig   `json:"config"`
}

// Mirror keeps the current rows of both tables in memory, fed by change events.
type Mirror struct {
	mu           sync.RWMutex
	reservations map[string]model.Reservation
	configs      map[string]model.AppConfig
}

func NewMirror() *Mirror {
	return &Mirror{
		reservations: make(map[string]model.Reservation),
		configs:      make(map[string]model.AppConfig),
	}
}

// Hydrate replaces the mirror contents with a fresh read of the store.
func (m *Mirror) Hydrate(reservations []model.Reservation, configs []model.AppConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservations = make(map[string]model.Reservation, len(reservations))
	for _, r := range reservations {
		m.reservations[r.ID] = r
	}
	m.configs = make(map[string]model.AppConfig, len(configs))
	for _, c := range configs {
		m.configs[c.Key] = c
	}
}

// Apply reduces one change event into the mirror. Events for unknown tables are ignored.
func (m *Mirror) Apply(ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch ev.Table {
	case TableReservations:
		return reduceReservation(m.reservations, ev)
	case TableAppConfig:
		return reduceConfig(m.configs, ev)
	}
	return nil
}

func reduceReservation(state map[string]model.Reservation, ev Event) error {
	switch ev.Type {
	case EventInsert, EventUpdate:
		var row model.Reservation
		if err := json.Unmarshal(ev.New, &row); err != nil {
			return fmt.Errorf("decode reservation: %w", err)
		}
		state[row.ID] = row
	case EventDelete:
		var key rowKey
		if err := json.Unmarshal(ev.Old, &key); err != nil {
			return fmt.Errorf("decode reservation key: %w", err)
		}
		delete(state, key.ID)
	}
	return nil
}

func reduceConfig(state map[string]model.AppConfig, ev Event) error {
	switch ev.Type {
	case EventInsert, EventUpdate:
		var row model.AppConfig
		if err := json.Unmarshal(ev.New, &row); err != nil {
			return fmt.Errorf("decode config: %w", err)
		}
		state[row.Key] = row
	case EventDelete:
		var key rowKey
		if err := json.Unmarshal(ev.Old, &key); err != nil {
			return fmt.Errorf("decode config key: %w", err)
		}
		delete(state, key.Key)
	}
	return nil
}

// Reservations returns the mirrored rows of a day ordered by id; an empty day means all.
func (m *Mirror) Reservations(day string) []model.Reservation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Reservation, 0, len(m.reservations))
	for _, r := range m.reservations {
		if day == "" || r.Day == day {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Snapshot packs the whole mirror into one event. Public snapshots carry no
// customer data or hold tokens.
func (m *Mirror) Snapshot(public bool) Event {
	rows := m.Reservations("")
	if public {
		for i := range rows {
			rows[i] = rows[i].Public()
		}
	}

	m.mu.RLock()
	configs := make([]model.AppConfig, 0, len(m.configs))
	for _, c := range m.configs {
		configs = append(configs, c)
	}
	m.mu.RUnlock()
	sort.Slice(configs, func(i, j int) bool { return configs[i].Key < configs[j].Key })

	payload, _ := json.Marshal(Snapshot{Reservations: rows, Config: configs})
	return Event{Type: EventSnapshot, New: payload, CommitTimestamp: time.Now().UTC()}
}
