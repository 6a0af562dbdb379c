package realtime

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"gorm.io/datatypes"

	"lounge_booking/model"
)

func TestHubSendsPublicAndAdminPayloads(t *testing.T) {
	h := NewHub()
	public := NewClient("public", false)
	admin := NewClient("admin", true)
	h.Register(public)
	h.Register(admin)

	row := pendingRow("friday|booth|03")
	row.Status = model.StatusReserved
	row.Customer = datatypes.NewJSONType(&model.Customer{FullName: "BRUNO"})
	h.Broadcast(ReservationEvent(EventUpdate, row))

	var pubEv, adminEv Event
	if err := json.Unmarshal(<-public.Send, &pubEv); err != nil {
		t.Fatalf("decode public: %v", err)
	}
	if err := json.Unmarshal(<-admin.Send, &adminEv); err != nil {
		t.Fatalf("decode admin: %v", err)
	}

	var pubRow, adminRow model.Reservation
	_ = json.Unmarshal(pubEv.New, &pubRow)
	_ = json.Unmarshal(adminEv.New, &adminRow)
	if pubRow.CustomerData() != nil {
		t.Fatalf("public client received customer data")
	}
	if c := adminRow.CustomerData(); c == nil || c.FullName != "BRUNO" {
		t.Fatalf("admin client missing customer data")
	}
}

func TestHubDropsForSlowClient(t *testing.T) {
	h := NewHub()
	slow := &Client{ID: "slow", Send: make(chan []byte, 1)}
	h.Register(slow)

	ev := ReservationEvent(EventDelete, pendingRow("friday|bistro|14"))
	h.Broadcast(ev)
	h.Broadcast(ev)

	if len(slow.Send) != 1 {
		t.Fatalf("expected one buffered message, got %d", len(slow.Send))
	}
}

func TestHubRegisterQueuesInitialMessage(t *testing.T) {
	h := NewHub()
	c := NewClient("c", false)
	h.Register(c, []byte(`{"eventType":"SNAPSHOT"}`))

	if got := string(<-c.Send); got != `{"eventType":"SNAPSHOT"}` {
		t.Fatalf("unexpected first message %s", got)
	}
	h.Unregister(c)
	h.Unregister(c)
	if h.Count() != 0 {
		t.Fatalf("expected empty hub")
	}
}

func TestRunPumpsBrokerIntoMirrorAndHub(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	broker := NewMemoryBroker()
	mirror := NewMirror()
	hub := NewHub()
	client := NewClient("c", true)
	hub.Register(client)

	events, err := broker.Subscribe(ctx)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	done := make(chan struct{})
	go func() {
		Run(ctx, events, mirror, hub)
		close(done)
	}()

	if err := broker.Publish(ctx, ReservationEvent(EventInsert, pendingRow("saturday|booth|10"))); err != nil {
		t.Fatalf("publish: %v", err)
	}
	select {
	case <-client.Send:
	case <-time.After(2 * time.Second):
		t.Fatalf("event never reached the hub")
	}
	if len(mirror.Reservations("saturday")) != 1 {
		t.Fatalf("mirror not updated")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("run did not stop on cancel")
	}
}

func TestMemoryBrokerCloseEndsSubscriptions(t *testing.T) {
	broker := NewMemoryBroker()
	ch, err := broker.Subscribe(context.Background())
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	_ = broker.Close()
	if _, ok := <-ch; ok {
		t.Fatalf("expected closed channel")
	}
	if _, err := broker.Subscribe(context.Background()); err == nil {
		t.Fatalf("expected error subscribing to closed broker")
	}
}
