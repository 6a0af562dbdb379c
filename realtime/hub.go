package realtime

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"lounge_booking/model"
)

type Client struct {
	ID    string
	Admin bool
	Send  chan []byte
}

func NewClient(id string, admin bool) *Client {
	return &Client{ID: id, Admin: admin, Send: make(chan []byte, 64)}
}

// Hub fans change events out to websocket clients. Admin clients receive full
// rows; everyone else gets the public view.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*Client)}
}

// Register adds the client and queues the initial messages ahead of any broadcast.
func (h *Hub) Register(client *Client, initial ...[]byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
	for _, msg := range initial {
		select {
		case client.Send <- msg:
		default:
		}
	}
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client.ID]; !ok {
		return
	}
	delete(h.clients, client.ID)
	close(client.Send)
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) Broadcast(ev Event) {
	admin, err := json.Marshal(ev)
	if err != nil {
		log.Printf("encode %s event: %v", ev.Table, err)
		return
	}
	public, err := json.Marshal(PublicEvent(ev))
	if err != nil {
		log.Printf("encode public %s event: %v", ev.Table, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		payload := public
		if client.Admin {
			payload = admin
		}
		select {
		case client.Send <- payload:
		default:
			log.Printf("drop message for client %s", client.ID)
		}
	}
}

// PublicEvent strips customer data and hold tokens from a reservation event.
func PublicEvent(ev Event) Event {
	if ev.Table != TableReservations || len(ev.New) == 0 {
		return ev
	}
	var row model.Reservation
	if err := json.Unmarshal(ev.New, &row); err != nil {
		ev.New = nil
		return ev
	}
	ev.New, _ = json.Marshal(row.Public())
	return ev
}

// Run feeds subscribed events into the mirror and out to the hub until ctx ends
// or the subscription closes. Subscribe before hydrating the mirror so no change
// falls between the read and the feed.
func Run(ctx context.Context, events <-chan Event, mirror *Mirror, hub *Hub) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := mirror.Apply(ev); err != nil {
				log.Printf("apply %s %s event: %v", ev.Table, ev.Type, err)
				continue
			}
			hub.Broadcast(ev)
		}
	}
}
