package handler

import (
	"encoding/json"
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lounge_booking/realtime"
)

// UpgradeRequired rejects plain HTTP requests on websocket routes.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// RealtimeSocket streams change events. The first message is a SNAPSHOT of the
// mirror; admin sockets receive customer data, public ones do not.
func RealtimeSocket(admin bool) func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		client := realtime.NewClient(uuid.NewString(), admin)

		snapshot, err := json.Marshal(mirror.Snapshot(!admin))
		if err != nil {
			log.Printf("encode snapshot: %v", err)
			conn.Close()
			return
		}
		hub.Register(client, snapshot)
		log.Printf("WS client %s connected (admin=%v). Total: %d", client.ID, admin, hub.Count())

		done := make(chan struct{})
		go func() {
			defer close(done)
			for msg := range client.Send {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			}
		}()

		// Clients only listen; reading detects the disconnect.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}

		hub.Unregister(client)
		<-done
		conn.Close()
		log.Printf("WS client %s closed. Total remaining: %d", client.ID, hub.Count())
	}
}
