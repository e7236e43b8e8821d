package handlers

import (
	"institut_backend/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// EventsHandler upgrades /api/events to a websocket and streams backoffice
// notifications (new orders, contact messages, stock alerts).
type EventsHandler struct {
	hub *ws.Hub
}

func NewEventsHandler(hub *ws.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Upgrade rejects plain HTTP requests on the websocket route.
func (h *EventsHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Serve is the websocket endpoint; it registers the connection with the
// hub and pumps events until the client disconnects.
func (h *EventsHandler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		client := ws.NewClient(h.hub, conn)
		h.hub.Register <- client

		go client.WritePump()
		client.ReadPump()
	})
}
