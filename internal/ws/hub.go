package ws

import (
	"encoding/json"
	"log"
	"time"
)

// Backoffice event types pushed over /api/events.
const (
	EventOrderCreated   = "order.created"
	EventContactCreated = "contact.created"
	EventStockLow       = "stock.low"
)

// Event is a backoffice notification broadcast to all connected clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
	At      time.Time   `json:"at"`
}

// Hub maintains the set of connected backoffice clients and fans events
// out to them.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client

	// Outbound events to broadcast.
	Broadcast chan Event
}

func NewHub() *Hub {
	return &Hub{
		Broadcast:  make(chan Event, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.clients[client] = true
		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
		case event := <-h.Broadcast:
			msg, err := json.Marshal(event)
			if err != nil {
				log.Printf("ws: failed to marshal event %q: %v", event.Type, err)
				continue
			}
			for client := range h.clients {
				select {
				case client.Send <- msg:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Notify queues an event for broadcast. Safe on a nil hub and never blocks
// the caller; the event is dropped if the queue is full.
func (h *Hub) Notify(eventType string, payload interface{}) {
	if h == nil {
		return
	}
	select {
	case h.Broadcast <- Event{Type: eventType, Payload: payload, At: time.Now()}:
	default:
	}
}
