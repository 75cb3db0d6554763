package websocket

import (
	"encoding/json"
	"log"
	"time"
)

// Event is a message pushed to connected admin dashboards
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub manages all WebSocket connections for the live admin feed
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Broadcast channel for events to all clients
	Broadcast chan *Event

	// Register requests from clients
	Register chan *Client

	// Unregister requests from clients
	Unregister chan *Client
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Broadcast:  make(chan *Event, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Run processes register, unregister and broadcast requests. Intended to be
// started once as a goroutine from main.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.clients[client] = true
			log.Printf("🔌 Admin dashboard connected (%d active)", len(h.clients))

		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				log.Printf("🔌 Admin dashboard disconnected (%d active)", len(h.clients))
			}

		case event := <-h.Broadcast:
			payload, err := json.Marshal(event)
			if err != nil {
				log.Printf("❌ Failed to marshal websocket event: %v", err)
				continue
			}
			for client := range h.clients {
				select {
				case client.Send <- payload:
				default:
					// Slow consumer, drop it
					delete(h.clients, client)
					close(client.Send)
				}
			}
		}
	}
}

// Publish queues an event for broadcast without blocking the caller.
// Events are dropped when the broadcast buffer is full; the dashboard
// re-syncs from the snapshot endpoint on reconnect.
func (h *Hub) Publish(eventType string, data interface{}) {
	event := &Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
	select {
	case h.Broadcast <- event:
	default:
		log.Printf("⚠️ WebSocket broadcast buffer full, dropping %s event", eventType)
	}
}
