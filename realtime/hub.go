package realtime

import (
	"log"
)

// Hub owns the registry of connected viewers, keyed by session id, and
// fans mutation events out to all of them. All registry access happens
// on the Run goroutine; handlers only touch the channels.
//
// Delivery is best effort and at most once: there is no backlog, so a
// viewer that connects late or drops re-queries the REST API to resync.
type Hub struct {
	sessions map[string]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
}

func NewHub() *Hub {
	return &Hub{
		sessions:   make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 64),
	}
}

// Run processes registration and broadcast traffic until the process
// exits. Start it once, on its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.sessions[client.sessionID] = client
			log.Printf("[WS] connected session=%s user=%s viewers=%d",
				client.sessionID, client.userID, len(h.sessions))

		case client := <-h.unregister:
			if _, ok := h.sessions[client.sessionID]; ok {
				delete(h.sessions, client.sessionID)
				close(client.send)
				log.Printf("[WS] disconnected session=%s viewers=%d",
					client.sessionID, len(h.sessions))
			}

		case event := <-h.broadcast:
			data, err := event.marshal()
			if err != nil {
				log.Printf("[WS] drop event %s: %v", event.Name, err)
				continue
			}
			for id, client := range h.sessions {
				select {
				case client.send <- data:
				default:
					// Viewer is not draining its buffer; drop it rather
					// than stall every other delivery.
					delete(h.sessions, id)
					close(client.send)
					log.Printf("[WS] dropped slow session=%s", id)
				}
			}
		}
	}
}

// Broadcast queues an event for delivery to every connected viewer.
// Fire and forget: it never blocks the mutation that produced the
// event, and ordering relative to the HTTP response is not guaranteed.
func (h *Hub) Broadcast(name string, data interface{}) {
	select {
	case h.broadcast <- Event{Name: name, Data: data}:
	default:
		log.Printf("[WS] broadcast queue full, dropping %s", name)
	}
}
