package services

import (
	"sync"

	"github.com/secretmission/mission-backend/models"
	"github.com/secretmission/mission-backend/utils/logger"
)

// Hub maps room ids to their subscribed connections and fans events out to
// them. Delivery is at-most-once best effort; a disconnected client recovers
// through the room_state read path, not via replay.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]bool)}
}

// Subscribe attaches the client to a room, detaching it from any previous one.
func (h *Hub) Subscribe(c *Client, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detach(c)
	c.roomID = roomID
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*Client]bool)
	}
	h.rooms[roomID][c] = true
}

// Leave detaches the client without closing its connection.
func (h *Hub) Leave(c *Client) {
	h.mu.Lock()
	h.detach(c)
	h.mu.Unlock()
}

// Unsubscribe detaches the client and closes it.
func (h *Hub) Unsubscribe(c *Client) {
	h.Leave(c)
	c.Close()
}

func (h *Hub) detach(c *Client) {
	if set, ok := h.rooms[c.roomID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.rooms, c.roomID)
		}
	}
	c.roomID = ""
}

// Broadcast sends an event to every client subscribed to the room. The
// recipient set is snapshotted under the lock; sends happen without it and
// never fail the caller.
func (h *Hub) Broadcast(roomID string, event models.Event) {
	data, err := models.EncodeEvent(event)
	if err != nil {
		logger.Errorf("[Hub] failed to encode %s event: %v", event.EventType(), err)
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.rooms[roomID]))
	for c := range h.rooms[roomID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.trySend(data)
	}
}
