package message

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks one live websocket per principal id. A second connection from
// the same principal replaces the first.
type Hub struct {
	connections map[string]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(principalID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.connections[principalID]; exists && old != nil {
		_ = old.Close()
	}

	h.connections[principalID] = conn
}

func (h *Hub) Unregister(principalID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[principalID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, principalID)
	}
}

func (h *Hub) SendTo(principalID string, payload interface{}) bool {
	h.mutex.RLock()
	conn, exists := h.connections[principalID]
	h.mutex.RUnlock()

	if !exists || conn == nil {
		return false
	}

	if err := conn.WriteJSON(payload); err != nil {
		h.Unregister(principalID)
		return false
	}

	return true
}

func (h *Hub) IsOnline(principalID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[principalID]
	return exists
}

// Broadcast pushes the payload to both ends of a conversation. The sender
// echo keeps other open tabs in sync.
func (h *Hub) Broadcast(senderID, receiverID string, payload interface{}) bool {
	_ = h.SendTo(senderID, payload)
	return h.SendTo(receiverID, payload)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}
