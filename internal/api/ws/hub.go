package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type StockAlertData struct {
	OutOfStock int `json:"outOfStock"`
	LowStock   int `json:"lowStock"`
}

// Hub tracks one websocket connection per user and pushes stock alerts to
// whoever is online.
type Hub struct {
	connections map[uuid.UUID]*websocket.Conn
	mu          sync.RWMutex
}

var globalHub *Hub
var once sync.Once

func GetHub() *Hub {
	once.Do(func() {
		globalHub = &Hub{
			connections: make(map[uuid.UUID]*websocket.Conn),
		}
	})
	return globalHub
}

func (h *Hub) Register(userID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, exists := h.connections[userID]; exists {
		old.Close()
	}
	h.connections[userID] = conn
	log.Printf("[Hub] user %s connected, %d total", userID, len(h.connections))
}

func (h *Hub) Unregister(userID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, exists := h.connections[userID]; exists {
		conn.Close()
		delete(h.connections, userID)
		log.Printf("[Hub] user %s disconnected, %d total", userID, len(h.connections))
	}
}

func (h *Hub) SendToUser(userID uuid.UUID, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// Resolve under the write lock so an unregister or reconnect between
	// lookup and write can't hand us a closed connection.
	conn, exists := h.connections[userID]
	if !exists {
		return nil
	}

	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, data)
}

func (h *Hub) SendStockAlert(userID uuid.UUID, outOfStock, lowStock int) error {
	msg := Message{
		Type: "stock_alert",
		Data: StockAlertData{
			OutOfStock: outOfStock,
			LowStock:   lowStock,
		},
	}
	return h.SendToUser(userID, msg)
}

func (h *Hub) IsConnected(userID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.connections[userID]
	return exists
}

func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

func (h *Hub) GetConnectedUserIDs() []uuid.UUID {
	h.mu.RLock()
	defer h.mu.RUnlock()

	userIDs := make([]uuid.UUID, 0, len(h.connections))
	for userID := range h.connections {
		userIDs = append(userIDs, userID)
	}
	return userIDs
}
