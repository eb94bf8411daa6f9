package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/fasthttp/websocket"

	"github.com/jan-pavel/ost-arduino-fishing-game/pkg/models"
)

// Hub fans game events out to every connected spectator.
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mutex      sync.RWMutex
}

// Message is the envelope for everything sent over the feed.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run owns the client set. Call it once, in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			log.Printf("WebSocket client connected. Total: %d", h.clientCount())

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
			h.mutex.Unlock()
			log.Printf("WebSocket client disconnected. Total: %d", h.clientCount())

		case message := <-h.broadcast:
			var failed []*websocket.Conn
			h.mutex.RLock()
			for client := range h.clients {
				if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
					log.Printf("Error sending WebSocket message: %v", err)
					failed = append(failed, client)
				}
			}
			h.mutex.RUnlock()

			if len(failed) > 0 {
				h.mutex.Lock()
				for _, client := range failed {
					delete(h.clients, client)
					client.Close()
				}
				h.mutex.Unlock()
			}
		}
	}
}

func (h *Hub) clientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// Register adds a spectator connection.
func (h *Hub) Register(conn *websocket.Conn) {
	h.register <- conn
}

// Unregister drops a spectator connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.unregister <- conn
}

// BroadcastSnapshot pushes the current game view to every spectator.
func (h *Hub) BroadcastSnapshot(snap models.Snapshot) {
	h.BroadcastMessage("snapshot", snap)
}

// BroadcastMessage sends an arbitrary typed payload to every spectator.
func (h *Hub) BroadcastMessage(msgType string, data interface{}) {
	msg := Message{
		Type: msgType,
		Data: data,
	}

	msgData, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error serializing message: %v", err)
		return
	}

	h.broadcast <- msgData
}
