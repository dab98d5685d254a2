package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	TopicQuestions = "questions"

	EventQuestionCreated = "question_created"
	EventQuestionDeleted = "question_deleted"

	// DefaultWriteWait bounds each write to a subscriber.
	DefaultWriteWait = 10 * time.Second
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans question-bank events out to websocket subscribers by topic.
type Hub struct {
	mu        sync.Mutex
	topics    map[string]map[*websocket.Conn]bool
	writeWait time.Duration
}

func NewHub() *Hub {
	return &Hub{
		topics:    make(map[string]map[*websocket.Conn]bool),
		writeWait: DefaultWriteWait,
	}
}

func (h *Hub) AddConnection(topic string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.topics[topic] == nil {
		h.topics[topic] = make(map[*websocket.Conn]bool)
	}
	h.topics[topic][conn] = true
	slog.Debug("ws: client connected", "topic", topic, "total", len(h.topics[topic]))
}

func (h *Hub) RemoveConnection(topic string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.topics[topic]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.topics, topic)
		}
		slog.Debug("ws: client disconnected", "topic", topic)
	}
}

// Subscribers returns the number of live connections on topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.topics[topic])
}

// Broadcast writes message to every connection on topic, dropping the ones
// that fail or do not accept the write within the hub's write wait.
func (h *Hub) Broadcast(topic string, message WSMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.topics[topic]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		slog.Error("ws: marshal error", "error", err)
		return
	}

	for conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(h.writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			slog.Warn("ws: write error", "topic", topic, "error", err)
			conn.Close()
			delete(conns, conn)
		}
	}
	if len(conns) == 0 {
		delete(h.topics, topic)
	}
}
