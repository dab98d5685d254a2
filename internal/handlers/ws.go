package handlers

import (
	"log/slog"
	"net/http"

	"trivia-api/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleQuestionEvents godoc
// @Summary      WebSocket stream of question-bank changes
// @Description  Receives question_created and question_deleted events
// @Tags         websocket
// @Router       /ws/questions [get]
func (h *WSHandler) HandleQuestionEvents(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade error", "error", err)
		return
	}

	h.hub.AddConnection(ws.TopicQuestions, conn)
	defer h.hub.RemoveConnection(ws.TopicQuestions, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
