package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// newHubServer serves a websocket endpoint that subscribes every client to
// topic and returns a dialable ws:// URL.
func newHubServer(t *testing.T, hub *Hub, topic string) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.AddConnection(topic, conn)
		defer hub.RemoveConnection(topic, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func waitForSubscribers(t *testing.T, hub *Hub, topic string, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Subscribers(topic) != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d subscribers, have %d", n, hub.Subscribers(topic))
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestBroadcastReachesSubscribers(t *testing.T) {
	hub := NewHub()
	url := newHubServer(t, hub, TopicQuestions)

	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()
	waitForSubscribers(t, hub, TopicQuestions, 1)

	hub.Broadcast(TopicQuestions, WSMessage{Type: EventQuestionCreated, Data: map[string]int{"id": 7}})

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var msg struct {
		Type string         `json:"type"`
		Data map[string]int `json:"data"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != EventQuestionCreated || msg.Data["id"] != 7 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

func TestRemoveConnectionOnClientClose(t *testing.T) {
	hub := NewHub()
	url := newHubServer(t, hub, TopicQuestions)

	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	waitForSubscribers(t, hub, TopicQuestions, 1)

	client.Close()
	waitForSubscribers(t, hub, TopicQuestions, 0)
}

func TestBroadcastWithoutSubscribersIsNoop(t *testing.T) {
	hub := NewHub()
	hub.Broadcast("nobody", WSMessage{Type: "x"})
	if hub.Subscribers("nobody") != 0 {
		t.Fatal("expected no subscribers")
	}
}

func TestBroadcastDropsStalledSubscriber(t *testing.T) {
	hub := NewHub()
	hub.writeWait = 50 * time.Millisecond
	url := newHubServer(t, hub, TopicQuestions)

	// The client never reads, so socket buffers fill and writes stall.
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()
	waitForSubscribers(t, hub, TopicQuestions, 1)

	payload := WSMessage{Type: EventQuestionCreated, Data: strings.Repeat("x", 1<<20)}
	start := time.Now()
	for i := 0; i < 200 && hub.Subscribers(TopicQuestions) > 0; i++ {
		hub.Broadcast(TopicQuestions, payload)
	}

	if n := hub.Subscribers(TopicQuestions); n != 0 {
		t.Fatalf("expected stalled subscriber dropped, have %d", n)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("broadcast stalled for %v", elapsed)
	}
}
