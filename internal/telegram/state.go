package telegram

import (
	"sync"

	"trivia-api/internal/models"
	"trivia-api/internal/services"
)

// ChatState is the quiz run of one chat.
type ChatState struct {
	Selection services.QuizSelection
	// Labels holds the category labels at the time the run started, indexed
	// by store id - 1.
	Labels   []string
	Current  *models.Question
	Revealed bool
	Asked    int
}

// Active reports whether a question is on screen.
func (s *ChatState) Active() bool {
	return s.Current != nil
}

// CategoryLabel returns the label of the question's category, or "" when the
// id falls outside the labels captured for the run.
func (s *ChatState) CategoryLabel(q *models.Question) string {
	i := q.Category - 1
	if i < 0 || i >= len(s.Labels) {
		return ""
	}
	return s.Labels[i]
}

type StateManager struct {
	mu    sync.RWMutex
	chats map[int64]*ChatState
}

func NewStateManager() *StateManager {
	return &StateManager{
		chats: make(map[int64]*ChatState),
	}
}

// Get returns a copy of the chat's state; a chat without a run gets the zero
// state.
func (m *StateManager) Get(chatID int64) *ChatState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.chats[chatID]
	if !ok {
		return &ChatState{}
	}
	cp := *s
	cp.Selection.Previous = append([]uint(nil), s.Selection.Previous...)
	return &cp
}

func (m *StateManager) Set(chatID int64, state *ChatState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chats[chatID] = state
}

func (m *StateManager) Clear(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.chats, chatID)
}

func (m *StateManager) UpdateField(chatID int64, fn func(s *ChatState)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.chats[chatID]
	if !ok {
		s = &ChatState{}
		m.chats[chatID] = s
	}
	fn(s)
}

// Len is the number of chats with a run in progress.
func (m *StateManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.chats)
}
