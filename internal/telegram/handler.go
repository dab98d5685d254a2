package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"trivia-api/internal/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	textHelp        = "Use /quiz to start a trivia run or /stop to end it."
	textNoQuiz      = "No quiz in progress. Use /quiz to start one."
	textNoQuestions = "The question bank has no categories yet."
	textPickTopic   = "🧠 Pick a category:"
)

type UpdateHandler struct {
	api        sender
	state      *StateManager
	categories *services.CategoryService
	quiz       *services.QuizService
	logger     *slog.Logger
}

func NewUpdateHandler(
	api sender,
	state *StateManager,
	categories *services.CategoryService,
	quiz *services.QuizService,
	logger *slog.Logger,
) *UpdateHandler {
	return &UpdateHandler{
		api:        api,
		state:      state,
		categories: categories,
		quiz:       quiz,
		logger:     logger,
	}
}

func (h *UpdateHandler) Handle(ctx context.Context, upd tgbotapi.Update) {
	if upd.CallbackQuery != nil {
		h.handleCallback(ctx, upd.CallbackQuery)
		return
	}
	if upd.Message != nil {
		h.handleMessage(ctx, upd.Message)
	}
}

func (h *UpdateHandler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start", "quiz":
		h.cmdQuiz(ctx, chatID)
	case "stop":
		h.finish(chatID)
	default:
		h.send(chatID, textHelp, nil)
	}
}

func (h *UpdateHandler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if _, err := h.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		h.logger.Warn("answer callback", "error", err)
	}
	if cb.Message == nil || cb.Message.Chat == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	switch cb.Data {
	case callbackShowAnswer:
		h.reveal(chatID)
	case callbackNext:
		h.next(ctx, chatID)
	case callbackStop:
		h.finish(chatID)
	default:
		index, all, ok := parseCategoryCallback(cb.Data)
		if !ok {
			h.logger.Warn("unknown callback", "data", cb.Data)
			return
		}
		h.begin(ctx, chatID, index, all)
	}
}

func (h *UpdateHandler) cmdQuiz(ctx context.Context, chatID int64) {
	h.state.Clear(chatID)

	labels, err := h.categories.Labels(ctx)
	if err != nil || len(labels) == 0 {
		h.logger.Warn("load categories for bot", "error", err)
		h.send(chatID, textNoQuestions, nil)
		return
	}

	h.send(chatID, textPickTopic, CategoryKeyboard(labels))
}

func (h *UpdateHandler) begin(ctx context.Context, chatID int64, index int, all bool) {
	labels, err := h.categories.Labels(ctx)
	if err != nil {
		h.logger.Warn("load categories for bot", "error", err)
		h.send(chatID, textNoQuestions, nil)
		return
	}

	h.state.Set(chatID, &ChatState{
		Selection: services.QuizSelection{AllCategories: all, CategoryIndex: index},
		Labels:    labels,
	})
	h.next(ctx, chatID)
}

func (h *UpdateHandler) next(ctx context.Context, chatID int64) {
	st := h.state.Get(chatID)
	if st.Labels == nil {
		h.send(chatID, textNoQuiz, nil)
		return
	}

	question, err := h.quiz.NextQuestion(ctx, st.Selection)
	if err != nil {
		h.logger.Error("next quiz question", "chat_id", chatID, "error", err)
		h.send(chatID, "Something went wrong, try again later.", nil)
		return
	}
	if question == nil {
		h.finish(chatID)
		return
	}

	h.state.UpdateField(chatID, func(s *ChatState) {
		s.Current = question
		s.Revealed = false
		s.Asked++
		s.Selection.Previous = append(s.Selection.Previous, question.ID)
	})
	st = h.state.Get(chatID)

	remaining, err := h.quiz.Remaining(ctx, st.Selection)
	if err != nil {
		h.logger.Warn("count remaining questions", "chat_id", chatID, "error", err)
	}

	text := fmt.Sprintf("❓ Question %d", st.Asked)
	if label := st.CategoryLabel(question); label != "" {
		text += " · " + label
	}
	text += fmt.Sprintf(" (difficulty %d, %d left)\n\n%s", question.Difficulty, remaining, question.Question)

	h.send(chatID, text, QuestionKeyboard())
}

func (h *UpdateHandler) reveal(chatID int64) {
	st := h.state.Get(chatID)
	if !st.Active() {
		h.send(chatID, textNoQuiz, nil)
		return
	}

	h.state.UpdateField(chatID, func(s *ChatState) {
		s.Revealed = true
	})
	h.send(chatID, "💡 Answer: "+st.Current.Answer, RevealedKeyboard())
}

func (h *UpdateHandler) finish(chatID int64) {
	st := h.state.Get(chatID)
	h.state.Clear(chatID)

	if st.Labels == nil {
		h.send(chatID, textNoQuiz, nil)
		return
	}
	h.send(chatID, fmt.Sprintf("🏁 Quiz over! You went through %d question(s). /quiz to play again.", st.Asked), nil)
}

func (h *UpdateHandler) send(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := h.api.Send(msg); err != nil {
		h.logger.Warn("send telegram message", "chat_id", chatID, "error", err)
	}
}
