package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// QuizRequest keeps quiz_category raw so the response can echo it back
// exactly as sent.
type QuizRequest struct {
	QuizCategory      json.RawMessage `json:"quiz_category" binding:"required" swaggertype:"object"`
	PreviousQuestions []uint          `json:"previous_questions" example:"3,5"`
}

// QuizCategory is the client's category choice. ID is the zero-based index
// and may arrive as a number or a numeric string.
type QuizCategory struct {
	Type string      `json:"type" example:"History"`
	ID   json.Number `json:"id" swaggertype:"string" example:"3"`
}

type QuizResponse struct {
	Success           bool               `json:"success" example:"true"`
	Question          *FormattedQuestion `json:"question,omitempty"`
	PreviousQuestions []uint             `json:"previousQuestions"`
	Category          json.RawMessage    `json:"category" swaggertype:"object"`
}

// NextQuestion godoc
// @Summary      Next quiz question
// @Description  Lowest-id question of the chosen category (or all, with type "click") not in previous_questions. No question field means the quiz is over.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Quiz state"
// @Success      200 {object} QuizResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "quiz", fmt.Errorf("bind body: %w: %w", services.ErrValidation, err))
		return
	}

	sel, err := selectionFromRequest(req)
	if err != nil {
		respondError(c, "quiz", err)
		return
	}

	question, err := h.quizService.NextQuestion(c.Request.Context(), sel)
	if err != nil {
		respondError(c, "quiz", err)
		return
	}

	previous := req.PreviousQuestions
	if previous == nil {
		previous = []uint{}
	}
	resp := QuizResponse{
		Success:           true,
		PreviousQuestions: previous,
		Category:          req.QuizCategory,
	}
	if question != nil {
		formatted := question.Format()
		resp.Question = &formatted
	}

	c.JSON(http.StatusOK, resp)
}

func selectionFromRequest(req QuizRequest) (services.QuizSelection, error) {
	var category QuizCategory
	if err := json.Unmarshal(req.QuizCategory, &category); err != nil {
		return services.QuizSelection{}, fmt.Errorf("quiz_category: %w: %w", services.ErrValidation, err)
	}

	sel := services.QuizSelection{Previous: req.PreviousQuestions}
	if category.Type == services.AllCategoriesType {
		sel.AllCategories = true
		return sel, nil
	}

	index, err := category.ID.Int64()
	if err != nil {
		return services.QuizSelection{}, fmt.Errorf("quiz_category.id %q: %w", category.ID, services.ErrValidation)
	}
	sel.CategoryIndex = int(index)
	return sel, nil
}
