package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"trivia-api/internal/services"
	"trivia-api/internal/ws"

	"github.com/gin-gonic/gin"
)

// Broadcaster publishes question-bank changes to live subscribers.
type Broadcaster interface {
	Broadcast(topic string, message ws.WSMessage)
}

type QuestionHandler struct {
	questionService *services.QuestionService
	hub             Broadcaster
}

func NewQuestionHandler(questionService *services.QuestionService, hub Broadcaster) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, hub: hub}
}

// CreateQuestionRequest accepts category and difficulty as JSON numbers or
// numeric strings.
type CreateQuestionRequest struct {
	Question   string      `json:"question" binding:"required" example:"Who discovered penicillin?"`
	Answer     string      `json:"answer" binding:"required" example:"Alexander Fleming"`
	Category   json.Number `json:"category" binding:"required" swaggertype:"integer" example:"1"`
	Difficulty json.Number `json:"difficulty" binding:"required" swaggertype:"integer" example:"3"`
}

type SearchRequest struct {
	SearchTerm *string `json:"searchTerm" example:"title"`
}

type QuestionsResponse struct {
	Success         bool                `json:"success" example:"true"`
	Questions       []FormattedQuestion `json:"questions"`
	TotalQuestions  int                 `json:"total_questions" example:"19"`
	Categories      []string            `json:"categories" example:"Science,Art"`
	TotalCategories int                 `json:"total_categories" example:"6"`
}

type DeleteQuestionResponse struct {
	Success        bool                `json:"success" example:"true"`
	Deleted        string              `json:"deleted" example:"10"`
	Message        string              `json:"message" example:"Question 10 deleted"`
	Questions      []FormattedQuestion `json:"questions"`
	TotalQuestions int                 `json:"total_questions" example:"18"`
}

type CreateQuestionResponse struct {
	Success    bool   `json:"success" example:"true"`
	Question   string `json:"question" example:"Who discovered penicillin?"`
	Answer     string `json:"answer" example:"Alexander Fleming"`
	Category   int    `json:"category" example:"1"`
	Difficulty int    `json:"difficulty" example:"3"`
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Ten questions per page ordered by id, with the full count and category labels
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} QuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	result, err := h.questionService.List(c.Request.Context(), page(c))
	if err != nil {
		respondError(c, "list questions", err)
		return
	}

	c.JSON(http.StatusOK, QuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		Categories:      result.Categories,
		TotalCategories: len(result.Categories),
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int true  "Question ID"
// @Param        page query int false "Page of the refreshed listing" default(1)
// @Success      200 {object} DeleteQuestionResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	rawID := c.Param("id")

	result, err := h.questionService.Delete(c.Request.Context(), rawID, page(c))
	if err != nil {
		respondError(c, "delete question", err)
		return
	}

	h.broadcast(ws.EventQuestionDeleted, result.Deleted.Format())

	c.JSON(http.StatusOK, DeleteQuestionResponse{
		Success:        true,
		Deleted:        rawID,
		Message:        fmt.Sprintf("Question %s deleted", rawID),
		Questions:      result.Questions,
		TotalQuestions: result.Total,
	})
}

// CreateQuestion godoc
// @Summary      Create a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      200 {object} CreateQuestionResponse
// @Failure      401 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "create question", fmt.Errorf("bind body: %w: %w", services.ErrValidation, err))
		return
	}

	category, err := req.Category.Int64()
	if err != nil {
		respondError(c, "create question", fmt.Errorf("category %q: %w", req.Category, services.ErrValidation))
		return
	}
	difficulty, err := req.Difficulty.Int64()
	if err != nil {
		respondError(c, "create question", fmt.Errorf("difficulty %q: %w", req.Difficulty, services.ErrValidation))
		return
	}

	question, err := h.questionService.Create(c.Request.Context(), services.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   int(category),
		Difficulty: int(difficulty),
	})
	if err != nil {
		respondError(c, "create question", err)
		return
	}

	h.broadcast(ws.EventQuestionCreated, question.Format())

	c.JSON(http.StatusOK, CreateQuestionResponse{
		Success:    true,
		Question:   question.Question,
		Answer:     question.Answer,
		Category:   question.Category,
		Difficulty: question.Difficulty,
	})
}

// SearchQuestions godoc
// @Summary      Search questions
// @Description  Case-insensitive substring match on the question text; total_questions counts every match
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body SearchRequest true "Search term"
// @Param        page    query int false "Page number" default(1)
// @Success      200 {object} QuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "search questions", fmt.Errorf("bind body: %w: %w", services.ErrNotFound, err))
		return
	}
	if req.SearchTerm == nil {
		respondError(c, "search questions", fmt.Errorf("searchTerm missing: %w", services.ErrNotFound))
		return
	}

	result, err := h.questionService.Search(c.Request.Context(), *req.SearchTerm, page(c))
	if err != nil {
		respondError(c, "search questions", err)
		return
	}

	c.JSON(http.StatusOK, QuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		Categories:      result.Categories,
		TotalCategories: len(result.Categories),
	})
}

func (h *QuestionHandler) broadcast(event string, data interface{}) {
	if h.hub == nil {
		return
	}
	h.hub.Broadcast(ws.TopicQuestions, ws.WSMessage{Type: event, Data: data})
}
