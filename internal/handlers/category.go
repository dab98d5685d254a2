package handlers

import (
	"net/http"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	questionService *services.QuestionService
}

func NewCategoryHandler(categoryService *services.CategoryService, questionService *services.QuestionService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, questionService: questionService}
}

type CategoriesResponse struct {
	Success         bool     `json:"success" example:"true"`
	Categories      []string `json:"categories" example:"Science,Art"`
	TotalCategories int      `json:"total_categories" example:"2"`
}

type CategoryQuestionsResponse struct {
	Success         bool                `json:"success" example:"true"`
	Questions       []FormattedQuestion `json:"questions"`
	CurrentCategory string              `json:"currentCategory" example:"1"`
}

// ListCategories godoc
// @Summary      List categories
// @Description  All category labels ordered by id
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		// Store failures are reported as not found as well.
		respondError(c, "list categories", notFoundOnError(err))
		return
	}

	labels := models.Labels(categories)
	c.JSON(http.StatusOK, CategoriesResponse{
		Success:         true,
		Categories:      labels,
		TotalCategories: len(labels),
	})
}

// QuestionsByCategory godoc
// @Summary      List questions of a category
// @Description  The path id is the zero-based category index; store id = index + 1
// @Tags         categories
// @Produce      json
// @Param        id   path  int true  "Zero-based category index"
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) QuestionsByCategory(c *gin.Context) {
	result, err := h.questionService.ByCategory(c.Request.Context(), c.Param("id"), page(c))
	if err != nil {
		respondError(c, "questions by category", err)
		return
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		CurrentCategory: result.CurrentCategory,
	})
}
