package handlers

import (
	"fmt"
	"net/http"

	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

type LoginResponse struct {
	Success bool   `json:"success" example:"true"`
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
}

// Login godoc
// @Summary      Admin login
// @Description  Exchange the admin password for a bearer token. Only served when an admin password hash is configured.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Admin password"
// @Success      200 {object} LoginResponse
// @Failure      401 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "login", fmt.Errorf("bind body: %w: %w", services.ErrValidation, err))
		return
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		respondError(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Success: true, Token: token})
}
