package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Success bool `json:"success" example:"true"`
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       / [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Success: true})
}
