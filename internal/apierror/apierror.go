// Package apierror holds the error envelope shared by handlers and
// middleware.
package apierror

import "github.com/gin-gonic/gin"

const (
	MessageNotFound         = "resource not found"
	MessageUnprocessable    = "unprocessable Content"
	MessageUnauthorized     = "unauthorized"
	MessageMethodNotAllowed = "method not allowed"
)

// Response is the envelope of every failed request.
type Response struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found"`
}

// Abort stops the chain and writes the envelope for status.
func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Response{
		Success: false,
		Error:   status,
		Message: message,
	})
}
