package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"trivia-api/internal/apierror"
	"trivia-api/internal/middleware"
	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	MessageNotFound         = apierror.MessageNotFound
	MessageUnprocessable    = apierror.MessageUnprocessable
	MessageUnauthorized     = apierror.MessageUnauthorized
	MessageMethodNotAllowed = apierror.MessageMethodNotAllowed
)

// ErrorResponse is the envelope of every failed request.
type ErrorResponse = apierror.Response

// Type alias so swag can resolve the model in annotations.
type FormattedQuestion = models.FormattedQuestion

func NotFound(c *gin.Context) {
	apierror.Abort(c, http.StatusNotFound, MessageNotFound)
}

func Unprocessable(c *gin.Context) {
	apierror.Abort(c, http.StatusUnprocessableEntity, MessageUnprocessable)
}

func Unauthorized(c *gin.Context) {
	apierror.Abort(c, http.StatusUnauthorized, MessageUnauthorized)
}

func MethodNotAllowed(c *gin.Context) {
	apierror.Abort(c, http.StatusMethodNotAllowed, MessageMethodNotAllowed)
}

// respondError maps a service error onto a status: ErrNotFound answers 404,
// ErrUnauthorized 401, everything else 422.
func respondError(c *gin.Context, op string, err error) {
	kind := errorKind(err)
	_ = c.Error(err)
	slog.WarnContext(c.Request.Context(), "request failed",
		"op", op,
		"kind", kind,
		"error", err,
		"request_id", c.GetString(middleware.RequestIDKey),
	)

	switch {
	case errors.Is(err, services.ErrNotFound):
		NotFound(c)
	case errors.Is(err, services.ErrUnauthorized):
		Unauthorized(c)
	default:
		Unprocessable(c)
	}
}

// notFoundOnError folds any failure into the not-found member.
func notFoundOnError(err error) error {
	if errors.Is(err, services.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", services.ErrNotFound, err)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return "not_found"
	case errors.Is(err, services.ErrValidation):
		return "validation"
	case errors.Is(err, services.ErrPersistence):
		return "persistence"
	case errors.Is(err, services.ErrUnauthorized):
		return "unauthorized"
	default:
		return "unknown"
	}
}

func page(c *gin.Context) int {
	return services.ParsePage(c.Query("page"))
}
