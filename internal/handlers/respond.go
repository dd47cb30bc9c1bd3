package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bizbooks/bookkeeping_app/internal/apperrors"
	"github.com/bizbooks/bookkeeping_app/internal/dto"
	"github.com/bizbooks/bookkeeping_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps a service/repository error onto an HTTP status and the
// uniform envelope. Unrecognized errors become opaque 500s so internals never
// leak to the client.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var appErr *apperrors.AppError
	message := "Internal server error"
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status, message = http.StatusNotFound, "Resource not found"
	case errors.Is(err, apperrors.ErrDuplicate):
		status, message = http.StatusConflict, "Resource already exists"
	case errors.Is(err, apperrors.ErrValidation):
		status, message = http.StatusBadRequest, "Validation failed"
	case errors.Is(err, apperrors.ErrForbidden):
		status, message = http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, apperrors.ErrBusinessRule):
		status, message = http.StatusBadRequest, "Request violates a bookkeeping rule"
	}

	// Prefer the AppError message for client-facing statuses
	if errors.As(err, &appErr) && status != http.StatusInternalServerError {
		message = appErr.Message
	}

	if status == http.StatusInternalServerError {
		logger.Error("Unhandled error", slog.String("error", err.Error()))
	}

	c.JSON(status, dto.Fail(message))
}

// respondBindingError converts a gin binding failure into a 400 with
// per-field errors.
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.FailFields("Validation failed", dto.FieldErrorsFromBinding(err)))
}

// mustUserID pulls the authenticated user ID out of the context. The auth
// middleware guarantees it on protected routes; a miss means the route was
// registered without it.
func mustUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
		return "", false
	}
	return userID, true
}
