package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/bizbooks/bookkeeping_app/internal/apperrors"
	"github.com/bizbooks/bookkeeping_app/internal/middleware"
)

// dateLayout is the wire format for all request dates.
const dateLayout = "2006-01-02"

// BaseService provides common functionality for all services.
type BaseService struct{}

// GetLogger gets the request-scoped logger from context or the default one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting.
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting.
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// parseDate parses a required YYYY-MM-DD request date. Binding validates the
// format upstream, so a failure here still maps to a validation error.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewAppError(400, "invalid date '"+value+"'", apperrors.ErrValidation)
	}
	return t, nil
}

// parseDatePtr parses an optional YYYY-MM-DD request date. An empty or nil
// value yields nil.
func parseDatePtr(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
