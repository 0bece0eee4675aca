package services

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
	"github.com/SscSPs/rental_management_app/internal/middleware"
)

var tracer = otel.Tracer("github.com/SscSPs/rental_management_app/internal/core/services")

// BaseService provides common functionality for all services
type BaseService struct {
	// Clock returns the current time. Pages use its date as "today".
	Clock func() time.Time
}

// Option configures the BaseService embedded in every service.
type Option func(*BaseService)

// WithClock replaces the wall clock.
func WithClock(clock func() time.Time) Option {
	return func(s *BaseService) {
		if clock != nil {
			s.Clock = clock
		}
	}
}

// WithReferenceDate pins "today" to date. A zero date keeps the wall clock.
func WithReferenceDate(date time.Time) Option {
	return func(s *BaseService) {
		if !date.IsZero() {
			s.Clock = func() time.Time { return date }
		}
	}
}

func newBaseService(opts []Option) BaseService {
	base := BaseService{Clock: time.Now}
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

// Today is the reference date of every derived figure.
func (s *BaseService) Today() time.Time {
	if s.Clock == nil {
		return domain.DateOf(time.Now())
	}
	return domain.DateOf(s.Clock())
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
