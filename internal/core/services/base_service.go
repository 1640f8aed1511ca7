package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/budget_master_backend/internal/apperrors"
	portsrepo "github.com/SscSPs/budget_master_backend/internal/core/ports/repositories"
	"github.com/SscSPs/budget_master_backend/internal/platform/logging"
)

// BaseService provides common functionality for all services
type BaseService struct {
	user string
	now  func() time.Time
	tx   portsrepo.TransactionManager
}

// Option configures the BaseService of any service.
type Option func(*BaseService)

// WithClock replaces time.Now as the source of audit timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *BaseService) {
		s.now = now
	}
}

func newBaseService(user string, tx portsrepo.TransactionManager, opts ...Option) (BaseService, error) {
	if strings.TrimSpace(user) == "" {
		return BaseService{}, apperrors.NewInvalidInput("user", "user must not be empty")
	}
	if tx == nil {
		return BaseService{}, apperrors.NewInvalidInput("tx", "transaction manager is required")
	}
	s := BaseService{user: user, now: time.Now, tx: tx}
	for _, opt := range opts {
		opt(&s)
	}
	return s, nil
}

// User returns the user stamped on every write.
func (s *BaseService) User() string {
	return s.user
}

// SetUser always fails: the user is fixed at construction.
func (s *BaseService) SetUser(string) error {
	return apperrors.NewInvalidInput("user", "user is immutable")
}

func (s *BaseService) clock() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func (s *BaseService) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.tx.RunInTx(ctx, fn)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := logging.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// logFailure logs err unless it is an expected outcome the caller handles.
func (s *BaseService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidInput, apperrors.KindNotFound, apperrors.KindConflict, apperrors.KindIllegalPosition:
		s.LogDebug(ctx, msg, append([]any{slog.String("error", err.Error())}, keyvals...)...)
	default:
		s.LogError(ctx, err, msg, keyvals...)
	}
}

// isNotFound reports whether err is a not-found outcome rather than a failure.
func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
