package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/hisab_manager/internal/core/domain"
	portssvc "github.com/SscSPs/hisab_manager/internal/core/ports/services"
	"github.com/SscSPs/hisab_manager/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	notifier portssvc.ChangeNotifier
	clock    func() time.Time
}

// ServiceOption is a functional option shared by every service constructor.
type ServiceOption func(*BaseService)

// WithChangeNotifier makes the service publish an event after every successful write.
func WithChangeNotifier(notifier portssvc.ChangeNotifier) ServiceOption {
	return func(s *BaseService) {
		s.notifier = notifier
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = clock
	}
}

func newBaseService(options []ServiceOption) BaseService {
	base := BaseService{clock: time.Now}
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current time of the configured clock.
func (s *BaseService) Now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
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
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// publish reports a record change to the notifier, if one is configured.
func (s *BaseService) publish(ownerID string, collection domain.Collection, recordID string, kind domain.ChangeKind) {
	if s.notifier == nil {
		return
	}
	s.notifier.Publish(domain.ChangeEvent{
		OwnerID:    ownerID,
		Collection: collection,
		RecordID:   recordID,
		Kind:       kind,
		At:         s.Now(),
	})
}
