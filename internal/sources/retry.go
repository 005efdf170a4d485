package sources

import (
	"context"
	"log/slog"
	"time"

	"live-match-service/internal/domain"
	"live-match-service/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingSchedule wraps a ScheduleProvider with retry/backoff behavior. The
// schedule feed is the primary source; a transient failure there costs a whole
// date bucket, so it gets a couple of attempts before the cache layer falls
// back to stale data.
type retryingSchedule struct {
	inner       ScheduleProvider
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingSchedule wraps the given provider with retries. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingSchedule(inner ScheduleProvider, logger *slog.Logger, maxAttempts int, backoff time.Duration) ScheduleProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingSchedule{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingSchedule) FetchSchedule(ctx context.Context, dateKey string) ([]domain.ScheduleEntry, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		entries, err := r.inner.FetchSchedule(ctx, dateKey)
		if err == nil {
			return entries, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "schedule fetch retry",
			slog.String(logging.FieldDateKey, dateKey),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", r.maxAttempts),
			"error", err,
		)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "schedule fetch failed",
		slog.String(logging.FieldDateKey, dateKey),
		slog.Int("attempts", r.maxAttempts),
		"error", lastErr,
	)
	return nil, lastErr
}

func (r *retryingSchedule) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
