package api

import (
	"context"
	"log/slog"
	"time"
)

// FetchEvent records metadata about a single API or holiday request.
type FetchEvent struct {
	RequestID string
	Endpoint  string
	Duration  time.Duration
	Items     int
	Err       error
}

// Observer receives fetch events for logging.
type Observer interface {
	OnFetch(ctx context.Context, event FetchEvent)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnFetch(context.Context, FetchEvent) {}

// LogObserver writes fetch events to a slog.Logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver returns an Observer backed by logger, or a NoopObserver if
// logger is nil.
func NewLogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		return NoopObserver{}
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnFetch(ctx context.Context, event FetchEvent) {
	attrs := []any{
		"request_id", event.RequestID,
		"endpoint", event.Endpoint,
		"duration_ms", event.Duration.Milliseconds(),
		"items", event.Items,
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "fetch", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "fetch", attrs...)
}
