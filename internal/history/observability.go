package history

import (
	"context"
	"log/slog"
	"time"
)

// OperationEvent captures telemetry for one controller operation.
type OperationEvent struct {
	Name     string
	Duration time.Duration
	Err      error
	Fields   map[string]any
}

// OperationObserver receives controller operation events.
type OperationObserver interface {
	ObserveOperation(ctx context.Context, event OperationEvent)
}

// NoopOperationObserver ignores all events.
type NoopOperationObserver struct{}

func (NoopOperationObserver) ObserveOperation(context.Context, OperationEvent) {}

type logOperationObserver struct {
	logger *slog.Logger
}

// NewLogOperationObserver logs operations at debug level and failures at error.
func NewLogOperationObserver(logger *slog.Logger) OperationObserver {
	if logger == nil {
		return NoopOperationObserver{}
	}
	return &logOperationObserver{logger: logger}
}

func (o *logOperationObserver) ObserveOperation(ctx context.Context, event OperationEvent) {
	attrs := make([]any, 0, 4+len(event.Fields)*2)
	attrs = append(attrs, "op", event.Name, "duration_ms", event.Duration.Milliseconds())
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "history_op", attrs...)
		return
	}
	o.logger.DebugContext(ctx, "history_op", attrs...)
}
