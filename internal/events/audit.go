package events

import (
	"context"
	"log/slog"

	"github.com/phrazzld/task-api/internal/platform/logger"
)

// AuditLogHandler writes every task event to the log at info level, using the
// request-scoped logger when one is present in ctx.
type AuditLogHandler struct {
	logger *slog.Logger
}

// NewAuditLogHandler creates an AuditLogHandler. A nil logger uses slog.Default.
func NewAuditLogHandler(l *slog.Logger) *AuditLogHandler {
	if l == nil {
		l = slog.Default()
	}
	return &AuditLogHandler{logger: l}
}

// HandleEvent implements EventHandler.
func (h *AuditLogHandler) HandleEvent(ctx context.Context, event *TaskEvent) error {
	logger.FromContextOrDefault(ctx, h.logger).Info("task event",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Type)),
		slog.Int64("task_id", event.TaskID),
		slog.Time("occurred_at", event.OccurredAt))
	return nil
}
