// Package toast sends short-lived notifications to connected clients.
package toast

import (
	"context"
	"log/slog"
	"time"

	"github.com/chris/multicurrency-wallet/pkg/websockets"
	"github.com/google/uuid"
)

// DefaultDuration is how long a toast stays on screen.
const DefaultDuration = 4000 * time.Millisecond

// Level defines the kind of notification.
type Level string

const (
	Success Level = "success"
	Error   Level = "error"
	Warning Level = "warning"
	Info    Level = "info"
	Loading Level = "loading"
)

var icons = map[Level]string{
	Success: "✅",
	Error:   "❌",
	Warning: "⚠️",
	Info:    "ℹ️",
	Loading: "⏳",
}

// Toast is one notification.
type Toast struct {
	ID         string `json:"id"`
	Level      Level  `json:"level"`
	Message    string `json:"message"`
	Icon       string `json:"icon"`
	DurationMs int64  `json:"durationMs"`
}

// Notifier publishes toasts as websocket messages.
type Notifier struct {
	publisher websockets.Publisher
	logger    *slog.Logger
	duration  time.Duration
}

// NewNotifier creates a Notifier publishing through p.
func NewNotifier(p websockets.Publisher, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{publisher: p, logger: logger, duration: DefaultDuration}
}

// Show publishes a toast and returns it. Publish failures are logged.
func (n *Notifier) Show(ctx context.Context, level Level, message string) Toast {
	t := Toast{
		ID:         uuid.New().String(),
		Level:      level,
		Message:    message,
		Icon:       icons[level],
		DurationMs: n.duration.Milliseconds(),
	}

	n.logger.Info("toast", "level", level, "message", message)
	if err := n.publisher.Publish(ctx, websockets.Message{Type: websockets.MessageTypeToast, Payload: t}); err != nil {
		n.logger.Error("failed to publish toast", "error", err)
	}
	return t
}

func (n *Notifier) Success(ctx context.Context, message string) Toast {
	return n.Show(ctx, Success, message)
}

func (n *Notifier) Error(ctx context.Context, message string) Toast {
	return n.Show(ctx, Error, message)
}

func (n *Notifier) Warning(ctx context.Context, message string) Toast {
	return n.Show(ctx, Warning, message)
}

func (n *Notifier) Info(ctx context.Context, message string) Toast {
	return n.Show(ctx, Info, message)
}
