package notifier

import (
	"context"

	"github.com/leyangloh/progress-bot/internal/domain"
)

// Notifier defines the interface for delivering a rendered report.
// Delivery is at-most-once: implementations never retry.
type Notifier interface {
	Send(ctx context.Context, report *domain.Report) error
}
