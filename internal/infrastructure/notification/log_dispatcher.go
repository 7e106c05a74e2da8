package notification

import (
	"context"

	appOrder "github.com/farmbasket/backend/internal/application/order"
	"go.uber.org/zap"
)

// LogDispatcher writes notifications to the application log instead of a
// delivery channel. Used in development and as the fallback when the Redis
// queue is disabled.
type LogDispatcher struct {
	logger *zap.Logger
}

// NewLogDispatcher creates a new LogDispatcher
func NewLogDispatcher(logger *zap.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger.Named("notification")}
}

// Dispatch logs the notification
func (d *LogDispatcher) Dispatch(ctx context.Context, n appOrder.Notification) error {
	d.logger.Info("notification dispatched",
		zap.String("audience", n.Audience),
		zap.String("recipient", n.Recipient),
		zap.String("subject", n.Subject),
		zap.String("order_number", n.OrderNumber),
	)
	return nil
}

// Ensure LogDispatcher implements Dispatcher
var _ appOrder.Dispatcher = (*LogDispatcher)(nil)
