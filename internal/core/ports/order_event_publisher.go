package ports

import (
	"context"
	"time"
)

// OrderEvent describes a committed order lifecycle change for downstream
// consumers (picking dashboards, replenishment planners).
type OrderEvent struct {
	OrderID    string    `json:"orderId"`
	RobotID    string    `json:"robotId"`
	ItemID     string    `json:"itemId"`
	Quantity   int       `json:"quantity"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// OrderEventPublisher publishes order lifecycle events after the owning
// transaction has committed. Publishing is best effort: callers log failures
// and never fail the originating request because of them.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
