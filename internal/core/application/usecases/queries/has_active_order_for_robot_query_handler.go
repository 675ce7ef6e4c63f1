package queries

import (
	"context"

	"warehouse/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// HasActiveOrderForRobotQueryHandler probes the orders table for non-terminal
// work assigned to a robot.
type HasActiveOrderForRobotQueryHandler struct {
	db *gorm.DB
}

// NewHasActiveOrderForRobotQueryHandler creates a handler for availability
// probes.
func NewHasActiveOrderForRobotQueryHandler(db *gorm.DB) HasActiveOrderForRobotQueryHandler {
	return HasActiveOrderForRobotQueryHandler{db: db}
}

// Handle reports whether the robot has an order in PENDING or IN_PROGRESS.
// A robot that does not exist simply has no active orders.
func (h HasActiveOrderForRobotQueryHandler) Handle(
	ctx context.Context,
	query HasActiveOrderForRobotQuery,
) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	var active bool

	row := h.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM orders
			WHERE robot_id = ? AND status IN (?, ?)
		)
	`, query.RobotID().String(), order.Pending.String(), order.InProgress.String()).Row()

	if err := row.Scan(&active); err != nil {
		return false, err
	}

	return active, nil
}
