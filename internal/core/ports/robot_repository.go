package ports

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/robot"
)

// RobotRepository defines the persistence contract for robot aggregates.
//
// Besides aggregate-level writes, the interface exposes two conditional
// single-field updates used by the order coordinator. These execute as
// store-level atomic guards, so two concurrent admissions can never leave a
// robot pointing at two orders regardless of interleaving.
type RobotRepository interface {
	// Add persists a new robot aggregate to storage.
	Add(ctx context.Context, aggregate *robot.Robot) error

	// Update persists changes to an existing robot aggregate.
	Update(ctx context.Context, aggregate *robot.Robot) error

	// Get retrieves a robot aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*robot.Robot, error)

	// Delete removes a robot record.
	Delete(ctx context.Context, id kernel.UUID) error

	// AssignOrder sets the robot's current order pointer to orderID, but only
	// if the pointer is currently null. A condition miss means the robot
	// picked up another order concurrently and is surfaced as
	// robot.ErrRobotAlreadyAssigned; a missing robot is surfaced as an
	// errs.ObjectNotFoundError.
	AssignOrder(ctx context.Context, robotID kernel.UUID, orderID kernel.UUID, now time.Time) error

	// ReleaseOrder clears the robot's current order pointer, but only if it
	// currently refers to orderID. A condition miss (pointer already cleared
	// or moved on) is a no-op, not an error.
	ReleaseOrder(ctx context.Context, robotID kernel.UUID, orderID kernel.UUID, now time.Time) error

	// IncrementCompletedOrders bumps the robot's completed-orders counter.
	IncrementCompletedOrders(ctx context.Context, robotID kernel.UUID, now time.Time) error
}
