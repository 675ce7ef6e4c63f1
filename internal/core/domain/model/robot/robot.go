package robot

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// Domain errors for robot operations.
var (
	// ErrRobotIsNotConstructed is returned when using an improperly initialized Robot.
	ErrRobotIsNotConstructed = errors.New("Robot must be created via NewRobot or RestoreRobot constructor")

	// ErrInProgressRequiresOrder is returned when IN_PROGRESS is applied to a
	// robot that holds no current order.
	ErrInProgressRequiresOrder = errs.NewValueIsInvalidErrorWithCause("status",
		errors.New("robot with status IN_PROGRESS must have a current order ID"))

	// ErrIdleOrCompletedWithOrder is returned when a robot is created as IDLE
	// or COMPLETED while still pointing at an order.
	ErrIdleOrCompletedWithOrder = errs.NewValueIsInvalidErrorWithCause("status",
		errors.New("robot with status IDLE or COMPLETED should not have a current order ID"))

	// ErrCompletedOrdersIsNegative is returned when the completed-orders
	// counter would go below zero.
	ErrCompletedOrdersIsNegative = errs.NewValueIsInvalidErrorWithCause("completedOrders",
		errors.New("completed orders cannot be negative"))

	// ErrRobotAlreadyAssigned is returned when an order is assigned to a robot
	// whose current order pointer is already set.
	ErrRobotAlreadyAssigned = errors.New("robot already has a current order")
)

// Robot represents a warehouse picking robot. It is an aggregate root that
// manages the robot's reported status, its link to the active order, and the
// completed-orders counter.
//
// Robot maintains these invariants:
//   - Must have a valid unique identifier
//   - Status must be one of the six valid robot statuses
//   - currentOrderID is set iff the status permits it (see Status)
//   - completedOrders is never negative
//
// The currentOrderID pointer is the authoritative side of the robot/order
// link. The order coordinator sets it during admission and clears it on
// terminal order transitions; the robot manager mutates it only as part of
// status changes.
type Robot struct {
	// id uniquely identifies the robot
	id kernel.UUID

	// status is the operational state reported for the robot
	status Status

	// currentOrderID points at the active order, nil when the robot is free
	currentOrderID *kernel.UUID

	// completedOrders counts orders this robot has fulfilled
	completedOrders int

	// errors carries free-form diagnostics reported by the robot
	errors string

	// lastUpdatedAt tracks the most recent mutation
	lastUpdatedAt time.Time

	// guard ensures the robot was created via a factory function
	guard guard.ConstructorGuard
}

// NewRobot creates a new Robot with validation. This is the only way to
// create a fresh robot; the robot manager calls it on registration.
//
// The status/assignment combination is validated on construction:
// IN_PROGRESS requires currentOrderID, IDLE and COMPLETED forbid it.
func NewRobot(
	id kernel.UUID,
	status Status,
	currentOrderID *kernel.UUID,
	completedOrders int,
	errorsInfo string,
	now time.Time,
) (*Robot, error) {
	r := &Robot{
		errors:        errorsInfo,
		lastUpdatedAt: now,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setStatus(status),
		r.setCurrentOrderID(currentOrderID),
		r.setCompletedOrders(completedOrders),
	); err != nil {
		return nil, err
	}

	if err := r.validateAssignment(); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRobot reconstructs a Robot aggregate from persistent storage.
//
// Unlike NewRobot, a stored IDLE or COMPLETED robot holding an order pointer
// is accepted: the coordinator assigns orders without touching the status
// column, so an idle robot legitimately carries a pointer until its next
// status report clears or confirms it. IN_PROGRESS without a pointer has no
// such path and still fails restoration.
func RestoreRobot(
	id kernel.UUID,
	status Status,
	currentOrderID *kernel.UUID,
	completedOrders int,
	errorsInfo string,
	lastUpdatedAt time.Time,
) (*Robot, error) {
	r := &Robot{
		errors:        errorsInfo,
		lastUpdatedAt: lastUpdatedAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setStatus(status),
		r.setCurrentOrderID(currentOrderID),
		r.setCompletedOrders(completedOrders),
	); err != nil {
		return nil, err
	}

	if r.status.RequiresOrder() && r.currentOrderID == nil {
		return nil, ErrInProgressRequiresOrder
	}

	return r, nil
}

// Validate ensures the Robot instance was properly constructed through a
// factory function. Returns ErrRobotIsNotConstructed otherwise.
func (r *Robot) Validate() error {
	if r == nil {
		return ErrRobotIsNotConstructed
	}
	return r.guard.Validate(ErrRobotIsNotConstructed)
}

// IsEqual compares two robots by their unique identifiers.
func (r *Robot) IsEqual(other *Robot) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the robot's unique identifier.
func (r *Robot) ID() kernel.UUID {
	return r.id
}

// Status returns the robot's current operational status.
func (r *Robot) Status() Status {
	return r.status
}

// CurrentOrderID returns the identifier of the robot's active order,
// or nil when the robot is free.
func (r *Robot) CurrentOrderID() *kernel.UUID {
	return r.currentOrderID
}

// CompletedOrders returns the number of orders this robot has fulfilled.
func (r *Robot) CompletedOrders() int {
	return r.completedOrders
}

// Errors returns the robot's free-form diagnostic string.
func (r *Robot) Errors() string {
	return r.errors
}

// LastUpdatedAt returns the timestamp of the most recent mutation.
func (r *Robot) LastUpdatedAt() time.Time {
	return r.lastUpdatedAt
}

// IsBusy reports whether the robot currently holds an active order.
func (r *Robot) IsBusy() bool {
	return r.currentOrderID != nil
}

// ChangeStatus applies a status reported for the robot.
//
// Assignment invariants are enforced as part of the transition:
//   - IN_PROGRESS is rejected with ErrInProgressRequiresOrder when the robot
//     holds no current order
//   - IDLE and COMPLETED clear the current order pointer
func (r *Robot) ChangeStatus(newStatus Status, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if newStatus.RequiresOrder() && r.currentOrderID == nil {
		return ErrInProgressRequiresOrder
	}

	if newStatus.ForbidsOrder() {
		r.currentOrderID = nil
	}

	r.status = newStatus
	r.lastUpdatedAt = now
	return nil
}

// AssignOrder points the robot at an order during admission.
// Returns ErrRobotAlreadyAssigned if the pointer is already set; the
// coordinator treats that as a busy robot.
func (r *Robot) AssignOrder(orderID kernel.UUID, now time.Time) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if r.currentOrderID != nil {
		return ErrRobotAlreadyAssigned
	}

	r.currentOrderID = &orderID
	r.lastUpdatedAt = now
	return nil
}

// ReleaseOrder clears the current order pointer if it refers to orderID.
// Called by the coordinator when the order reaches a terminal status.
// Releasing an order the robot no longer points at is a no-op.
func (r *Robot) ReleaseOrder(orderID kernel.UUID, now time.Time) {
	if r.currentOrderID == nil || !r.currentOrderID.IsEqual(orderID) {
		return
	}

	r.currentOrderID = nil
	r.lastUpdatedAt = now
}

// IncrementCompletedOrders bumps the completed-orders counter.
// Called by the coordinator when an order transitions to COMPLETED.
func (r *Robot) IncrementCompletedOrders(now time.Time) {
	r.completedOrders++
	r.lastUpdatedAt = now
}

// SetCompletedOrders replaces the completed-orders counter.
// Rejects negative values with ErrCompletedOrdersIsNegative.
func (r *Robot) SetCompletedOrders(n int, now time.Time) error {
	if n < 0 {
		return ErrCompletedOrdersIsNegative
	}

	r.completedOrders = n
	r.lastUpdatedAt = now
	return nil
}

// SetErrors replaces the robot's diagnostic string.
func (r *Robot) SetErrors(errorsInfo string, now time.Time) {
	r.errors = errorsInfo
	r.lastUpdatedAt = now
}

func (r *Robot) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Robot) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}

func (r *Robot) setCurrentOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return fmt.Errorf("current order ID: %w", err)
	}
	r.currentOrderID = orderID
	return nil
}

func (r *Robot) setCompletedOrders(n int) error {
	if n < 0 {
		return ErrCompletedOrdersIsNegative
	}
	r.completedOrders = n
	return nil
}

// validateAssignment checks the status/currentOrderID invariant after all
// fields are set.
func (r *Robot) validateAssignment() error {
	if r.status.RequiresOrder() && r.currentOrderID == nil {
		return ErrInProgressRequiresOrder
	}
	if r.status.ForbidsOrder() && r.currentOrderID != nil {
		return ErrIdleOrCompletedWithOrder
	}
	return nil
}
