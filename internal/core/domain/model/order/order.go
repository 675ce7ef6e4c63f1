package order

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a fulfillment order in the warehouse. It is the aggregate
// root that manages the order lifecycle from admission through completion or
// cancellation.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier
//   - Must reference the robot it is assigned to and the inventory item it debits
//   - Quantity must be strictly positive
//   - Status transitions follow the lifecycle state machine (see Status)
//   - Can only be created through the factory functions
//
// The robot and item references are held as identifiers, not pointers to the
// aggregates themselves; the application layer resolves them through
// repositories. The robot's currentOrderId pointer is the authoritative side
// of the robot/order link; Order.robotID is informational and kept consistent
// by the coordinator.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// robotID identifies the robot this order is assigned to
	robotID kernel.UUID

	// itemID identifies the inventory item this order debits
	itemID kernel.UUID

	// quantity is the number of units to pick (must be positive)
	quantity int

	// location is the free-form delivery aisle/bay
	location string

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is set once, at admission
	createdAt time.Time

	// lastUpdatedAt tracks the most recent mutation
	lastUpdatedAt time.Time

	// guard ensures the order was created via a factory function
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status with validation.
// This is the only way to create a fresh order; the coordinator calls it
// during admission after the cross-entity preconditions have been checked.
//
// Parameters:
//   - id: unique identifier for the order
//   - robotID: identifier of the robot the order is assigned to
//   - itemID: identifier of the inventory item being picked
//   - quantity: number of units to pick (must be greater than 0)
//   - location: free-form delivery aisle/bay
//   - now: admission timestamp, recorded as createdAt and lastUpdatedAt
//
// Returns a validation error if any identifier is invalid or quantity is
// not positive.
func NewOrder(
	id kernel.UUID,
	robotID kernel.UUID,
	itemID kernel.UUID,
	quantity int,
	location string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		location:      location,
		createdAt:     now,
		lastUpdatedAt: now,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setRobotID(robotID),
		o.setItemID(itemID),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder which always starts in Pending status, this constructor
// restores the order to its previously persisted state, including timestamps.
// The restored order behaves identically to one created through admission.
func RestoreOrder(
	id kernel.UUID,
	robotID kernel.UUID,
	itemID kernel.UUID,
	quantity int,
	location string,
	status Status,
	createdAt time.Time,
	lastUpdatedAt time.Time,
) (*Order, error) {
	o := &Order{
		location:      location,
		createdAt:     createdAt,
		lastUpdatedAt: lastUpdatedAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setRobotID(robotID),
		o.setItemID(itemID),
		o.setQuantity(quantity),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Returns ErrOrderIsNotConstructed otherwise.
// Repositories call this before persisting and after restoring aggregates.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RobotID returns the identifier of the robot assigned to this order.
func (o *Order) RobotID() kernel.UUID {
	return o.robotID
}

// ItemID returns the identifier of the inventory item this order debits.
func (o *Order) ItemID() kernel.UUID {
	return o.itemID
}

// Quantity returns the number of units to pick.
func (o *Order) Quantity() int {
	return o.quantity
}

// Location returns the delivery aisle/bay for the order.
func (o *Order) Location() string {
	return o.location
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the admission timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// LastUpdatedAt returns the timestamp of the most recent mutation.
func (o *Order) LastUpdatedAt() time.Time {
	return o.lastUpdatedAt
}

// IsTerminal reports whether the order is in a terminal status.
func (o *Order) IsTerminal() bool {
	return o.status.IsTerminal()
}

// IsActive reports whether the order still holds its robot assignment and
// inventory debit (status Pending or InProgress).
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// ChangeStatus transitions the order to newStatus, enforcing the lifecycle
// state machine, and refreshes lastUpdatedAt.
//
// Returns an InvalidStatusTransitionError if the transition is not permitted
// from the current status. Transitions out of terminal states are always
// rejected, deterministically.
func (o *Order) ChangeStatus(newStatus Status, now time.Time) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	o.lastUpdatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRobotID(robotID kernel.UUID) error {
	if err := robotID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("robotId", err)
	}
	o.robotID = robotID
	return nil
}

func (o *Order) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("itemId", err)
	}
	o.itemID = itemID
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
