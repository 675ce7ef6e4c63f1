package commands

import "errors"

// Coordination errors surfaced by the order coordinator. Each one maps to a
// distinct condition in the admission protocol or the order lifecycle; the
// HTTP facade translates them to status codes and returns their messages
// verbatim.
var (
	// ErrRobotNotFound is returned when an order names a robot that does not exist.
	ErrRobotNotFound = errors.New("Robot not found")

	// ErrItemNotFound is returned when an order names an inventory item that does not exist.
	ErrItemNotFound = errors.New("Inventory item not found")

	// ErrInvalidQuantity is returned when an order is admitted with quantity <= 0.
	ErrInvalidQuantity = errors.New("Quantity must be greater than 0")

	// ErrRobotBusy is returned when the target robot already holds an active
	// order. The message wording is part of the public API contract.
	ErrRobotBusy = errors.New("This robot already has an active order. Please wait for it to finish.")

	// ErrOrderIsActive is returned when deleting an order that still holds a
	// robot assignment. Callers must cancel the order first.
	ErrOrderIsActive = errors.New("Order is still active; cancel it before deleting")

	// ErrRobotHasActiveOrder is returned when deleting a robot that still
	// points at an active order.
	ErrRobotHasActiveOrder = errors.New("Robot has an active order and cannot be deleted")

	// ErrCoordinatorInternal is returned when a multi-entity mutation could
	// not be committed or rolled back cleanly. Details are logged; the
	// message stays generic.
	ErrCoordinatorInternal = errors.New("order coordination failed")
)
