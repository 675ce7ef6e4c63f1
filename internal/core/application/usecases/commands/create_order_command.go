package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to admit a new fulfillment order.
// It names the robot to assign, the inventory item to debit, the quantity to
// pick, and the delivery aisle/bay.
//
// The quantity is intentionally not validated here: the admission protocol
// checks it after the robot lookup and busy check, so a request naming an
// unknown robot surfaces RobotNotFound rather than InvalidQuantity.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(robotID, itemID, 3, "A2")
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	robotID  kernel.UUID
	itemID   kernel.UUID
	quantity int
	location string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to admit a new order.
// Validates that the robot and item identifiers are well-formed; the
// remaining admission preconditions are enforced by the handler.
func NewCreateOrderCommand(robotID kernel.UUID, itemID kernel.UUID, quantity int, location string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		quantity: quantity,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRobotID(robotID),
		cmd.setItemID(itemID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// RobotID returns the identifier of the robot to assign.
func (c CreateOrderCommand) RobotID() kernel.UUID {
	return c.robotID
}

// ItemID returns the identifier of the inventory item to debit.
func (c CreateOrderCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the requested number of units.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// Location returns the delivery aisle/bay.
func (c CreateOrderCommand) Location() string {
	return c.location
}

func (c *CreateOrderCommand) setRobotID(robotID kernel.UUID) error {
	if err := robotID.Validate(); err != nil {
		return err
	}
	c.robotID = robotID
	return nil
}

func (c *CreateOrderCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}
