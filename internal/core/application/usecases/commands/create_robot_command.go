package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/robot"
	"warehouse/internal/pkg/guard"
)

var ErrCreateRobotCommandIsNotConstructed = errors.New(
	"CreateRobotCommand must be created via NewCreateRobotCommand constructor",
)

// CreateRobotCommand represents a request to register a new picking robot.
// Registering an IN_PROGRESS robot requires a current order reference, and an
// IDLE or COMPLETED robot must not carry one; the aggregate constructor
// enforces both rules in the handler.
type CreateRobotCommand struct { //nolint:recvcheck //using for validation
	status          robot.Status
	currentOrderID  *kernel.UUID
	completedOrders int
	errorsInfo      string

	guard guard.ConstructorGuard
}

// NewCreateRobotCommand creates a command to register a robot.
func NewCreateRobotCommand(status robot.Status, currentOrderID *kernel.UUID, completedOrders int, errorsInfo string) (CreateRobotCommand, error) {
	cmd := CreateRobotCommand{
		currentOrderID:  currentOrderID,
		completedOrders: completedOrders,
		errorsInfo:      errorsInfo,
		guard:           guard.NewConstructorGuard(),
	}

	if err := cmd.setStatus(status); err != nil {
		return CreateRobotCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRobotCommand) Validate() error {
	return c.guard.Validate(ErrCreateRobotCommandIsNotConstructed)
}

// Status returns the robot's initial operational status.
func (c CreateRobotCommand) Status() robot.Status {
	return c.status
}

// CurrentOrderID returns the order the robot is already working on, or nil.
func (c CreateRobotCommand) CurrentOrderID() *kernel.UUID {
	return c.currentOrderID
}

// CompletedOrders returns the initial completed-orders counter, normally 0.
func (c CreateRobotCommand) CompletedOrders() int {
	return c.completedOrders
}

// ErrorsInfo returns the robot's initial diagnostic string.
func (c CreateRobotCommand) ErrorsInfo() string {
	return c.errorsInfo
}

func (c *CreateRobotCommand) setStatus(status robot.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
