package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/robot"
	"warehouse/internal/pkg/guard"
)

var ErrUpdateRobotCompletedOrdersCommandIsNotConstructed = errors.New(
	"UpdateRobotCompletedOrdersCommand must be created via NewUpdateRobotCompletedOrdersCommand constructor",
)

// UpdateRobotCompletedOrdersCommand represents a request to overwrite a
// robot's completed-orders counter, used for manual corrections.
type UpdateRobotCompletedOrdersCommand struct { //nolint:recvcheck //using for validation
	robotID         kernel.UUID
	completedOrders int

	guard guard.ConstructorGuard
}

// NewUpdateRobotCompletedOrdersCommand creates a command to set the counter.
func NewUpdateRobotCompletedOrdersCommand(robotID kernel.UUID, completedOrders int) (UpdateRobotCompletedOrdersCommand, error) {
	cmd := UpdateRobotCompletedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRobotID(robotID),
		cmd.setCompletedOrders(completedOrders),
	); err != nil {
		return UpdateRobotCompletedOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRobotCompletedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRobotCompletedOrdersCommandIsNotConstructed)
}

// RobotID returns the identifier of the robot to update.
func (c UpdateRobotCompletedOrdersCommand) RobotID() kernel.UUID {
	return c.robotID
}

// CompletedOrders returns the new counter value.
func (c UpdateRobotCompletedOrdersCommand) CompletedOrders() int {
	return c.completedOrders
}

func (c *UpdateRobotCompletedOrdersCommand) setRobotID(robotID kernel.UUID) error {
	if err := robotID.Validate(); err != nil {
		return err
	}
	c.robotID = robotID
	return nil
}

func (c *UpdateRobotCompletedOrdersCommand) setCompletedOrders(n int) error {
	if n < 0 {
		return robot.ErrCompletedOrdersIsNegative
	}
	c.completedOrders = n
	return nil
}
