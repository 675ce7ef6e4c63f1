package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrDeleteRobotCommandIsNotConstructed = errors.New(
	"DeleteRobotCommand must be created via NewDeleteRobotCommand constructor",
)

// DeleteRobotCommand represents a request to decommission a robot.
// A robot holding an active order cannot be removed; the order must reach a
// terminal status first, otherwise its robot reference would dangle.
type DeleteRobotCommand struct { //nolint:recvcheck //using for validation
	robotID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRobotCommand creates a command to decommission a robot.
func NewDeleteRobotCommand(robotID kernel.UUID) (DeleteRobotCommand, error) {
	cmd := DeleteRobotCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRobotID(robotID); err != nil {
		return DeleteRobotCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRobotCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRobotCommandIsNotConstructed)
}

// RobotID returns the identifier of the robot to decommission.
func (c DeleteRobotCommand) RobotID() kernel.UUID {
	return c.robotID
}

func (c *DeleteRobotCommand) setRobotID(robotID kernel.UUID) error {
	if err := robotID.Validate(); err != nil {
		return err
	}
	c.robotID = robotID
	return nil
}
