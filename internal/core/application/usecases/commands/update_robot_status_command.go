package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/robot"
	"warehouse/internal/pkg/guard"
)

var ErrUpdateRobotStatusCommandIsNotConstructed = errors.New(
	"UpdateRobotStatusCommand must be created via NewUpdateRobotStatusCommand constructor",
)

// UpdateRobotStatusCommand represents a status report for a robot.
// The status/assignment invariant (IN_PROGRESS requires a current order,
// IDLE and COMPLETED clear it) is enforced by the aggregate in the handler.
type UpdateRobotStatusCommand struct { //nolint:recvcheck //using for validation
	robotID kernel.UUID
	status  robot.Status

	guard guard.ConstructorGuard
}

// NewUpdateRobotStatusCommand creates a command to change a robot's status.
func NewUpdateRobotStatusCommand(robotID kernel.UUID, status robot.Status) (UpdateRobotStatusCommand, error) {
	cmd := UpdateRobotStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRobotID(robotID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateRobotStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRobotStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRobotStatusCommandIsNotConstructed)
}

// RobotID returns the identifier of the robot to update.
func (c UpdateRobotStatusCommand) RobotID() kernel.UUID {
	return c.robotID
}

// Status returns the reported status.
func (c UpdateRobotStatusCommand) Status() robot.Status {
	return c.status
}

func (c *UpdateRobotStatusCommand) setRobotID(robotID kernel.UUID) error {
	if err := robotID.Validate(); err != nil {
		return err
	}
	c.robotID = robotID
	return nil
}

func (c *UpdateRobotStatusCommand) setStatus(status robot.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
