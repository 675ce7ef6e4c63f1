package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/robot"
)

// UpdateRobotStatusCommandHandler applies status reports to robots.
type UpdateRobotStatusCommandHandler struct {
	uowFactory RobotUoWFactory
}

// NewUpdateRobotStatusCommandHandler creates a handler for robot status
// updates.
func NewUpdateRobotStatusCommandHandler(uowFactory RobotUoWFactory) UpdateRobotStatusCommandHandler {
	return UpdateRobotStatusCommandHandler{uowFactory: uowFactory}
}

// Handle applies the reported status and returns the updated robot.
func (h UpdateRobotStatusCommandHandler) Handle(ctx context.Context, cmd UpdateRobotStatusCommand) (*robot.Robot, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	robots := uow.RobotRepository()

	target, err := robots.Get(ctx, cmd.RobotID())
	if err != nil {
		return nil, err
	}

	if err = target.ChangeStatus(cmd.Status(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = robots.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}
