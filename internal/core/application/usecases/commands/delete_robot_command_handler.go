package commands

import (
	"context"
)

// DeleteRobotCommandHandler decommissions robots.
type DeleteRobotCommandHandler struct {
	uowFactory RobotUoWFactory
}

// NewDeleteRobotCommandHandler creates a handler for robot decommissioning.
func NewDeleteRobotCommandHandler(uowFactory RobotUoWFactory) DeleteRobotCommandHandler {
	return DeleteRobotCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the robot unless it still holds an active order, in which
// case ErrRobotHasActiveOrder is returned.
func (h DeleteRobotCommandHandler) Handle(ctx context.Context, cmd DeleteRobotCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	robots := uow.RobotRepository()

	target, err := robots.Get(ctx, cmd.RobotID())
	if err != nil {
		return err
	}

	if target.IsBusy() {
		return ErrRobotHasActiveOrder
	}

	if err = robots.Delete(ctx, cmd.RobotID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
