package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/robot"
)

// UpdateRobotCompletedOrdersCommandHandler overwrites the completed-orders
// counter of a robot.
type UpdateRobotCompletedOrdersCommandHandler struct {
	uowFactory RobotUoWFactory
}

// NewUpdateRobotCompletedOrdersCommandHandler creates a handler for counter
// corrections.
func NewUpdateRobotCompletedOrdersCommandHandler(uowFactory RobotUoWFactory) UpdateRobotCompletedOrdersCommandHandler {
	return UpdateRobotCompletedOrdersCommandHandler{uowFactory: uowFactory}
}

// Handle sets the counter and returns the updated robot.
func (h UpdateRobotCompletedOrdersCommandHandler) Handle(ctx context.Context, cmd UpdateRobotCompletedOrdersCommand) (*robot.Robot, error) {
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

	if err = target.SetCompletedOrders(cmd.CompletedOrders(), time.Now().UTC()); err != nil {
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
