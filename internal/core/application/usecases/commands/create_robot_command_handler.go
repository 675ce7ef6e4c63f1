package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/robot"
)

// CreateRobotCommandHandler registers new robots with the fleet.
type CreateRobotCommandHandler struct {
	uowFactory RobotUoWFactory
}

// NewCreateRobotCommandHandler creates a handler for robot registration.
func NewCreateRobotCommandHandler(uowFactory RobotUoWFactory) CreateRobotCommandHandler {
	return CreateRobotCommandHandler{uowFactory: uowFactory}
}

// Handle registers the robot and returns the created aggregate.
func (h CreateRobotCommandHandler) Handle(ctx context.Context, cmd CreateRobotCommand) (*robot.Robot, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newRobot, err := robot.NewRobot(
		kernel.NewUUID(),
		cmd.Status(),
		cmd.CurrentOrderID(),
		cmd.CompletedOrders(),
		cmd.ErrorsInfo(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RobotRepository().Add(ctx, newRobot); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newRobot, nil
}
