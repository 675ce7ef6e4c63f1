package commands

import (
	"context"
)

// DeleteOrderCommandHandler removes terminal order records.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the order if it is terminal. An active order is rejected
// with ErrOrderIsActive: deleting it would strand the robot's current order
// pointer and the inventory debit.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	orders := uow.OrderRepository()

	target, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if target.IsActive() {
		return ErrOrderIsActive
	}

	if err = orders.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
