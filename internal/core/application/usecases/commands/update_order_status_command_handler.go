package commands

import (
	"context"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies order lifecycle transitions and
// their side effects on the owning robot and the debited inventory.
//
// Non-terminal transitions touch only the order row. Terminal transitions
// additionally release the robot's current order pointer; COMPLETED bumps the
// robot's completed-orders counter and CANCELED re-credits the debited stock.
// All of it happens in one unit-of-work transaction so a half-applied
// transition can never be observed.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// transitions.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory, publisher ports.OrderEventPublisher) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle transitions the order and returns the updated aggregate.
//
// Invalid transitions (terminal re-transition, same-status repeat,
// IN_PROGRESS -> PENDING) are rejected with an
// order.InvalidStatusTransitionError before any write happens, so repeating
// the same invalid request deterministically yields the same error.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
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

	orders := uow.OrderRepository()
	robots := uow.RobotRepository()
	items := uow.InventoryRepository()

	target, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err = target.ChangeStatus(cmd.Status(), now); err != nil {
		return nil, err
	}

	if err = orders.Update(ctx, target); err != nil {
		return nil, fmt.Errorf("%w: persist status change for order %s: %w", ErrCoordinatorInternal, target.ID(), err)
	}

	if target.IsTerminal() {
		// The robot may already point at a newer order; release is
		// conditional on the pointer still referring to this one.
		if err = robots.ReleaseOrder(ctx, target.RobotID(), target.ID(), now); err != nil {
			return nil, fmt.Errorf("%w: release order %s from robot %s: %w", ErrCoordinatorInternal, target.ID(), target.RobotID(), err)
		}

		switch target.Status() {
		case order.Completed:
			if err = robots.IncrementCompletedOrders(ctx, target.RobotID(), now); err != nil {
				return nil, fmt.Errorf("%w: count completed order for robot %s: %w", ErrCoordinatorInternal, target.RobotID(), err)
			}
		case order.Canceled:
			if err = items.CreditStock(ctx, target.ItemID(), target.Quantity(), now); err != nil {
				return nil, fmt.Errorf("%w: re-credit stock for item %s: %w", ErrCoordinatorInternal, target.ItemID(), err)
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: commit status change for order %s: %w", ErrCoordinatorInternal, target.ID(), err)
	}

	_ = h.publisher.Publish(ctx, ports.OrderEvent{
		OrderID:    target.ID().String(),
		RobotID:    target.RobotID().String(),
		ItemID:     target.ItemID().String(),
		Quantity:   target.Quantity(),
		Status:     target.Status().String(),
		OccurredAt: now,
	})

	return target, nil
}
