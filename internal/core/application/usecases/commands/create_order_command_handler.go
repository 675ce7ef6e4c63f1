package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/robot"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// CreateOrderCommandHandler implements the order admission protocol.
//
// Admission validates the cross-entity preconditions in a fixed sequence
// (robot exists, robot is free, quantity is positive, item exists, stock is
// sufficient), then persists the order, points the robot at it, and debits
// the inventory, all inside a single unit-of-work transaction.
//
// The robot pointer and the stock debit use store-level conditional updates,
// so two concurrent admissions racing for the same robot or the same item
// resolve deterministically: one wins, the other observes RobotBusy or
// InsufficientStock. Rolling back the transaction undoes every partial write,
// which is the compensating action for mid-protocol failures.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCreateOrderCommand(robotID, itemID, 3, "A2")
//
//	created, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrRobotBusy):
//	    // 409: robot already has an active order
//	case err != nil:
//	    // other admission failure
//	default:
//	    fmt.Printf("order %s admitted", created.ID())
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order admission.
// Requires a UoWFactory for transactional persistence and a publisher for
// post-commit lifecycle events.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, publisher ports.OrderEventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle runs the admission protocol and returns the admitted order.
//
// The precondition sequence is part of the API contract: a request that
// violates several preconditions at once reports the first one in protocol
// order (robot lookup, busy check, quantity, item lookup, stock check).
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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
	items := uow.InventoryRepository()
	orders := uow.OrderRepository()

	targetRobot, err := robots.Get(ctx, cmd.RobotID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrRobotNotFound
	}
	if err != nil {
		return nil, err
	}

	if targetRobot.IsBusy() {
		return nil, ErrRobotBusy
	}

	if cmd.Quantity() <= 0 {
		return nil, ErrInvalidQuantity
	}

	item, err := items.Get(ctx, cmd.ItemID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	if item.Stock() < cmd.Quantity() {
		return nil, inventory.NewInsufficientStockError(item.ID(), item.Stock(), cmd.Quantity())
	}

	now := time.Now().UTC()
	newOrder, err := order.NewOrder(kernel.NewUUID(), cmd.RobotID(), cmd.ItemID(), cmd.Quantity(), cmd.Location(), now)
	if err != nil {
		return nil, err
	}

	// The order must exist before the robot points at it.
	if err = orders.Add(ctx, newOrder); err != nil {
		return nil, fmt.Errorf("%w: persist order %s: %w", ErrCoordinatorInternal, newOrder.ID(), err)
	}

	if err = robots.AssignOrder(ctx, cmd.RobotID(), newOrder.ID(), now); err != nil {
		if errors.Is(err, robot.ErrRobotAlreadyAssigned) {
			return nil, ErrRobotBusy
		}
		return nil, fmt.Errorf("%w: assign order %s to robot %s: %w", ErrCoordinatorInternal, newOrder.ID(), cmd.RobotID(), err)
	}

	if err = items.DebitStock(ctx, cmd.ItemID(), cmd.Quantity(), now); err != nil {
		var insufficient *inventory.InsufficientStockError
		if errors.As(err, &insufficient) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: debit stock for item %s: %w", ErrCoordinatorInternal, cmd.ItemID(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: commit admission for order %s: %w", ErrCoordinatorInternal, newOrder.ID(), err)
	}

	// Best effort: admission already committed, a publish failure must not
	// fail the request. The publisher logs its own errors.
	_ = h.publisher.Publish(ctx, ports.OrderEvent{
		OrderID:    newOrder.ID().String(),
		RobotID:    newOrder.RobotID().String(),
		ItemID:     newOrder.ItemID().String(),
		Quantity:   newOrder.Quantity(),
		Status:     newOrder.Status().String(),
		OccurredAt: now,
	})

	return newOrder, nil
}
