package commands_test

import (
	"errors"
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		2, "B7", status, now, now,
	)
	require.NoError(t, err)
	return o
}

func TestUpdateOrderStatusCommandHandler_Handle_NonTerminal(t *testing.T) {
	ctx := t.Context()
	target := storedOrder(t, order.Pending)
	cmd, _ := commands.NewUpdateOrderStatusCommand(target.ID(), order.InProgress)

	orders := new(MockOrderRepository)
	robots := new(MockRobotRepository)
	items := new(MockInventoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		uow.On("RobotRepository").Return(robots).Once(),
		uow.On("InventoryRepository").Return(items).Once(),
		orders.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		orders.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.InProgress, updated.Status())
	robots.AssertNotCalled(t, "ReleaseOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	items.AssertNotCalled(t, "CreditStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_Completed(t *testing.T) {
	ctx := t.Context()
	target := storedOrder(t, order.InProgress)
	cmd, _ := commands.NewUpdateOrderStatusCommand(target.ID(), order.Completed)

	orders := new(MockOrderRepository)
	robots := new(MockRobotRepository)
	items := new(MockInventoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		uow.On("RobotRepository").Return(robots).Once(),
		uow.On("InventoryRepository").Return(items).Once(),
		orders.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		orders.On("Update", mock.Anything, target).Return(nil).Once(),
		robots.On("ReleaseOrder", mock.Anything, target.RobotID(), target.ID(), mock.AnythingOfType("time.Time")).Return(nil).Once(),
		robots.On("IncrementCompletedOrders", mock.Anything, target.RobotID(), mock.AnythingOfType("time.Time")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Completed, updated.Status())
	items.AssertNotCalled(t, "CreditStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	robots.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_CanceledRecreditsStock(t *testing.T) {
	ctx := t.Context()
	target := storedOrder(t, order.Pending)
	cmd, _ := commands.NewUpdateOrderStatusCommand(target.ID(), order.Canceled)

	orders := new(MockOrderRepository)
	robots := new(MockRobotRepository)
	items := new(MockInventoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		uow.On("RobotRepository").Return(robots).Once(),
		uow.On("InventoryRepository").Return(items).Once(),
		orders.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		orders.On("Update", mock.Anything, target).Return(nil).Once(),
		robots.On("ReleaseOrder", mock.Anything, target.RobotID(), target.ID(), mock.AnythingOfType("time.Time")).Return(nil).Once(),
		items.On("CreditStock", mock.Anything, target.ItemID(), target.Quantity(), mock.AnythingOfType("time.Time")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Canceled, updated.Status())
	robots.AssertNotCalled(t, "IncrementCompletedOrders", mock.Anything, mock.Anything, mock.Anything)
	items.AssertExpectations(t)
	uow.AssertExpectations(t)
}

// Once the status row is written the transition is partially applied; a
// store failure on any of the side-effect writes must surface as a
// coordination failure, never with the driver's text.
func TestUpdateOrderStatusCommandHandler_Handle_CreditStoreError(t *testing.T) {
	ctx := t.Context()
	target := storedOrder(t, order.Pending)
	cmd, _ := commands.NewUpdateOrderStatusCommand(target.ID(), order.Canceled)

	orders := new(MockOrderRepository)
	robots := new(MockRobotRepository)
	items := new(MockInventoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		uow.On("RobotRepository").Return(robots).Once(),
		uow.On("InventoryRepository").Return(items).Once(),
		orders.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		orders.On("Update", mock.Anything, target).Return(nil).Once(),
		robots.On("ReleaseOrder", mock.Anything, target.RobotID(), target.ID(), mock.AnythingOfType("time.Time")).Return(nil).Once(),
		items.On("CreditStock", mock.Anything, target.ItemID(), target.Quantity(), mock.AnythingOfType("time.Time")).
			Return(errors.New("pq: connection reset by peer")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockOrderEventPublisher))
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCoordinatorInternal)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_UpdateStoreError(t *testing.T) {
	ctx := t.Context()
	target := storedOrder(t, order.Pending)
	cmd, _ := commands.NewUpdateOrderStatusCommand(target.ID(), order.InProgress)

	orders := new(MockOrderRepository)
	robots := new(MockRobotRepository)
	items := new(MockInventoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		uow.On("RobotRepository").Return(robots).Once(),
		uow.On("InventoryRepository").Return(items).Once(),
		orders.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		orders.On("Update", mock.Anything, target).Return(errors.New("write conflict")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockOrderEventPublisher))
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCoordinatorInternal)
	robots.AssertNotCalled(t, "ReleaseOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_TerminalTransitionRejected(t *testing.T) {
	ctx := t.Context()
	target := storedOrder(t, order.Completed)
	cmd, _ := commands.NewUpdateOrderStatusCommand(target.ID(), order.Canceled)

	orders := new(MockOrderRepository)
	robots := new(MockRobotRepository)
	items := new(MockInventoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		uow.On("RobotRepository").Return(robots).Once(),
		uow.On("InventoryRepository").Return(items).Once(),
		orders.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockOrderEventPublisher))
	_, err := h.Handle(ctx, cmd)

	var transitionErr *order.InvalidStatusTransitionError
	require.ErrorAs(t, err, &transitionErr)
	require.Equal(t, order.Completed, transitionErr.From)
	require.Equal(t, order.Canceled, transitionErr.To)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(orderID, order.Canceled)

	orders := new(MockOrderRepository)
	robots := new(MockRobotRepository)
	items := new(MockInventoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		uow.On("RobotRepository").Return(robots).Once(),
		uow.On("InventoryRepository").Return(items).Once(),
		orders.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockOrderEventPublisher))
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateOrderStatusCommand_RejectsUnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Unknown)
	require.ErrorIs(t, err, order.ErrInvalidStatus)
}
