package commands_test

import (
	"context"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/robot"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRobotRepository struct{ mock.Mock }

func (m *MockRobotRepository) Add(ctx context.Context, r *robot.Robot) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRobotRepository) Update(ctx context.Context, r *robot.Robot) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRobotRepository) Get(ctx context.Context, id kernel.UUID) (*robot.Robot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*robot.Robot), args.Error(1)
}

func (m *MockRobotRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRobotRepository) AssignOrder(ctx context.Context, robotID kernel.UUID, orderID kernel.UUID, now time.Time) error {
	args := m.Called(ctx, robotID, orderID, now)
	return args.Error(0)
}

func (m *MockRobotRepository) ReleaseOrder(ctx context.Context, robotID kernel.UUID, orderID kernel.UUID, now time.Time) error {
	args := m.Called(ctx, robotID, orderID, now)
	return args.Error(0)
}

func (m *MockRobotRepository) IncrementCompletedOrders(ctx context.Context, robotID kernel.UUID, now time.Time) error {
	args := m.Called(ctx, robotID, now)
	return args.Error(0)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Add(ctx context.Context, item *inventory.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) Update(ctx context.Context, item *inventory.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInventoryRepository) DebitStock(ctx context.Context, itemID kernel.UUID, quantity int, now time.Time) error {
	args := m.Called(ctx, itemID, quantity, now)
	return args.Error(0)
}

func (m *MockInventoryRepository) CreditStock(ctx context.Context, itemID kernel.UUID, quantity int, now time.Time) error {
	args := m.Called(ctx, itemID, quantity, now)
	return args.Error(0)
}

// MockUoW satisfies every unit-of-work interface in the package, so a single
// mock type serves order-only, robot-only, inventory-only and coordinator
// handlers alike.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RobotRepository() ports.RobotRepository {
	args := m.Called()
	return args.Get(0).(ports.RobotRepository)
}

func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRobotUoWFactory struct{ mock.Mock }

func (m *MockRobotUoWFactory) Create() commands.RobotUoW {
	args := m.Called()
	return args.Get(0).(commands.RobotUoW)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
