// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work scopes one business operation to one database
// transaction across the order, robot and inventory repositories, with
// automatic rollback discarding partial writes when the operation fails
// mid-protocol.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//	if err := uow.RobotRepository().AssignOrder(ctx, robotID, order.ID(), now); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"warehouse/internal/adapters/out/postgres/inventoryrepo"
	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/adapters/out/postgres/robotrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances backed by a shared GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state, isolated from concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the three
// warehouse repositories and tracks the aggregates modified within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates the transaction. Repeated calls on the same instance are
// safe and do not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction. This is
// the compensating action for a failed multi-entity mutation: the order row,
// the robot pointer and the stock debit all revert together.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides order persistence within the unit of work.
// Operations execute inside the current transaction if one is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// RobotRepository provides robot persistence within the unit of work.
// Operations execute inside the current transaction if one is active.
func (uow *GormUnitOfWork) RobotRepository() ports.RobotRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return robotrepo.NewGormRobotRepository(db, uow)
}

// InventoryRepository provides inventory persistence within the unit of work.
// Operations execute inside the current transaction if one is active.
func (uow *GormUnitOfWork) InventoryRepository() ports.InventoryRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return inventoryrepo.NewGormInventoryRepository(db, uow)
}

// TrackAggregate registers an aggregate as modified within this unit of work.
// Repositories call it on Add and Update; the tracked set enables
// post-commit processing such as event publication.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// GetTrackedAggregates returns the aggregates modified in this unit of work.
func (uow *GormUnitOfWork) GetTrackedAggregates() []trackedAggregate {
	return uow.trackedAggregates
}
