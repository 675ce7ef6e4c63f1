// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
//
// The order commands form the order coordinator: the only component allowed
// to mutate more than one collection per operation. Robot and inventory
// commands are single-aggregate managers.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RobotRepoFactory provides access to the robot repository within a transaction.
	RobotRepoFactory interface {
		RobotRepository() ports.RobotRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RobotUoW manages transactions for robot-only operations.
	RobotUoW interface {
		TxManager
		RobotRepoFactory
	}

	// RobotUoWFactory creates new robot unit of work instances.
	RobotUoWFactory interface {
		Create() RobotUoW
	}

	// InventoryUoW manages transactions for inventory-only operations.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates new inventory unit of work instances.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// UoW manages transactions across all three warehouse collections.
	// Used by the order coordinator for admission and terminal transitions,
	// which touch orders, robots, and inventory atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orders := uow.OrderRepository()
	//   robots := uow.RobotRepository()
	//   items := uow.InventoryRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		RobotRepoFactory
		InventoryRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-collection operations.
	UoWFactory interface {
		Create() UoW
	}
)
