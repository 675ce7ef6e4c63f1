package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control over the three warehouse collections.
// Client code must explicitly manage transaction lifecycle.
//
// Rolling back the transaction is the compensating action for a partially
// applied multi-entity mutation: either every write of an admission or
// terminal transition commits, or none do.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// RobotRepository returns a RobotRepository bound to the current transaction.
	RobotRepository() RobotRepository

	// InventoryRepository returns an InventoryRepository bound to the current transaction.
	InventoryRepository() InventoryRepository
}
