package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/pkg/guard"
)

var ErrCreateInventoryItemCommandIsNotConstructed = errors.New(
	"CreateInventoryItemCommand must be created via NewCreateInventoryItemCommand constructor",
)

// CreateInventoryItemCommand represents a request to add an item to the
// warehouse catalog.
type CreateInventoryItemCommand struct { //nolint:recvcheck //using for validation
	name             string
	stock            int
	reorderThreshold int

	guard guard.ConstructorGuard
}

// NewCreateInventoryItemCommand creates a command to add a catalog item.
func NewCreateInventoryItemCommand(name string, stock int, reorderThreshold int) (CreateInventoryItemCommand, error) {
	cmd := CreateInventoryItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setStock(stock),
		cmd.setReorderThreshold(reorderThreshold),
	); err != nil {
		return CreateInventoryItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateInventoryItemCommandIsNotConstructed)
}

// Name returns the item's display name.
func (c CreateInventoryItemCommand) Name() string {
	return c.name
}

// Stock returns the initial stock level.
func (c CreateInventoryItemCommand) Stock() int {
	return c.stock
}

// ReorderThreshold returns the advisory low-stock level.
func (c CreateInventoryItemCommand) ReorderThreshold() int {
	return c.reorderThreshold
}

func (c *CreateInventoryItemCommand) setName(name string) error {
	if name == "" {
		return inventory.ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateInventoryItemCommand) setStock(stock int) error {
	if stock < 0 {
		return inventory.ErrStockIsNegative
	}
	c.stock = stock
	return nil
}

func (c *CreateInventoryItemCommand) setReorderThreshold(threshold int) error {
	if threshold < 0 {
		return inventory.ErrReorderThresholdIsNegative
	}
	c.reorderThreshold = threshold
	return nil
}
