package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrUpdateInventoryStockCommandIsNotConstructed = errors.New(
	"UpdateInventoryStockCommand must be created via NewUpdateInventoryStockCommand constructor",
)

// UpdateInventoryStockCommand represents a request to overwrite an item's
// stock level with an absolute value, used for restocks and recounts.
type UpdateInventoryStockCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	stock  int

	guard guard.ConstructorGuard
}

// NewUpdateInventoryStockCommand creates a command to set an item's stock.
func NewUpdateInventoryStockCommand(itemID kernel.UUID, stock int) (UpdateInventoryStockCommand, error) {
	cmd := UpdateInventoryStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setStock(stock),
	); err != nil {
		return UpdateInventoryStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateInventoryStockCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInventoryStockCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to update.
func (c UpdateInventoryStockCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Stock returns the new absolute stock level.
func (c UpdateInventoryStockCommand) Stock() int {
	return c.stock
}

func (c *UpdateInventoryStockCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *UpdateInventoryStockCommand) setStock(stock int) error {
	if stock < 0 {
		return inventory.ErrStockIsNegative
	}
	c.stock = stock
	return nil
}
