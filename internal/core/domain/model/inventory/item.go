// Package inventory contains the InventoryItem aggregate.
//
// Inventory stock is the quantity available for admission. The order
// coordinator debits stock when an order is admitted and credits it back on
// cancellation; the inventory manager only performs absolute stock updates.
// Stock is never negative. The reorder threshold is advisory: it drives the
// low-stock monitor, not any coordinator rule.
package inventory

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// Domain errors for inventory operations.
var (
	// ErrItemIsNotConstructed is returned when using an improperly initialized InventoryItem.
	ErrItemIsNotConstructed = errors.New("InventoryItem must be created via NewItem or RestoreItem constructor")

	// ErrNameIsRequired is returned when an item is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrStockIsNegative is returned when stock would be set below zero.
	ErrStockIsNegative = errs.NewValueIsInvalidErrorWithCause("stock",
		errors.New("stock cannot be negative"))

	// ErrReorderThresholdIsNegative is returned when the reorder threshold is below zero.
	ErrReorderThresholdIsNegative = errs.NewValueIsInvalidErrorWithCause("reorderThreshold",
		errors.New("reorder threshold cannot be negative"))
)

// InsufficientStockError is returned when a debit would drive stock negative.
// It unwraps to errs.ErrValueIsOutOfRange for classification.
type InsufficientStockError struct {
	ItemID    kernel.UUID
	Stock     int
	Requested int
}

// NewInsufficientStockError creates an InsufficientStockError for the failed debit.
func NewInsufficientStockError(itemID kernel.UUID, stock, requested int) *InsufficientStockError {
	return &InsufficientStockError{ItemID: itemID, Stock: stock, Requested: requested}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s: have %d, requested %d", e.ItemID, e.Stock, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return errs.ErrValueIsOutOfRange
}

// InventoryItem represents a stocked item in the warehouse.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Stock and reorder threshold are never negative
type InventoryItem struct {
	// id uniquely identifies the item
	id kernel.UUID

	// name is the display name of the item
	name string

	// stock is the quantity currently available for admission
	stock int

	// reorderThreshold is the advisory low-stock level
	reorderThreshold int

	// lastUpdatedAt tracks the most recent mutation
	lastUpdatedAt time.Time

	// guard ensures the item was created via a factory function
	guard guard.ConstructorGuard
}

// NewItem creates a new InventoryItem with validation.
func NewItem(
	id kernel.UUID,
	name string,
	stock int,
	reorderThreshold int,
	now time.Time,
) (*InventoryItem, error) {
	item := &InventoryItem{
		lastUpdatedAt: now,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setStock(stock),
		item.setReorderThreshold(reorderThreshold),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an InventoryItem aggregate from persistent storage.
func RestoreItem(
	id kernel.UUID,
	name string,
	stock int,
	reorderThreshold int,
	lastUpdatedAt time.Time,
) (*InventoryItem, error) {
	return NewItem(id, name, stock, reorderThreshold, lastUpdatedAt)
}

// Validate ensures the item was properly constructed through a factory
// function. Returns ErrItemIsNotConstructed otherwise.
func (i *InventoryItem) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
func (i *InventoryItem) IsEqual(other *InventoryItem) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *InventoryItem) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *InventoryItem) Name() string {
	return i.name
}

// Stock returns the quantity currently available.
func (i *InventoryItem) Stock() int {
	return i.stock
}

// ReorderThreshold returns the advisory low-stock level.
func (i *InventoryItem) ReorderThreshold() int {
	return i.reorderThreshold
}

// LastUpdatedAt returns the timestamp of the most recent mutation.
func (i *InventoryItem) LastUpdatedAt() time.Time {
	return i.lastUpdatedAt
}

// NeedsReorder reports whether stock has fallen to or below the threshold.
func (i *InventoryItem) NeedsReorder() bool {
	return i.stock <= i.reorderThreshold
}

// SetStock replaces the stock level absolutely.
// Rejects negative values with ErrStockIsNegative.
func (i *InventoryItem) SetStock(stock int, now time.Time) error {
	if stock < 0 {
		return ErrStockIsNegative
	}

	i.stock = stock
	i.lastUpdatedAt = now
	return nil
}

// Debit subtracts quantity units from stock during order admission.
// Returns an InsufficientStockError when stock < quantity; stock never goes
// negative.
func (i *InventoryItem) Debit(quantity int, now time.Time) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if i.stock < quantity {
		return NewInsufficientStockError(i.id, i.stock, quantity)
	}

	i.stock -= quantity
	i.lastUpdatedAt = now
	return nil
}

// Credit adds quantity units back to stock, used when a canceled order
// releases its debit.
func (i *InventoryItem) Credit(quantity int, now time.Time) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	i.stock += quantity
	i.lastUpdatedAt = now
	return nil
}

func (i *InventoryItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *InventoryItem) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *InventoryItem) setStock(stock int) error {
	if stock < 0 {
		return ErrStockIsNegative
	}
	i.stock = stock
	return nil
}

func (i *InventoryItem) setReorderThreshold(threshold int) error {
	if threshold < 0 {
		return ErrReorderThresholdIsNegative
	}
	i.reorderThreshold = threshold
	return nil
}
