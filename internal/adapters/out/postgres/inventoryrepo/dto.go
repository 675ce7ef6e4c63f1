// Package inventoryrepo provides data transfer objects and mapping functions
// for inventory persistence. The repository implements the conditional stock
// debit the order coordinator relies on to keep stock non-negative under
// concurrent admissions.
package inventoryrepo

import (
	"time"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting inventory items.
type ItemDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"index"`
	Stock            int
	ReorderThreshold int
	LastUpdatedAt    time.Time
}

// TableName specifies the database table name for inventory entities.
func (ItemDTO) TableName() string {
	return "inventory_items"
}

// fromDomain converts an inventory domain aggregate to its database
// representation.
func fromDomain(aggregate *inventory.InventoryItem) ItemDTO {
	return ItemDTO{
		ID:               aggregate.ID().Bytes(),
		Name:             aggregate.Name(),
		Stock:            aggregate.Stock(),
		ReorderThreshold: aggregate.ReorderThreshold(),
		LastUpdatedAt:    aggregate.LastUpdatedAt(),
	}
}

// toDomain converts a database DTO to an inventory domain aggregate.
func toDomain(dto ItemDTO) (*inventory.InventoryItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return inventory.RestoreItem(
		id,
		dto.Name,
		dto.Stock,
		dto.ReorderThreshold,
		dto.LastUpdatedAt,
	)
}
