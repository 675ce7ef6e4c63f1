// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// rows.
package orderrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its canonical uppercase name so rows stay readable and
// the state machine can evolve without renumbering.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RobotID       uuid.UUID `gorm:"type:uuid;index"`
	ItemID        uuid.UUID `gorm:"type:uuid;index"`
	Quantity      int
	Location      string
	Status        string `gorm:"index"`
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		RobotID:       aggregate.RobotID().Bytes(),
		ItemID:        aggregate.ItemID().Bytes(),
		Quantity:      aggregate.Quantity(),
		Location:      aggregate.Location(),
		Status:        aggregate.Status().String(),
		CreatedAt:     aggregate.CreatedAt(),
		LastUpdatedAt: aggregate.LastUpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, so stored rows pass the same invariants as fresh orders.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	robotID, err := kernel.UUIDFromBytes(dto.RobotID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		robotID,
		itemID,
		dto.Quantity,
		dto.Location,
		status,
		dto.CreatedAt,
		dto.LastUpdatedAt,
	)
}
