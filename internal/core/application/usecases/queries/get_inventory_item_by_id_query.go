package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetInventoryItemByIDQueryIsNotConstructed = errors.New(
	"GetInventoryItemByIDQuery must be created via NewGetInventoryItemByIDQuery constructor",
)

// GetInventoryItemByIDQuery retrieves a single catalog item by its identifier.
type GetInventoryItemByIDQuery struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInventoryItemByIDQuery creates a query to fetch one catalog item.
func NewGetInventoryItemByIDQuery(itemID kernel.UUID) (GetInventoryItemByIDQuery, error) {
	q := GetInventoryItemByIDQuery{guard: guard.NewConstructorGuard()}

	if err := q.setItemID(itemID); err != nil {
		return GetInventoryItemByIDQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInventoryItemByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryItemByIDQueryIsNotConstructed)
}

// ItemID returns the identifier of the item to fetch.
func (q GetInventoryItemByIDQuery) ItemID() kernel.UUID {
	return q.itemID
}

func (q *GetInventoryItemByIDQuery) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	q.itemID = itemID
	return nil
}

// GetInventoryItemByIDQueryResponse represents the fetched catalog item.
type GetInventoryItemByIDQueryResponse struct {
	ID               kernel.UUID
	Name             string
	Stock            int
	ReorderThreshold int
	LastUpdatedAt    time.Time
}
