package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order by its identifier.
type GetOrderByIDQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query to fetch one order.
func NewGetOrderByIDQuery(orderID kernel.UUID) (GetOrderByIDQuery, error) {
	q := GetOrderByIDQuery{guard: guard.NewConstructorGuard()}

	if err := q.setOrderID(orderID); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderByIDQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

// GetOrderByIDQueryResponse represents the fetched order.
type GetOrderByIDQueryResponse struct {
	ID            kernel.UUID
	RobotID       kernel.UUID
	ItemID        kernel.UUID
	Quantity      int
	Location      string
	Status        string
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}
