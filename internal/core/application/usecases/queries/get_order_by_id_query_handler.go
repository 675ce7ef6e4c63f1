package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler fetches a single order row.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order lookups.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the lookup. A missing order is reported as an
// errs.ObjectNotFoundError.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	var resp GetOrderByIDQueryResponse
	var id, robotID, itemID uuid.UUID
	var createdAt, lastUpdatedAt time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			robot_id,
			item_id,
			quantity,
			location,
			status,
			created_at,
			last_updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&id,
		&robotID,
		&itemID,
		&resp.Quantity,
		&resp.Location,
		&resp.Status,
		&createdAt,
		&lastUpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderByIDQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	if resp.RobotID, err = kernel.UUIDFromBytes(robotID[:]); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	if resp.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	resp.CreatedAt = createdAt
	resp.LastUpdatedAt = lastUpdatedAt

	return resp, nil
}
