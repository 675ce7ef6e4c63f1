package queries

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists every order for monitoring dashboards.
//
// Example:
//
//	handler := NewGetAllOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewGetAllOrdersQuery())
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("%d orders on record\n", len(orders))
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first so active work
// appears at the top of the listing.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var id, robotID, itemID uuid.UUID
		var createdAt, lastUpdatedAt time.Time

		err = rows.Scan(
			&id,
			&robotID,
			&itemID,
			&resp.Quantity,
			&resp.Location,
			&resp.Status,
			&createdAt,
			&lastUpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.RobotID, err = kernel.UUIDFromBytes(robotID[:]); err != nil {
			return nil, err
		}
		if resp.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		resp.CreatedAt = createdAt
		resp.LastUpdatedAt = lastUpdatedAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
