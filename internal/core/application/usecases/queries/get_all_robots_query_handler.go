package queries

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllRobotsQueryHandler lists the robot fleet.
type GetAllRobotsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRobotsQueryHandler creates a handler for fleet listings.
func NewGetAllRobotsQueryHandler(db *gorm.DB) GetAllRobotsQueryHandler {
	return GetAllRobotsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by ID for consistent output.
func (h GetAllRobotsQueryHandler) Handle(
	ctx context.Context,
	query GetAllRobotsQuery,
) ([]GetAllRobotsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	robots := make([]GetAllRobotsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			current_order_id,
			completed_orders,
			errors,
			last_updated_at
		FROM robots
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllRobotsQueryResponse
		var id uuid.UUID
		var currentOrderID uuid.NullUUID
		var lastUpdatedAt time.Time

		err = rows.Scan(
			&id,
			&resp.Status,
			&currentOrderID,
			&resp.CompletedOrders,
			&resp.Errors,
			&lastUpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if currentOrderID.Valid {
			orderID, idErr := kernel.UUIDFromBytes(currentOrderID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.CurrentOrderID = &orderID
		}
		resp.LastUpdatedAt = lastUpdatedAt
		robots = append(robots, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return robots, nil
}
