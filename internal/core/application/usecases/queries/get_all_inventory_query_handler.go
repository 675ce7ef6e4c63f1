package queries

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllInventoryQueryHandler lists the warehouse catalog.
type GetAllInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetAllInventoryQueryHandler creates a handler for catalog listings.
func NewGetAllInventoryQueryHandler(db *gorm.DB) GetAllInventoryQueryHandler {
	return GetAllInventoryQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name for consistent output.
func (h GetAllInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetAllInventoryQuery,
) ([]GetAllInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetAllInventoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			stock,
			reorder_threshold,
			last_updated_at
		FROM inventory_items
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllInventoryQueryResponse
		var id uuid.UUID
		var lastUpdatedAt time.Time

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Stock,
			&resp.ReorderThreshold,
			&lastUpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.LastUpdatedAt = lastUpdatedAt
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
