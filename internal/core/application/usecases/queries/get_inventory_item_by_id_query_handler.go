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

// GetInventoryItemByIDQueryHandler fetches a single catalog row.
type GetInventoryItemByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryItemByIDQueryHandler creates a handler for single-item
// lookups.
func NewGetInventoryItemByIDQueryHandler(db *gorm.DB) GetInventoryItemByIDQueryHandler {
	return GetInventoryItemByIDQueryHandler{db: db}
}

// Handle executes the lookup. A missing item is reported as an
// errs.ObjectNotFoundError.
func (h GetInventoryItemByIDQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryItemByIDQuery,
) (GetInventoryItemByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInventoryItemByIDQueryResponse{}, err
	}

	var resp GetInventoryItemByIDQueryResponse
	var id uuid.UUID
	var lastUpdatedAt time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			stock,
			reorder_threshold,
			last_updated_at
		FROM inventory_items
		WHERE id = ?
	`, query.ItemID().String()).Row()

	err := row.Scan(
		&id,
		&resp.Name,
		&resp.Stock,
		&resp.ReorderThreshold,
		&lastUpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetInventoryItemByIDQueryResponse{}, errs.NewObjectNotFoundError("itemID", query.ItemID())
	}
	if err != nil {
		return GetInventoryItemByIDQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetInventoryItemByIDQueryResponse{}, err
	}
	resp.LastUpdatedAt = lastUpdatedAt

	return resp, nil
}
