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

// GetRobotByIDQueryHandler fetches a single robot row.
type GetRobotByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetRobotByIDQueryHandler creates a handler for single-robot lookups.
func NewGetRobotByIDQueryHandler(db *gorm.DB) GetRobotByIDQueryHandler {
	return GetRobotByIDQueryHandler{db: db}
}

// Handle executes the lookup. A missing robot is reported as an
// errs.ObjectNotFoundError.
func (h GetRobotByIDQueryHandler) Handle(
	ctx context.Context,
	query GetRobotByIDQuery,
) (GetRobotByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRobotByIDQueryResponse{}, err
	}

	var resp GetRobotByIDQueryResponse
	var id uuid.UUID
	var currentOrderID uuid.NullUUID
	var lastUpdatedAt time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			current_order_id,
			completed_orders,
			errors,
			last_updated_at
		FROM robots
		WHERE id = ?
	`, query.RobotID().String()).Row()

	err := row.Scan(
		&id,
		&resp.Status,
		&currentOrderID,
		&resp.CompletedOrders,
		&resp.Errors,
		&lastUpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetRobotByIDQueryResponse{}, errs.NewObjectNotFoundError("robotID", query.RobotID())
	}
	if err != nil {
		return GetRobotByIDQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetRobotByIDQueryResponse{}, err
	}
	if currentOrderID.Valid {
		orderID, idErr := kernel.UUIDFromBytes(currentOrderID.UUID[:])
		if idErr != nil {
			return GetRobotByIDQueryResponse{}, idErr
		}
		resp.CurrentOrderID = &orderID
	}
	resp.LastUpdatedAt = lastUpdatedAt

	return resp, nil
}
