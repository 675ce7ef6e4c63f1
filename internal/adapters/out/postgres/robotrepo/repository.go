package robotrepo

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/robot"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRobotRepository implements RobotRepository using GORM.
type GormRobotRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRobotRepository creates a new GORM robot repository.
func NewGormRobotRepository(db *gorm.DB, tracker aggregateTracker) *GormRobotRepository {
	return &GormRobotRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new robot to the database.
func (r *GormRobotRepository) Add(ctx context.Context, aggregate *robot.Robot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing robot to the database. All columns are written,
// including NULLing out a cleared current_order_id.
func (r *GormRobotRepository) Update(ctx context.Context, aggregate *robot.Robot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RobotDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("robot", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a robot by ID.
func (r *GormRobotRepository) Get(ctx context.Context, id kernel.UUID) (*robot.Robot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RobotDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("robot", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a robot row.
func (r *GormRobotRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RobotDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("robot", id.String())
	}

	return nil
}

// AssignOrder sets current_order_id to orderID only where it is still NULL.
// The WHERE clause is the concurrency guard: when two admissions race for the
// same robot, exactly one update matches a row and the other sees zero rows
// affected.
func (r *GormRobotRepository) AssignOrder(ctx context.Context, robotID kernel.UUID, orderID kernel.UUID, now time.Time) error {
	if err := robotID.Validate(); err != nil {
		return err
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&RobotDTO{}).
		Where("id = ? AND current_order_id IS NULL", robotID.Bytes()).
		Updates(map[string]any{
			"current_order_id": orderID.Bytes(),
			"last_updated_at":  now,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&RobotDTO{}).
			Where("id = ?", robotID.Bytes()).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("robot", robotID.String())
		}
		return robot.ErrRobotAlreadyAssigned
	}

	return nil
}

// ReleaseOrder clears current_order_id only where it still refers to orderID.
// A miss means the pointer was already cleared or moved on, which is fine.
func (r *GormRobotRepository) ReleaseOrder(ctx context.Context, robotID kernel.UUID, orderID kernel.UUID, now time.Time) error {
	if err := robotID.Validate(); err != nil {
		return err
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&RobotDTO{}).
		Where("id = ? AND current_order_id = ?", robotID.Bytes(), orderID.Bytes()).
		Updates(map[string]any{
			"current_order_id": nil,
			"last_updated_at":  now,
		}).Error
}

// IncrementCompletedOrders bumps the counter in place.
func (r *GormRobotRepository) IncrementCompletedOrders(ctx context.Context, robotID kernel.UUID, now time.Time) error {
	if err := robotID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&RobotDTO{}).
		Where("id = ?", robotID.Bytes()).
		Updates(map[string]any{
			"completed_orders": gorm.Expr("completed_orders + 1"),
			"last_updated_at":  now,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("robot", robotID.String())
	}

	return nil
}
