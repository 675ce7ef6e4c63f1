package inventoryrepo

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new inventory item to the database.
func (r *GormInventoryRepository) Add(ctx context.Context, aggregate *inventory.InventoryItem) error {
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

// Update saves an existing inventory item to the database.
func (r *GormInventoryRepository) Update(ctx context.Context, aggregate *inventory.InventoryItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an inventory item by ID.
func (r *GormInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.InventoryItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an inventory item row.
func (r *GormInventoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", id.String())
	}

	return nil
}

// DebitStock subtracts quantity only where enough stock remains. The WHERE
// clause is the concurrency guard: concurrent debits against the same item
// serialize at the store and the losing update sees zero rows affected.
func (r *GormInventoryRepository) DebitStock(ctx context.Context, itemID kernel.UUID, quantity int, now time.Time) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("id = ? AND stock >= ?", itemID.Bytes(), quantity).
		Updates(map[string]any{
			"stock":           gorm.Expr("stock - ?", quantity),
			"last_updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var dto ItemDTO
		if err := r.db.WithContext(ctx).First(&dto, "id = ?", itemID.Bytes()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("item", itemID.String())
			}
			return err
		}
		return inventory.NewInsufficientStockError(itemID, dto.Stock, quantity)
	}

	return nil
}

// CreditStock adds quantity back to the item's stock. Crediting a deleted
// item is a no-op so cancellations never fail on a retired catalog entry.
func (r *GormInventoryRepository) CreditStock(ctx context.Context, itemID kernel.UUID, quantity int, now time.Time) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("id = ?", itemID.Bytes()).
		Updates(map[string]any{
			"stock":           gorm.Expr("stock + ?", quantity),
			"last_updated_at": now,
		}).Error
}
