package orderrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM. Items are stored in
// order_items and always loaded in their original position.
//
// Example:
//
//	repo := orderrepo.NewGormOrderRepository(tx, uow)
//	if err := repo.Add(ctx, o); err != nil {
//	    return err
//	}
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker receives every aggregate the repository persisted.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// NewGormOrderRepository creates a repository over db. db is the transaction when called
// from a unit of work.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order with its items and tracks it for event publishing.
//
// Returns:
//   - the aggregate validation error for unconstructed orders
//   - the driver error when the insert fails
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// UpdateStatus persists the lifecycle columns of aggregate, but only while the stored
// status still equals expected.
//
// Parameters:
//   - aggregate: the order after its transition
//   - expected: the status the order had when it was loaded
//
// Returns:
//   - ErrPreconditionFailed if another transaction changed the status first
//
// Example:
//
//	from := o.Status()
//	if err := o.Transition(actor, order.Ready, params); err != nil {
//	    return err
//	}
//	if err := repo.UpdateStatus(ctx, o, from); err != nil {
//	    return err // 412 when a concurrent writer won
//	}
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), expected.String()).
		Updates(lifecycleColumns(aggregate))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewPreconditionFailedError("order",
			"is no longer "+expected.String()+", it was changed concurrently")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads an order and its items.
//
// Returns:
//   - ErrObjectNotFound if no order has the id
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByCustomer pages through a customer's orders, newest first.
func (r *GormOrderRepository) ListByCustomer(
	ctx context.Context,
	customerID kernel.UUID,
	page ports.Page,
) (ports.PagedResult[*order.Order], error) {
	return r.list(ctx, page, func(db *gorm.DB) *gorm.DB {
		return db.Where("customer_id = ?", customerID.Bytes())
	})
}

// ListByRestaurant pages through a restaurant's orders, newest first. A nil status
// lists every status.
//
// Example:
//
//	ready := order.Ready
//	page, err := repo.ListByRestaurant(ctx, restaurantID, &ready, ports.NewPage(1, 20))
func (r *GormOrderRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID kernel.UUID,
	status *order.Status,
	page ports.Page,
) (ports.PagedResult[*order.Order], error) {
	return r.list(ctx, page, func(db *gorm.DB) *gorm.DB {
		db = db.Where("restaurant_id = ?", restaurantID.Bytes())
		if status != nil {
			db = db.Where("status = ?", status.String())
		}
		return db
	})
}

func (r *GormOrderRepository) list(
	ctx context.Context,
	page ports.Page,
	scope func(*gorm.DB) *gorm.DB,
) (ports.PagedResult[*order.Order], error) {
	result := ports.PagedResult[*order.Order]{Page: page, Items: make([]*order.Order, 0)}

	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Scopes(scope).Count(&result.Total).Error; err != nil {
		return result, err
	}
	if result.Total == 0 {
		return result, nil
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Scopes(scope).
		Preload("Items", orderedItems).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&dtos).Error
	if err != nil {
		return result, err
	}

	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return result, err
		}
		result.Items = append(result.Items, o)
	}

	return result, nil
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
