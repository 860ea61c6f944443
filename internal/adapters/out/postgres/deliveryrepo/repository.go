package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/adapters/out/postgres/pgerr"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM. Every status
// write is conditional on the status the caller loaded, which is how concurrent accepts
// are serialized without application locks.
//
// Example:
//
//	repo := uow.DeliveryRepository()
//	d, err := repo.Get(ctx, deliveryID)
//	if err != nil {
//	    return err
//	}
//	if err = d.Accept(courierID, now); err != nil {
//	    return err
//	}
//	return repo.Update(ctx, d, delivery.Pending)
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker receives every aggregate the repository persisted.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

var _ ports.DeliveryRepository = (*GormDeliveryRepository)(nil)

// NewGormDeliveryRepository creates a repository over db, which is the transaction when
// called from a unit of work.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new delivery.
//
// Returns:
//   - ErrConflict if the order already has a delivery (unique order_id index)
//   - the driver error for any other insert failure
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, orderUniqueIndex) {
			return errs.NewConflictErrorWithCause("delivery",
				"already exists for order "+aggregate.OrderID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable columns of aggregate while the stored status still equals
// expected.
//
// Parameters:
//   - aggregate: the delivery after its transition
//   - expected: the status the delivery had when it was loaded
//
// Returns:
//   - delivery.ErrNoLongerAvailable when expected is PENDING and another courier won
//   - ErrPreconditionFailed when any other concurrent change happened
//
// Example:
//
//	from := d.Status()
//	if err := d.Advance(courierID, delivery.PickedUp, now); err != nil {
//	    return err
//	}
//	return repo.Update(ctx, d, from)
func (r *GormDeliveryRepository) Update(
	ctx context.Context,
	aggregate *delivery.Delivery,
	expected delivery.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Updates(dto.columns())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if expected == delivery.Pending {
			return delivery.ErrNoLongerAvailable
		}
		return errs.NewPreconditionFailedError("delivery",
			"is no longer "+expected.String()+", it was changed concurrently")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads a delivery by id.
//
// Returns:
//   - ErrObjectNotFound if no delivery has the id
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "delivery", id, "id = ?", id.Bytes())
}

// GetByOrderID loads the delivery created for an order.
//
// Returns:
//   - ErrObjectNotFound while the order has no delivery yet
func (r *GormDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "delivery for order", orderID, "order_id = ?", orderID.Bytes())
}

// ListPending pages through PENDING deliveries, oldest first.
func (r *GormDeliveryRepository) ListPending(
	ctx context.Context,
	page ports.Page,
) (ports.PagedResult[*delivery.Delivery], error) {
	result := ports.PagedResult[*delivery.Delivery]{Page: page, Items: make([]*delivery.Delivery, 0)}

	pending := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where("status = ?", delivery.Pending.String())
	if err := pending.Count(&result.Total).Error; err != nil {
		return result, err
	}
	if result.Total == 0 {
		return result, nil
	}

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", delivery.Pending.String()).
		Order("created_at ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&dtos).Error
	if err != nil {
		return result, err
	}

	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return result, err
		}
		result.Items = append(result.Items, d)
	}
	return result, nil
}

// CountPendingSince counts deliveries still PENDING that were created before cutoff.
//
// Example:
//
//	stale, err := repo.CountPendingSince(ctx, time.Now().Add(-10*time.Minute))
func (r *GormDeliveryRepository) CountPendingSince(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("status = ? AND created_at < ?", delivery.Pending.String(), cutoff).
		Count(&count).Error
	return count, err
}

func (r *GormDeliveryRepository) first(
	ctx context.Context,
	name string,
	id kernel.UUID,
	query string,
	args ...any,
) (*delivery.Delivery, error) {
	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(name, id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}
