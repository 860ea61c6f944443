package courierrepo

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/adapters/out/postgres/pgerr"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCourierRepository implements ports.CourierRepository using GORM. Availability is
// written with a compare-and-swap on the stored value, so two deliveries can never
// occupy the same courier.
//
// Example:
//
//	repo := uow.CourierRepository()
//	c, err := repo.Get(ctx, courierID)
//	if err != nil {
//	    return err
//	}
//	if err = c.Occupy(); err != nil {
//	    return err
//	}
//	return repo.UpdateAvailability(ctx, c, courier.Available)
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker receives every aggregate the repository persisted.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

var _ ports.CourierRepository = (*GormCourierRepository)(nil)

// NewGormCourierRepository creates a repository over db. Pass postgres.NoTracking{} when
// the repository is used outside a unit of work.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add registers a new courier.
//
// Returns:
//   - ErrConflict if the user already has a courier profile
//   - the driver error for any other insert failure
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, userUniqueIndex) {
			return errs.NewConflictErrorWithCause("courier",
				"already registered for user "+aggregate.UserID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateAvailability stores availability and delivery statistics while the stored
// availability still equals expected.
//
// Parameters:
//   - aggregate: the courier after Occupy, Release, GoOnline or GoOffline
//   - expected: the availability the courier had when it was loaded
//
// Returns:
//   - courier.ErrCourierNotAvailable when expected is AVAILABLE and the courier was taken
//   - ErrPreconditionFailed for any other concurrent change
//
// Example:
//
//	from := c.Availability()
//	if err := c.Release(); err != nil {
//	    return err
//	}
//	return repo.UpdateAvailability(ctx, c, from)
func (r *GormCourierRepository) UpdateAvailability(
	ctx context.Context,
	aggregate *courier.Courier,
	expected courier.Availability,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ? AND availability = ?", aggregate.ID().Bytes(), expected.String()).
		Updates(map[string]any{
			"availability":     aggregate.Availability().String(),
			"total_deliveries": aggregate.TotalDeliveries(),
			"updated_at":       time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if expected == courier.Available {
			return courier.ErrCourierNotAvailable
		}
		return errs.NewPreconditionFailedError("courier",
			"is no longer "+expected.String()+", it was changed concurrently")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateLocation stores the courier's current position.
//
// Returns:
//   - ErrObjectNotFound if the courier row does not exist
func (r *GormCourierRepository) UpdateLocation(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"current_latitude":  dto.CurrentLatitude,
			"current_longitude": dto.CurrentLongitude,
			"updated_at":        time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads a courier by courier id.
//
// Returns:
//   - ErrObjectNotFound if no courier has the id
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "courier", id, "id = ?", id.Bytes())
}

// GetByUserID loads the courier profile owned by a user.
//
// Returns:
//   - ErrObjectNotFound if the user never registered as a courier
//
// Example:
//
//	c, err := repo.GetByUserID(ctx, actor.ID)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // not a courier
//	}
func (r *GormCourierRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*courier.Courier, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "courier for user", userID, "user_id = ?", userID.Bytes())
}

// ListAvailableWithLocation returns AVAILABLE couriers with a known position. Distance
// filtering happens in the domain service.
func (r *GormCourierRepository) ListAvailableWithLocation(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	err := r.db.WithContext(ctx).
		Where("availability = ?", courier.Available.String()).
		Where("current_latitude IS NOT NULL AND current_longitude IS NOT NULL").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}
	return couriers, nil
}

func (r *GormCourierRepository) first(
	ctx context.Context,
	name string,
	id kernel.UUID,
	query string,
	args ...any,
) (*courier.Courier, error) {
	var dto CourierDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(name, id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}
