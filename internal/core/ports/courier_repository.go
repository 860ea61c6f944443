package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
// Availability writes are compare-and-swap so a courier is occupied by at most one
// delivery.
type CourierRepository interface {
	// Add registers a courier. A second courier for the same user is a Conflict error.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// UpdateAvailability persists availability and delivery statistics only if the stored
	// availability still equals expected. Otherwise it returns a PreconditionFailed error.
	UpdateAvailability(ctx context.Context, aggregate *courier.Courier, expected courier.Availability) error

	// UpdateLocation persists the courier's current position.
	UpdateLocation(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by courier id. Unknown ids are ObjectNotFound errors.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetByUserID retrieves the profile a user registered. It is how a courier-role
	// caller is mapped to a courier id.
	//
	// Example:
	//   c, err := repo.GetByUserID(ctx, userID)
	//   if errors.Is(err, errs.ErrObjectNotFound) {
	//       return errs.NewForbiddenError("courier", "act without a courier profile")
	//   }
	GetByUserID(ctx context.Context, userID kernel.UUID) (*courier.Courier, error)

	// ListAvailableWithLocation returns AVAILABLE couriers whose position is known.
	ListAvailableWithLocation(ctx context.Context) ([]*courier.Courier, error)
}
