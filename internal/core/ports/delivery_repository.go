package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Status writes are conditional on the status the caller loaded.
type DeliveryRepository interface {
	// Add inserts a delivery. A second delivery for the same order is a Conflict error.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists aggregate only if the stored status still equals expected.
	// Otherwise it returns a PreconditionFailed error; for an expected PENDING status
	// that error is delivery.ErrNoLongerAvailable.
	//
	// Example:
	//   from := d.Status()
	//   if err := d.Accept(courierID, now); err != nil {
	//       return err
	//   }
	//   if err := repo.Update(ctx, d, from); err != nil {
	//       return err // another courier was faster
	//   }
	Update(ctx context.Context, aggregate *delivery.Delivery, expected delivery.Status) error

	// Get retrieves a delivery by id. Unknown ids are ObjectNotFound errors.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the delivery of an order, ObjectNotFound before READY.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// ListPending returns PENDING deliveries, oldest first.
	ListPending(ctx context.Context, page Page) (PagedResult[*delivery.Delivery], error)

	// CountPendingSince counts PENDING deliveries created before cutoff.
	CountPendingSince(ctx context.Context, cutoff time.Time) (int64, error)
}
