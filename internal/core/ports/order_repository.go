package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add inserts the order together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus persists the status and lifecycle fields of aggregate only if the
	// stored status still equals expected. Otherwise it returns a PreconditionFailed error.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order with its items. Unknown ids are ObjectNotFound errors.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListByCustomer returns the customer's orders, newest first.
	ListByCustomer(ctx context.Context, customerID kernel.UUID, page Page) (PagedResult[*order.Order], error)

	// ListByRestaurant optionally filters by status; nil means every status.
	ListByRestaurant(
		ctx context.Context,
		restaurantID kernel.UUID,
		status *order.Status,
		page Page,
	) (PagedResult[*order.Order], error)
}
