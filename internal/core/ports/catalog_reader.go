package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CatalogReader reads data owned by the catalog. Missing records are ObjectNotFound errors.
type CatalogReader interface {
	// GetRestaurant returns the restaurant with its owner, location and delivery fee.
	GetRestaurant(ctx context.Context, id kernel.UUID) (catalog.Restaurant, error)

	// GetMenuItems returns the items that exist among ids, in no particular order.
	GetMenuItems(ctx context.Context, ids []kernel.UUID) ([]catalog.MenuItem, error)

	GetAddress(ctx context.Context, id kernel.UUID) (catalog.Address, error)

	GetPaymentMethod(ctx context.Context, id kernel.UUID) (catalog.PaymentMethod, error)
}
