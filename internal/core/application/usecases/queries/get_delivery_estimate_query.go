package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetDeliveryEstimateQueryIsNotConstructed = errors.New(
	"GetDeliveryEstimateQuery must be created via NewGetDeliveryEstimateQuery constructor",
)

// GetDeliveryEstimateQuery asks for the remaining minutes of a delivery.
type GetDeliveryEstimateQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDeliveryEstimateQuery(deliveryID kernel.UUID) (GetDeliveryEstimateQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryEstimateQuery{}, err
	}
	return GetDeliveryEstimateQuery{deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryEstimateQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryEstimateQueryIsNotConstructed)
}

// DeliveryEstimate is the remaining time of a delivery. Known is false while the delivery
// waits for a courier, after it was delivered, or when the courier has not reported a
// position yet.
type DeliveryEstimate struct {
	DeliveryID kernel.UUID
	Minutes    int
	Known      bool
}

// GetDeliveryEstimateQueryHandler estimates from the courier's last position. An
// ACCEPTED delivery goes through the restaurant first; a PICKED_UP one goes straight to
// the drop-off address.
type GetDeliveryEstimateQueryHandler struct {
	deliveries ports.DeliveryRepository
	orders     ports.OrderRepository
	couriers   ports.CourierRepository
	catalog    ports.CatalogReader
	estimator  services.DeliveryEstimator
}

func NewGetDeliveryEstimateQueryHandler(
	deliveries ports.DeliveryRepository,
	orders ports.OrderRepository,
	couriers ports.CourierRepository,
	catalogReader ports.CatalogReader,
) GetDeliveryEstimateQueryHandler {
	return GetDeliveryEstimateQueryHandler{
		deliveries: deliveries,
		orders:     orders,
		couriers:   couriers,
		catalog:    catalogReader,
		estimator:  services.NewDeliveryEstimator(),
	}
}

// Handle returns an estimate with Known set to false when no estimate can be made.
// That is not an error.
func (h GetDeliveryEstimateQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryEstimateQuery,
) (DeliveryEstimate, error) {
	if err := query.Validate(); err != nil {
		return DeliveryEstimate{}, err
	}

	d, err := h.deliveries.Get(ctx, query.deliveryID)
	if err != nil {
		return DeliveryEstimate{}, err
	}
	estimate := DeliveryEstimate{DeliveryID: d.ID()}
	if !d.Status().IsActive() || d.CourierID() == nil {
		return estimate, nil
	}

	o, err := h.orders.Get(ctx, d.OrderID())
	if err != nil {
		return DeliveryEstimate{}, err
	}
	restaurant, err := h.catalog.GetRestaurant(ctx, o.RestaurantID())
	if err != nil {
		return DeliveryEstimate{}, err
	}
	address, err := h.catalog.GetAddress(ctx, o.DeliveryAddressID())
	if err != nil {
		return DeliveryEstimate{}, err
	}
	c, err := h.couriers.Get(ctx, *d.CourierID())
	if err != nil {
		return DeliveryEstimate{}, err
	}

	estimate.Minutes, estimate.Known, err = h.estimator.EstimateMinutes(d, c, restaurant.Location, address.Location)
	if err != nil {
		return DeliveryEstimate{}, err
	}
	return estimate, nil
}
