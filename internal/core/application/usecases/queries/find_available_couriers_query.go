package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrFindAvailableCouriersQueryIsNotConstructed = errors.New(
	"FindAvailableCouriersQuery must be created via NewFindAvailableCouriersQuery constructor",
)

// FindAvailableCouriersQuery searches AVAILABLE couriers around a restaurant.
type FindAvailableCouriersQuery struct {
	restaurantID kernel.UUID
	radiusKm     float64

	guard guard.ConstructorGuard
}

// NewFindAvailableCouriersQuery searches around a restaurant. A zero radius leaves the
// choice to the handler's default.
func NewFindAvailableCouriersQuery(restaurantID kernel.UUID, radiusKm float64) (FindAvailableCouriersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return FindAvailableCouriersQuery{}, err
	}
	if radiusKm < 0 {
		return FindAvailableCouriersQuery{}, errs.NewValueIsInvalidError("radiusKm")
	}
	return FindAvailableCouriersQuery{
		restaurantID: restaurantID,
		radiusKm:     radiusKm,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q FindAvailableCouriersQuery) Validate() error {
	return q.guard.Validate(ErrFindAvailableCouriersQueryIsNotConstructed)
}

func (q FindAvailableCouriersQuery) RadiusKm() float64 { return q.radiusKm }

// FindAvailableCouriersQueryHandler ranks available couriers by distance to the
// restaurant. Couriers without a reported position are never returned.
//
// Example:
//
//	handler := NewFindAvailableCouriersQueryHandler(couriers, catalog).WithDefaultRadius(15)
//	query, _ := NewFindAvailableCouriersQuery(restaurantID, 0)
//	nearby, err := handler.Handle(ctx, query) // within 15 km, nearest first
type FindAvailableCouriersQueryHandler struct {
	couriers      ports.CourierRepository
	catalog       ports.CatalogReader
	locator       services.CourierLocator
	defaultRadius float64
}

// NewFindAvailableCouriersQueryHandler uses DefaultNearbyRadiusKm until WithDefaultRadius
// overrides it.
func NewFindAvailableCouriersQueryHandler(
	couriers ports.CourierRepository,
	catalogReader ports.CatalogReader,
) FindAvailableCouriersQueryHandler {
	return FindAvailableCouriersQueryHandler{
		couriers:      couriers,
		catalog:       catalogReader,
		locator:       services.NewCourierLocator(),
		defaultRadius: services.DefaultNearbyRadiusKm,
	}
}

// WithDefaultRadius sets the radius used by queries that do not name one.
func (h FindAvailableCouriersQueryHandler) WithDefaultRadius(km float64) FindAvailableCouriersQueryHandler {
	if km > 0 {
		h.defaultRadius = km
	}
	return h
}

// Handle returns available couriers nearest first.
func (h FindAvailableCouriersQueryHandler) Handle(
	ctx context.Context,
	query FindAvailableCouriersQuery,
) ([]services.NearbyCourier, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	restaurant, err := h.catalog.GetRestaurant(ctx, query.restaurantID)
	if err != nil {
		return nil, err
	}

	candidates, err := h.couriers.ListAvailableWithLocation(ctx)
	if err != nil {
		return nil, err
	}

	radius := query.RadiusKm()
	if radius == 0 {
		radius = h.defaultRadius
	}
	return h.locator.FindAvailableNearby(restaurant.Location, candidates, radius)
}
