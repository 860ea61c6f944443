package services

import (
	"sort"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
)

// DefaultNearbyRadiusKm is used when no radius is requested.
const DefaultNearbyRadiusKm = 20.0

// NearbyCourier is a courier together with its distance to the search origin.
type NearbyCourier struct {
	Courier    *courier.Courier
	DistanceKm float64
}

// CourierLocator filters and ranks couriers by distance. It is stateless.
//
// Example:
//
//	locator := services.NewCourierLocator()
//	nearby, err := locator.FindAvailableNearby(restaurant.Location, couriers, 0)
//	// nearby[0] is the closest courier within DefaultNearbyRadiusKm
type CourierLocator struct{}

func NewCourierLocator() CourierLocator {
	return CourierLocator{}
}

// FindAvailableNearby keeps AVAILABLE couriers with a known position within radiusKm of
// origin and sorts them nearest first. A non-positive radius means DefaultNearbyRadiusKm.
func (CourierLocator) FindAvailableNearby(
	origin kernel.Location,
	couriers []*courier.Courier,
	radiusKm float64,
) ([]NearbyCourier, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		radiusKm = DefaultNearbyRadiusKm
	}

	nearby := make([]NearbyCourier, 0, len(couriers))
	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if !c.IsAvailable() {
			continue
		}

		distance, known, err := c.DistanceKmTo(origin)
		if err != nil {
			return nil, err
		}
		if !known || distance > radiusKm {
			continue
		}

		nearby = append(nearby, NearbyCourier{Courier: c, DistanceKm: distance})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	return nearby, nil
}
