package services

import (
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
)

// DeliveryEstimator turns distances and vehicle speeds into minutes. It is stateless.
type DeliveryEstimator struct{}

func NewDeliveryEstimator() DeliveryEstimator {
	return DeliveryEstimator{}
}

// EstimateMinutes returns the remaining delivery time in minutes. The second result is
// false when no estimate exists: the delivery is PENDING or DELIVERED, or the courier's
// position is unknown.
//
// While ACCEPTED the courier still has to reach the restaurant, so the distance is
// courier -> restaurant -> address. Once PICKED_UP it is courier -> address.
func (DeliveryEstimator) EstimateMinutes(
	d *delivery.Delivery,
	c *courier.Courier,
	restaurant kernel.Location,
	address kernel.Location,
) (int, bool, error) {
	if err := d.Validate(); err != nil {
		return 0, false, err
	}
	if !d.Status().IsActive() || c == nil {
		return 0, false, nil
	}
	if err := c.Validate(); err != nil {
		return 0, false, err
	}

	var (
		distance float64
		known    bool
		err      error
	)
	switch d.Status() {
	case delivery.Accepted:
		distance, known, err = c.DistanceKmTo(restaurant)
		if err != nil || !known {
			return 0, false, err
		}
		leg, legErr := restaurant.DistanceKm(address)
		if legErr != nil {
			return 0, false, legErr
		}
		distance += leg
	case delivery.PickedUp:
		distance, known, err = c.DistanceKmTo(address)
		if err != nil || !known {
			return 0, false, err
		}
	case delivery.Unknown, delivery.Pending, delivery.Delivered:
		return 0, false, nil
	}

	minutes, err := c.MinutesToCover(distance)
	if err != nil {
		return 0, false, err
	}
	return minutes, true, nil
}
