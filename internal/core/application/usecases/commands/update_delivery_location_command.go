package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateDeliveryLocationCommandIsNotConstructed = errors.New(
	"UpdateDeliveryLocationCommand must be created via NewUpdateDeliveryLocationCommand constructor",
)

// UpdateDeliveryLocationCommand reports the courier's current position for a delivery.
// Out-of-range coordinates are rejected by the constructor.
type UpdateDeliveryLocationCommand struct {
	deliveryID kernel.UUID
	courierID  kernel.UUID
	location   kernel.Location

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryLocationCommand validates the ids and the coordinates.
//
// Returns:
//   - error: ErrValueIsOutOfRange for latitude outside [-90, 90] or longitude outside [-180, 180]
func NewUpdateDeliveryLocationCommand(
	deliveryID, courierID kernel.UUID,
	latitude, longitude float64,
) (UpdateDeliveryLocationCommand, error) {
	location, locErr := kernel.NewLocation(latitude, longitude)
	if err := errors.Join(deliveryID.Validate(), courierID.Validate(), locErr); err != nil {
		return UpdateDeliveryLocationCommand{}, err
	}
	return UpdateDeliveryLocationCommand{
		deliveryID: deliveryID,
		courierID:  courierID,
		location:   location,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built by its constructor.
func (c UpdateDeliveryLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryLocationCommandIsNotConstructed)
}

func (c UpdateDeliveryLocationCommand) DeliveryID() kernel.UUID   { return c.deliveryID }
func (c UpdateDeliveryLocationCommand) CourierID() kernel.UUID    { return c.courierID }
func (c UpdateDeliveryLocationCommand) Location() kernel.Location { return c.location }
