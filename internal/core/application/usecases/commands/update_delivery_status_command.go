package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand is the bound courier reporting pickup or drop-off.
type UpdateDeliveryStatusCommand struct {
	deliveryID kernel.UUID
	courierID  kernel.UUID
	status     delivery.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand builds the command. Whether status is the next step is
// decided by the handler against the stored delivery.
func NewUpdateDeliveryStatusCommand(
	deliveryID, courierID kernel.UUID,
	status delivery.Status,
) (UpdateDeliveryStatusCommand, error) {
	if err := errors.Join(deliveryID.Validate(), courierID.Validate(), status.Validate()); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}
	return UpdateDeliveryStatusCommand{
		deliveryID: deliveryID,
		courierID:  courierID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the command was built by its constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c UpdateDeliveryStatusCommand) CourierID() kernel.UUID  { return c.courierID }
func (c UpdateDeliveryStatusCommand) Status() delivery.Status { return c.status }
