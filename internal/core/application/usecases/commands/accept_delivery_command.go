package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand is a courier claiming a PENDING delivery.
//
// Example:
//
//	cmd, _ := NewAcceptDeliveryCommand(deliveryID, courierID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, delivery.ErrNoLongerAvailable):
//	    // another courier was faster
//	case errors.Is(err, courier.ErrCourierNotAvailable):
//	    // the courier is offline or already busy
//	}
type AcceptDeliveryCommand struct {
	deliveryID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand builds the command. courierID is the courier profile id,
// not the user id.
func NewAcceptDeliveryCommand(deliveryID, courierID kernel.UUID) (AcceptDeliveryCommand, error) {
	if err := errors.Join(deliveryID.Validate(), courierID.Validate()); err != nil {
		return AcceptDeliveryCommand{}, err
	}
	return AcceptDeliveryCommand{
		deliveryID: deliveryID,
		courierID:  courierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrAcceptDeliveryCommandIsNotConstructed for zero values.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

func (c AcceptDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c AcceptDeliveryCommand) CourierID() kernel.UUID  { return c.courierID }
