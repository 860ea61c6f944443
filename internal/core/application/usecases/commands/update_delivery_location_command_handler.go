package commands

import (
	"context"
	"time"
)

// UpdateDeliveryLocationCommandHandler stores the position on the delivery and on the
// courier. Only the bound courier may report it, and only while the delivery is ACCEPTED
// or PICKED_UP.
type UpdateDeliveryLocationCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateDeliveryLocationCommandHandler creates the handler.
func NewUpdateDeliveryLocationCommandHandler(uowFactory UoWFactory) UpdateDeliveryLocationCommandHandler {
	return UpdateDeliveryLocationCommandHandler{uowFactory: uowFactory}
}

// Handle records the position.
//
// Returns:
//   - ErrPreconditionFailed unless the delivery is ACCEPTED or PICKED_UP
//   - ErrForbidden if another courier is bound to the delivery
func (h UpdateDeliveryLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}
	if err = d.UpdateLocation(cmd.CourierID(), cmd.Location(), time.Now().UTC()); err != nil {
		return err
	}
	if err = uow.DeliveryRepository().Update(ctx, d, d.Status()); err != nil {
		return err
	}

	c, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if err = c.MoveTo(cmd.Location()); err != nil {
		return err
	}
	if err = uow.CourierRepository().UpdateLocation(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
