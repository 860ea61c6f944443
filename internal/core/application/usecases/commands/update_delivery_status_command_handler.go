package commands

import (
	"context"
	"time"

	"fooddelivery/internal/pkg/errs"
)

// UpdateDeliveryStatusCommandHandler moves a delivery to PICKED_UP or DELIVERED and
// mirrors the step on the order. DELIVERED also frees the courier.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates the handler.
func NewUpdateDeliveryStatusCommandHandler(uowFactory UoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{uowFactory: uowFactory}
}

// Handle advances the delivery, its order and, on DELIVERED, the courier in one
// transaction.
//
// Returns:
//   - ErrForbidden if the caller is not the bound courier
//   - ErrInvalidTransition for anything but the next step
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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
	if !d.IsAssignedTo(cmd.CourierID()) {
		return errs.NewForbiddenError("courier "+cmd.CourierID().String(), "update a delivery it is not assigned to")
	}

	o, err := uow.OrderRepository().Get(ctx, d.OrderID())
	if err != nil {
		return err
	}
	c, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = advanceDelivery(ctx, uow, d, o, c, cmd.Status(), time.Now().UTC()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
