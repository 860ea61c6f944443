package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// CreateDeliveryCommandHandler creates the delivery of an order that is READY. A second
// call for the same order fails with a Conflict error.
type CreateDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateDeliveryCommandHandler creates the handler.
func NewCreateDeliveryCommandHandler(uowFactory UoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle creates the PENDING delivery.
//
// Returns:
//   - ErrPreconditionFailed unless the order is READY
//   - ErrConflict if the order already has a delivery
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if o.Status() != order.Ready {
		return errs.NewPreconditionFailedError("order", "must be READY to get a delivery, it is "+o.Status().String())
	}

	if err = addDelivery(ctx, uow.DeliveryRepository(), o.ID(), time.Now().UTC()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
