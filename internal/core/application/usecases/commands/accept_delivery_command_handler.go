package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/services"
)

// AcceptDeliveryCommandHandler binds a courier to a PENDING delivery.
//
// Both writes are compare-and-swap updates in one transaction: the delivery only if it
// is still PENDING and the courier only if it is still AVAILABLE. Of N couriers racing
// for the same delivery exactly one commits; the others get delivery.ErrNoLongerAvailable.
type AcceptDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptDeliveryCommandHandler creates the handler. The factory must hand out units
// of work spanning deliveries and couriers.
func NewAcceptDeliveryCommandHandler(uowFactory UoWFactory) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle assigns the courier and commits.
//
// Returns:
//   - delivery.ErrNoLongerAvailable if the delivery is not PENDING, also when another
//     courier commits first
//   - courier.ErrCourierNotAvailable if the courier is OFFLINE or BUSY
//   - ErrObjectNotFound for an unknown delivery or courier
func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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
	if d.Status() != delivery.Pending {
		return delivery.ErrNoLongerAvailable
	}

	c, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if !c.IsAvailable() {
		return courier.ErrCourierNotAvailable
	}

	if err = services.NewDeliveryAssigner().Assign(d, c, time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, d, delivery.Pending); err != nil {
		return err
	}
	if err = uow.CourierRepository().UpdateAvailability(ctx, c, courier.Available); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
