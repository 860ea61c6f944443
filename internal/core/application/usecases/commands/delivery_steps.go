package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// addDelivery creates the PENDING delivery of an order. A second delivery for the same
// order is a Conflict; the unique index on order_id backs the lookup up under races.
func addDelivery(ctx context.Context, repo ports.DeliveryRepository, orderID kernel.UUID, at time.Time) error {
	_, err := repo.GetByOrderID(ctx, orderID)
	if err == nil {
		return errs.NewConflictError("delivery", "already exists for order "+orderID.String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	d, err := delivery.NewDelivery(kernel.NewUUID(), orderID, at)
	if err != nil {
		return err
	}
	return repo.Add(ctx, d)
}

// advanceDelivery applies a courier-driven step to the delivery, its order and the
// courier, then persists each of them with the status it was loaded in as the expected one.
func advanceDelivery(
	ctx context.Context,
	uow UoW,
	d *delivery.Delivery,
	o *order.Order,
	c *courier.Courier,
	to delivery.Status,
	at time.Time,
) error {
	deliveryWas, orderWas, courierWas := d.Status(), o.Status(), c.Availability()

	if err := services.NewDeliveryAssigner().Advance(d, o, c, to, at); err != nil {
		return err
	}

	if err := uow.DeliveryRepository().Update(ctx, d, deliveryWas); err != nil {
		return err
	}
	if err := uow.OrderRepository().UpdateStatus(ctx, o, orderWas); err != nil {
		return err
	}
	if c.Availability() != courierWas {
		return uow.CourierRepository().UpdateAvailability(ctx, c, courierWas)
	}
	return nil
}
