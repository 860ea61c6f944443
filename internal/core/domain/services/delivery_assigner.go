package services

import (
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// DeliveryAssigner keeps the delivery, its order and the courier consistent. It only
// mutates the aggregates in memory; persisting them with compare-and-swap updates is the
// caller's job.
type DeliveryAssigner struct{}

func NewDeliveryAssigner() DeliveryAssigner {
	return DeliveryAssigner{}
}

// Assign binds c to a PENDING delivery and marks it BUSY.
func (DeliveryAssigner) Assign(d *delivery.Delivery, c *courier.Courier, at time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if d.Status() != delivery.Pending {
		return delivery.ErrNoLongerAvailable
	}
	if err := c.Occupy(); err != nil {
		return err
	}
	return d.Accept(c.ID(), at)
}

// Advance moves the delivery to to on behalf of its courier and mirrors the step on the
// order: PICKED_UP moves the order to OUT_FOR_DELIVERY, DELIVERED moves it to DELIVERED
// and releases the courier.
func (DeliveryAssigner) Advance(
	d *delivery.Delivery,
	o *order.Order,
	c *courier.Courier,
	to delivery.Status,
	at time.Time,
) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if !d.OrderID().IsEqual(o.ID()) {
		return errs.NewValueIsInvalidError("delivery does not belong to the order")
	}

	if at.IsZero() {
		at = time.Now().UTC()
	}

	if err := d.Advance(c.ID(), to, at); err != nil {
		return err
	}

	orderStatus, ok := OrderStatusFor(to)
	if !ok {
		return errs.NewInvalidTransitionError("delivery", d.Status().String(), to.String())
	}

	actor := kernel.Actor{Role: kernel.RoleCourier, ID: c.ID()}
	if err := o.Transition(actor, orderStatus, order.TransitionParams{At: at}); err != nil {
		return err
	}

	if to == delivery.Delivered {
		return c.Release()
	}
	return nil
}

// OrderStatusFor maps a courier-driven delivery status to the order status it implies.
func OrderStatusFor(s delivery.Status) (order.Status, bool) {
	switch s {
	case delivery.PickedUp:
		return order.OutForDelivery, true
	case delivery.Delivered:
		return order.Delivered, true
	case delivery.Unknown, delivery.Pending, delivery.Accepted:
	}
	return order.Unknown, false
}

// DeliveryStatusFor is the inverse of OrderStatusFor, used when a courier updates the
// order status directly.
func DeliveryStatusFor(s order.Status) (delivery.Status, bool) {
	switch s {
	case order.OutForDelivery:
		return delivery.PickedUp, true
	case order.Delivered:
		return delivery.Delivered, true
	case order.Unknown, order.Pending, order.Preparing, order.Ready, order.Cancelled:
	}
	return delivery.Unknown, false
}
