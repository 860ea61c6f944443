package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies an actor's status change to an order.
//
// A restaurant must own the order's restaurant. Moving to READY creates the delivery in
// the same transaction. A courier must be the one bound to the order's delivery, and its
// change is applied to the delivery too so both state machines move together.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	catalog    ports.CatalogReader
}

// NewUpdateOrderStatusCommandHandler creates the handler. The catalog is used to check
// restaurant ownership and to read the restaurant's delivery time.
func NewUpdateOrderStatusCommandHandler(
	uowFactory UoWFactory,
	catalogReader ports.CatalogReader,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalogReader,
	}
}

// Handle dispatches on the actor's role.
//
// Restaurants must own the order's restaurant; READY also creates the delivery.
// Couriers must be bound to the order's delivery, and their step is applied to the
// delivery as well. Customers may only cancel their own order.
//
// Returns:
//   - ErrForbidden if the role may not request the status or the actor is not a participant
//   - ErrInvalidTransition if the transition table has no such edge
//   - ErrPreconditionFailed if a concurrent writer changed the order first
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	actor := cmd.Actor()
	if !order.RoleMayRequest(actor.Role, cmd.Status()) {
		return errs.NewForbiddenError(actor.Role.String(), "move an order to "+cmd.Status().String())
	}

	now := time.Now().UTC()
	switch actor.Role {
	case kernel.RoleCourier:
		err = h.advanceAsCourier(ctx, uow, o, actor, cmd.Status(), now)
	case kernel.RoleRestaurant:
		err = h.transitionAsRestaurant(ctx, uow, o, actor, cmd, now)
	case kernel.RoleCustomer:
		err = transitionAndSave(ctx, uow, o, actor, cmd.Status(), order.TransitionParams{At: now, Reason: cmd.Reason()})
	case kernel.RoleUnknown:
		err = errs.NewForbiddenError(actor.Role.String(), "change an order")
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// transitionAsRestaurant checks ownership and creates the delivery on READY.
func (h UpdateOrderStatusCommandHandler) transitionAsRestaurant(
	ctx context.Context,
	uow UoW,
	o *order.Order,
	actor kernel.Actor,
	cmd UpdateOrderStatusCommand,
	at time.Time,
) error {
	restaurant, err := h.catalog.GetRestaurant(ctx, o.RestaurantID())
	if err != nil {
		return err
	}
	if !restaurant.IsOwnedBy(actor.ID) {
		return errs.NewForbiddenError(actor.Role.String(), "change another restaurant's order")
	}

	err = transitionAndSave(ctx, uow, o, actor, cmd.Status(), order.TransitionParams{
		At:              at,
		Reason:          cmd.Reason(),
		DeliveryTimeMax: restaurant.DeliveryTimeMax,
	})
	if err != nil {
		return err
	}

	if o.Status() == order.Ready {
		return addDelivery(ctx, uow.DeliveryRepository(), o.ID(), at)
	}
	return nil
}

// advanceAsCourier maps the order step onto the bound delivery.
func (h UpdateOrderStatusCommandHandler) advanceAsCourier(
	ctx context.Context,
	uow UoW,
	o *order.Order,
	actor kernel.Actor,
	to order.Status,
	at time.Time,
) error {
	step, ok := services.DeliveryStatusFor(to)
	if !ok {
		return errs.NewForbiddenError(actor.Role.String(), "move an order to "+to.String())
	}

	d, err := uow.DeliveryRepository().GetByOrderID(ctx, o.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewForbiddenError(actor.String(), "update an order without a delivery")
	}
	if err != nil {
		return err
	}
	if !d.IsAssignedTo(actor.ID) {
		return errs.NewForbiddenError(actor.String(), "update an order it is not delivering")
	}

	c, err := uow.CourierRepository().Get(ctx, actor.ID)
	if err != nil {
		return err
	}

	return advanceDelivery(ctx, uow, d, o, c, step, at)
}

// transitionAndSave applies the transition and persists it against the loaded status.
func transitionAndSave(
	ctx context.Context,
	repos OrderRepoFactory,
	o *order.Order,
	actor kernel.Actor,
	to order.Status,
	p order.TransitionParams,
) error {
	was := o.Status()
	if err := o.Transition(actor, to, p); err != nil {
		return err
	}
	return repos.OrderRepository().UpdateStatus(ctx, o, was)
}
