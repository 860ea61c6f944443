package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand asks to move an order to a new status on behalf of an actor.
// Restaurants drive PREPARING, READY and CANCELLED, couriers OUT_FOR_DELIVERY and
// DELIVERED, customers CANCELLED.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor
	status  order.Status
	reason  string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand builds the command. reason is only kept for CANCELLED.
//
// Example:
//
//	actor := kernel.Actor{Role: kernel.RoleRestaurant, ID: ownerID}
//	cmd, err := NewUpdateOrderStatusCommand(orderID, actor, order.Ready, "")
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	status order.Status,
	reason string,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		reason: strings.TrimSpace(reason),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	return cmd, nil
}

// Validate reports whether the command was built by its constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderStatusCommand) Actor() kernel.Actor  { return c.actor }
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }
func (c UpdateOrderStatusCommand) Reason() string       { return c.reason }

func (c *UpdateOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderStatusCommand) setActor(actor kernel.Actor) error {
	validated, err := kernel.NewActor(actor.Role, actor.ID)
	if err != nil {
		return err
	}
	c.actor = validated
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(s order.Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s == order.Pending {
		return errs.NewValueIsInvalidError("status PENDING cannot be requested")
	}
	c.status = s
	return nil
}
