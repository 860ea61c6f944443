package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels a customer's order while it is PENDING or PREPARING.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates the handler over an order-only unit of work.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

// Handle cancels the order on behalf of its customer.
//
// Returns:
//   - ErrForbidden if the order belongs to another customer
//   - ErrInvalidTransition once the order is READY or later
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	actor := kernel.Actor{Role: kernel.RoleCustomer, ID: cmd.CustomerID()}
	err = transitionAndSave(ctx, uow, o, actor, order.Cancelled, order.TransitionParams{
		At:     time.Now().UTC(),
		Reason: cmd.Reason(),
	})
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
