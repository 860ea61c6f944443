package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand opens the delivery of a READY order.
type CreateDeliveryCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateDeliveryCommand(orderID kernel.UUID) (CreateDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateDeliveryCommand{}, err
	}
	return CreateDeliveryCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate reports whether the command was built by its constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) OrderID() kernel.UUID { return c.orderID }
