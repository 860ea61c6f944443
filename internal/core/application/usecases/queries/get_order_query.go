package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads an order on behalf of an actor.
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery validates the order id and the actor.
func NewGetOrderQuery(orderID kernel.UUID, actor kernel.Actor) (GetOrderQuery, error) {
	validated, err := kernel.NewActor(actor.Role, actor.ID)
	if err = errors.Join(orderID.Validate(), err); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, actor: validated, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetOrderQuery) Actor() kernel.Actor  { return q.actor }

// GetOrderQueryHandler returns an order with its items to one of its participants.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
	access orderAccess
}

func NewGetOrderQueryHandler(
	orders ports.OrderRepository,
	deliveries ports.DeliveryRepository,
	catalogReader ports.CatalogReader,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orders: orders,
		access: orderAccess{catalog: catalogReader, deliveries: deliveries},
	}
}

// Handle loads the order and checks access.
//
// Returns:
//   - ErrObjectNotFound for an unknown order
//   - ErrForbidden unless the actor is the customer, the restaurant owner or the
//     courier bound to the order's delivery
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	if err = h.access.check(ctx, query.Actor(), o); err != nil {
		return nil, err
	}
	return o, nil
}
