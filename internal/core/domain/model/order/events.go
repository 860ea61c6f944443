package order

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

const (
	EventNameOrderCreated       = "order.created"
	EventNameOrderStatusUpdated = "order.status_updated"
)

// OrderCreated is recorded once by NewOrder.
type OrderCreated struct {
	OrderID      kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	TotalAmount  int64
	Status       Status
	OccurredAt   time.Time
}

func (OrderCreated) EventName() string { return EventNameOrderCreated }

// OrderStatusUpdated is recorded by every successful Transition.
type OrderStatusUpdated struct {
	OrderID      kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	From         Status
	To           Status
	Actor        kernel.Actor
	OccurredAt   time.Time
}

func (OrderStatusUpdated) EventName() string { return EventNameOrderStatusUpdated }
