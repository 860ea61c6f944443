package delivery

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

const (
	EventNameDeliveryCreated       = "delivery.created"
	EventNameDeliveryStatusUpdated = "delivery.status_updated"
)

type DeliveryCreated struct {
	DeliveryID kernel.UUID
	OrderID    kernel.UUID
	OccurredAt time.Time
}

func (DeliveryCreated) EventName() string { return EventNameDeliveryCreated }

type DeliveryStatusUpdated struct {
	DeliveryID kernel.UUID
	OrderID    kernel.UUID
	CourierID  kernel.UUID
	From       Status
	To         Status
	OccurredAt time.Time
}

func (DeliveryStatusUpdated) EventName() string { return EventNameDeliveryStatusUpdated }
