package notifications

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
)

// NotificationMessage is the payload of notification:new.
type NotificationMessage struct {
	ID        kernel.UUID  `json:"id"`
	OrderID   *kernel.UUID `json:"orderId,omitempty"`
	Type      string       `json:"type"`
	Title     string       `json:"title"`
	Message   string       `json:"message"`
	IsRead    bool         `json:"isRead"`
	CreatedAt time.Time    `json:"createdAt"`
}

// NewOrderMessage is the payload of order:new.
type NewOrderMessage struct {
	OrderID      kernel.UUID `json:"orderId"`
	CustomerID   kernel.UUID `json:"customerId"`
	RestaurantID kernel.UUID `json:"restaurantId"`
	TotalAmount  int64       `json:"totalAmount"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// OrderStatusMessage is the payload of order:status-updated.
type OrderStatusMessage struct {
	OrderID        kernel.UUID `json:"orderId"`
	Status         string      `json:"status"`
	PreviousStatus string      `json:"previousStatus"`
	UpdatedBy      string      `json:"updatedBy"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

func messageOf(n *notification.Notification) NotificationMessage {
	return NotificationMessage{
		ID:        n.ID(),
		OrderID:   n.OrderID(),
		Type:      string(n.Type()),
		Title:     n.Title(),
		Message:   n.Message(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}
