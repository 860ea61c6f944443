// Package notifications turns committed order events into stored notifications and
// real-time pushes. It is the ports.EventPublisher handed to the unit of work.
package notifications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// Fanout handles order events. Other events are ignored.
type Fanout struct {
	notifications ports.NotificationRepository
	catalog       ports.CatalogReader
	pusher        ports.RealtimePusher
	logger        *slog.Logger
}

var _ ports.EventPublisher = (*Fanout)(nil)

func NewFanout(
	notifications ports.NotificationRepository,
	catalogReader ports.CatalogReader,
	pusher ports.RealtimePusher,
	logger *slog.Logger,
) *Fanout {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fanout{
		notifications: notifications,
		catalog:       catalogReader,
		pusher:        pusher,
		logger:        logger.With("component", "notification_fanout"),
	}
}

// Publish handles every event even when an earlier one fails and returns the joined errors.
func (f *Fanout) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	var errList []error
	for _, event := range events {
		var err error
		switch e := event.(type) {
		case order.OrderCreated:
			err = f.onOrderCreated(ctx, e)
		case order.OrderStatusUpdated:
			err = f.onOrderStatusUpdated(ctx, e)
		default:
			continue
		}

		if err != nil {
			f.logger.WarnContext(ctx, "event fanout failed",
				"event", event.EventName(),
				"error", err,
			)
			errList = append(errList, fmt.Errorf("%s: %w", event.EventName(), err))
		}
	}
	return errors.Join(errList...)
}

func (f *Fanout) onOrderCreated(ctx context.Context, e order.OrderCreated) error {
	n, err := f.notify(ctx, e.CustomerID, e.OrderID, notification.OrderCreated, e.OccurredAt)
	if err != nil {
		return err
	}
	f.pusher.EmitToUser(e.CustomerID, ports.RealtimeNotificationNew, messageOf(n))

	restaurant, err := f.catalog.GetRestaurant(ctx, e.RestaurantID)
	if err != nil {
		return fmt.Errorf("look up restaurant owner: %w", err)
	}

	newOrder := NewOrderMessage{
		OrderID:      e.OrderID,
		CustomerID:   e.CustomerID,
		RestaurantID: e.RestaurantID,
		TotalAmount:  e.TotalAmount,
		Status:       e.Status.String(),
		CreatedAt:    e.OccurredAt,
	}
	f.pusher.EmitToUser(restaurant.OwnerUserID, ports.RealtimeOrderNew, newOrder)
	f.pusher.EmitToRoom(RestaurantRoom(e.RestaurantID), ports.RealtimeOrderNew, newOrder)
	return nil
}

func (f *Fanout) onOrderStatusUpdated(ctx context.Context, e order.OrderStatusUpdated) error {
	kind, ok := notificationTypeFor(e.To)
	if !ok {
		return nil
	}

	n, err := f.notify(ctx, e.CustomerID, e.OrderID, kind, e.OccurredAt)
	if err != nil {
		return err
	}

	update := OrderStatusMessage{
		OrderID:        e.OrderID,
		Status:         e.To.String(),
		PreviousStatus: e.From.String(),
		UpdatedBy:      e.Actor.Role.String(),
		UpdatedAt:      e.OccurredAt,
	}
	f.pusher.EmitToUser(e.CustomerID, ports.RealtimeNotificationNew, messageOf(n))
	f.pusher.EmitToUser(e.CustomerID, ports.RealtimeOrderStatusUpdated, update)
	f.pusher.EmitToRoom(OrderRoom(e.OrderID), ports.RealtimeOrderStatusUpdated, update)
	return nil
}

func (f *Fanout) notify(
	ctx context.Context,
	userID, orderID kernel.UUID,
	kind notification.Type,
	at time.Time,
) (*notification.Notification, error) {
	title, message := textFor(kind, orderID)
	n, err := notification.NewNotification(notification.Params{
		ID:        kernel.NewUUID(),
		UserID:    userID,
		OrderID:   &orderID,
		Type:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: at,
	})
	if err != nil {
		return nil, err
	}
	if err = f.notifications.Add(ctx, n); err != nil {
		return nil, fmt.Errorf("store notification: %w", err)
	}
	return n, nil
}

func notificationTypeFor(s order.Status) (notification.Type, bool) {
	switch s {
	case order.Preparing:
		return notification.OrderAccepted, true
	case order.Ready:
		return notification.OrderReady, true
	case order.OutForDelivery:
		return notification.OrderOutForDelivery, true
	case order.Delivered:
		return notification.OrderDelivered, true
	case order.Cancelled:
		return notification.OrderCancelled, true
	case order.Unknown, order.Pending:
	}
	return "", false
}

func textFor(kind notification.Type, orderID kernel.UUID) (string, string) {
	ref := shortRef(orderID)
	switch kind {
	case notification.OrderCreated:
		return "Order placed", "Order " + ref + " was sent to the restaurant."
	case notification.OrderAccepted:
		return "Order accepted", "The restaurant is preparing order " + ref + "."
	case notification.OrderReady:
		return "Order ready", "Order " + ref + " is ready and waiting for a courier."
	case notification.OrderOutForDelivery:
		return "Out for delivery", "Order " + ref + " is on its way."
	case notification.OrderDelivered:
		return "Order delivered", "Order " + ref + " was delivered. Enjoy your meal!"
	case notification.OrderCancelled:
		return "Order cancelled", "Order " + ref + " was cancelled."
	}
	return string(kind), "Order " + ref + " was updated."
}

// shortRef is the first block of the order id, the reference customers see.
func shortRef(id kernel.UUID) string {
	s := id.String()
	if len(s) < 8 {
		return "#" + s
	}
	return "#" + s[:8]
}

// OrderRoom is the room following one order.
func OrderRoom(orderID kernel.UUID) string {
	return "order:" + orderID.String()
}

// RestaurantRoom is the room of a restaurant's staff screens.
func RestaurantRoom(restaurantID kernel.UUID) string {
	return "restaurant:" + restaurantID.String()
}
