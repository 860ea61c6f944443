package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// Real-time event names pushed to clients.
const (
	RealtimeOrderNew           = "order:new"
	RealtimeOrderStatusUpdated = "order:status-updated"
	RealtimeNotificationNew    = "notification:new"
)

// RealtimePusher delivers messages to connected clients. Delivery is best effort:
// offline users simply miss the message.
type RealtimePusher interface {
	// EmitToUser pushes to every open stream of one user.
	EmitToUser(userID kernel.UUID, event string, payload any)
	// EmitToRoom pushes to every stream that joined room.
	EmitToRoom(room string, event string, payload any)
	// EmitToAll pushes to every open stream.
	EmitToAll(event string, payload any)
}

// EventPublisher receives domain events after the transaction that recorded them commits.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}
