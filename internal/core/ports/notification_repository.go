package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
)

// NotificationRepository stores the in-app notification inbox of every user.
type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error

	// ListByUser returns the user's notifications, newest first.
	ListByUser(ctx context.Context, userID kernel.UUID, page Page) (PagedResult[*notification.Notification], error)

	// MarkAllAsRead returns the number of notifications that were unread.
	MarkAllAsRead(ctx context.Context, userID kernel.UUID) (int64, error)

	CountUnread(ctx context.Context, userID kernel.UUID) (int64, error)
}
