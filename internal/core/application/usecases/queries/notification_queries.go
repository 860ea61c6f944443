package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/guard"
)

var ErrNotificationsQueryIsNotConstructed = errors.New(
	"NotificationsQuery must be created via NewNotificationsQuery constructor",
)

// NotificationsQuery addresses one user's notifications. The page is ignored when counting.
type NotificationsQuery struct {
	userID kernel.UUID
	page   ports.Page

	guard guard.ConstructorGuard
}

func NewNotificationsQuery(userID kernel.UUID, page ports.Page) (NotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return NotificationsQuery{}, err
	}
	return NotificationsQuery{
		userID: userID,
		page:   ports.NewPage(page.Number, page.Size),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q NotificationsQuery) Validate() error {
	return q.guard.Validate(ErrNotificationsQueryIsNotConstructed)
}

// NotificationsQueryHandler reads a user's inbox.
type NotificationsQueryHandler struct {
	notifications ports.NotificationRepository
}

func NewNotificationsQueryHandler(notifications ports.NotificationRepository) NotificationsQueryHandler {
	return NotificationsQueryHandler{notifications: notifications}
}

// List returns the newest notifications first.
func (h NotificationsQueryHandler) List(
	ctx context.Context,
	query NotificationsQuery,
) (ports.PagedResult[*notification.Notification], error) {
	if err := query.Validate(); err != nil {
		return ports.PagedResult[*notification.Notification]{}, err
	}
	return h.notifications.ListByUser(ctx, query.userID, query.page)
}

// CountUnread returns the number of unread notifications.
func (h NotificationsQueryHandler) CountUnread(ctx context.Context, query NotificationsQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}
	return h.notifications.CountUnread(ctx, query.userID)
}
