package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationsQueryHandler(t *testing.T) {
	repo := new(MockNotificationRepository)
	handler := queries.NewNotificationsQueryHandler(repo)
	userID := kernel.NewUUID()

	n, err := notification.NewNotification(notification.Params{
		ID: kernel.NewUUID(), UserID: userID, Type: notification.OrderReady, Title: "Ready", Message: "Your order is ready",
	})
	require.NoError(t, err)

	page := ports.NewPage(1, ports.DefaultPageSize)
	repo.On("ListByUser", mock.Anything, userID, page).
		Return(ports.PagedResult[*notification.Notification]{Items: []*notification.Notification{n}, Total: 1, Page: page}, nil)
	repo.On("CountUnread", mock.Anything, userID).Return(int64(1), nil)

	q, err := queries.NewNotificationsQuery(userID, ports.Page{})
	require.NoError(t, err)

	list, err := handler.List(t.Context(), q)
	require.NoError(t, err)
	assert.Equal(t, []*notification.Notification{n}, list.Items)

	unread, err := handler.CountUnread(t.Context(), q)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestNotificationsQuery_NotConstructed(t *testing.T) {
	_, err := queries.NewNotificationsQueryHandler(nil).CountUnread(t.Context(), queries.NotificationsQuery{})
	require.ErrorIs(t, err, queries.ErrNotificationsQueryIsNotConstructed)
}
