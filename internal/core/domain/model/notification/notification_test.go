package notification_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	orderID := kernel.NewUUID()

	n, err := notification.NewNotification(notification.Params{
		ID:      kernel.NewUUID(),
		UserID:  kernel.NewUUID(),
		OrderID: &orderID,
		Type:    notification.OrderReady,
		Title:   "Order ready",
		Message: "Your order is waiting for a courier",
		IsRead:  true,
	})

	require.NoError(t, err)
	require.NoError(t, n.Validate())
	assert.False(t, n.IsRead())
	assert.Equal(t, notification.OrderReady, n.Type())
	assert.False(t, n.CreatedAt().IsZero())
	assert.Equal(t, n.CreatedAt(), n.UpdatedAt())
}

func TestNewNotification_Invalid(t *testing.T) {
	_, err := notification.NewNotification(notification.Params{ID: kernel.NewUUID(), Type: "ORDER_LOST"})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "title")
}

func TestNotification_Validate_ZeroValue(t *testing.T) {
	require.ErrorIs(t, (&notification.Notification{}).Validate(), notification.ErrNotificationIsNotConstructed)
}
