package services_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func location(t *testing.T, lat, lon float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	return loc
}

func availableCourier(t *testing.T, vehicle courier.VehicleType, at *kernel.Location) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), kernel.NewUUID(), vehicle, 0)
	require.NoError(t, err)
	require.NoError(t, c.GoOnline())
	if at != nil {
		require.NoError(t, c.MoveTo(*at))
	}
	return c
}

func item(t *testing.T, quantity int, unitPrice int64) order.Item {
	t.Helper()
	i, err := order.NewItem(order.ItemParams{
		ID:          kernel.NewUUID(),
		MenuItemID:  kernel.NewUUID(),
		ProductName: "Pastel",
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	})
	require.NoError(t, err)
	return i
}

// readyOrder returns an order the restaurant has already marked READY and its new delivery.
func readyOrder(t *testing.T) (*order.Order, *delivery.Delivery) {
	t.Helper()
	o, err := order.NewOrder(order.NewOrderParams{
		ID:                kernel.NewUUID(),
		CustomerID:        kernel.NewUUID(),
		RestaurantID:      kernel.NewUUID(),
		DeliveryAddressID: kernel.NewUUID(),
		Payment:           order.CashPayment{},
		Items:             []order.Item{item(t, 1, 1000)},
		Subtotal:          1000,
		DeliveryFee:       200,
		TotalAmount:       1200,
	})
	require.NoError(t, err)

	restaurant := kernel.Actor{Role: kernel.RoleRestaurant, ID: kernel.NewUUID()}
	require.NoError(t, o.Transition(restaurant, order.Preparing, order.TransitionParams{DeliveryTimeMax: 40}))
	require.NoError(t, o.Transition(restaurant, order.Ready, order.TransitionParams{}))
	o.PullEvents()

	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), time.Time{})
	require.NoError(t, err)
	return o, d
}
