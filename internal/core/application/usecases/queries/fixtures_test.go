package queries_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, customerID, restaurantID kernel.UUID, payment order.Payment) *order.Order {
	t.Helper()
	item, err := order.NewItem(order.ItemParams{
		ID: kernel.NewUUID(), MenuItemID: kernel.NewUUID(), ProductName: "Burger", Quantity: 2, UnitPrice: 1800,
	})
	require.NoError(t, err)

	o, err := order.NewOrder(order.NewOrderParams{
		ID:                kernel.NewUUID(),
		CustomerID:        customerID,
		RestaurantID:      restaurantID,
		DeliveryAddressID: kernel.NewUUID(),
		Payment:           payment,
		Items:             []order.Item{item},
		Subtotal:          3600,
		DeliveryFee:       400,
		TotalAmount:       4000,
	})
	require.NoError(t, err)
	o.PullEvents()
	return o
}

func location(t *testing.T, lat, lon float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	return loc
}

func restaurantAt(id, ownerID kernel.UUID, loc kernel.Location) catalog.Restaurant {
	return catalog.Restaurant{ID: id, OwnerUserID: ownerID, Name: "Bistro", Location: loc, IsOpen: true}
}

// courierAt returns an AVAILABLE courier positioned at loc, or without a position when loc is nil.
func courierAt(t *testing.T, vehicle courier.VehicleType, loc *kernel.Location) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), kernel.NewUUID(), vehicle, 0)
	require.NoError(t, err)
	require.NoError(t, c.GoOnline())
	if loc != nil {
		require.NoError(t, c.MoveTo(*loc))
	}
	return c
}

func acceptedBy(t *testing.T, orderID kernel.UUID, c *courier.Courier) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), orderID, time.Time{})
	require.NoError(t, err)
	require.NoError(t, c.Occupy())
	require.NoError(t, d.Accept(c.ID(), time.Time{}))
	return d
}
