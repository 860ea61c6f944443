package commands_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

type world struct {
	customerID   kernel.UUID
	ownerID      kernel.UUID
	restaurantID kernel.UUID
}

func newWorld() world {
	return world{customerID: kernel.NewUUID(), ownerID: kernel.NewUUID(), restaurantID: kernel.NewUUID()}
}

func (w world) restaurantActor() kernel.Actor {
	return kernel.Actor{Role: kernel.RoleRestaurant, ID: w.ownerID}
}

func (w world) customerActor() kernel.Actor {
	return kernel.Actor{Role: kernel.RoleCustomer, ID: w.customerID}
}

// orderIn builds an order and walks it through the restaurant-driven statuses up to status.
func (w world) orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem(order.ItemParams{
		ID: kernel.NewUUID(), MenuItemID: kernel.NewUUID(), ProductName: "Pizza", Quantity: 1, UnitPrice: 2500,
	})
	require.NoError(t, err)

	o, err := order.NewOrder(order.NewOrderParams{
		ID:                kernel.NewUUID(),
		CustomerID:        w.customerID,
		RestaurantID:      w.restaurantID,
		DeliveryAddressID: kernel.NewUUID(),
		Payment:           order.CashPayment{},
		Items:             []order.Item{item},
		Subtotal:          2500,
		DeliveryFee:       500,
		TotalAmount:       3000,
	})
	require.NoError(t, err)

	for _, next := range []order.Status{order.Preparing, order.Ready} {
		if o.Status() == status {
			break
		}
		require.NoError(t, o.Transition(w.restaurantActor(), next, order.TransitionParams{DeliveryTimeMax: 45}))
	}
	require.Equal(t, status, o.Status())
	o.PullEvents()
	return o
}

func onlineCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), kernel.NewUUID(), courier.Motorcycle, 0)
	require.NoError(t, err)
	require.NoError(t, c.GoOnline())
	return c
}

func pendingDelivery(t *testing.T, orderID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), orderID, time.Time{})
	require.NoError(t, err)
	return d
}

// acceptedDelivery returns a delivery of o accepted by a courier that is now BUSY.
func acceptedDelivery(t *testing.T, o *order.Order) (*delivery.Delivery, *courier.Courier) {
	t.Helper()
	c := onlineCourier(t)
	d := pendingDelivery(t, o.ID())
	require.NoError(t, c.Occupy())
	require.NoError(t, d.Accept(c.ID(), time.Time{}))
	return d, c
}
