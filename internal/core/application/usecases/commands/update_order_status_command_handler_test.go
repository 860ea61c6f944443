package commands_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type updateOrderStatusFixture struct {
	world
	uow     *MockUoW
	catalog *MockCatalogReader
	handler commands.UpdateOrderStatusCommandHandler
}

func newUpdateOrderStatusFixture() *updateOrderStatusFixture {
	f := &updateOrderStatusFixture{world: newWorld(), uow: newMockUoW(), catalog: new(MockCatalogReader)}
	f.handler = commands.NewUpdateOrderStatusCommandHandler(MockUoWFactory{uow: f.uow}, f.catalog)
	return f
}

func (f *updateOrderStatusFixture) expectRestaurant() {
	f.catalog.On("GetRestaurant", mock.Anything, f.restaurantID).Return(catalog.Restaurant{
		ID: f.restaurantID, OwnerUserID: f.ownerID, DeliveryTimeMax: 45, IsOpen: true,
	}, nil).Once()
}

func (f *updateOrderStatusFixture) command(
	t *testing.T, o *order.Order, actor kernel.Actor, to order.Status,
) commands.UpdateOrderStatusCommand {
	t.Helper()
	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), actor, to, "")
	require.NoError(t, err)
	return cmd
}

func TestUpdateOrderStatusCommandHandler_RestaurantAcceptsOrder(t *testing.T) {
	f := newUpdateOrderStatusFixture()
	o := f.orderIn(t, order.Pending)
	f.expectRestaurant()
	f.uow.expectCommitted()
	f.uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	f.uow.orders.On("UpdateStatus", mock.Anything, o, order.Pending).Return(nil).Once()

	before := time.Now().UTC()
	err := f.handler.Handle(t.Context(), f.command(t, o, f.restaurantActor(), order.Preparing))

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, o.Status())
	require.NotNil(t, o.EstimatedDeliveryTime())
	assert.WithinDuration(t, before.Add(45*time.Minute), *o.EstimatedDeliveryTime(), time.Minute)
	f.uow.assertAll(t)
}

func TestUpdateOrderStatusCommandHandler_ReadyCreatesDeliveryInSameTransaction(t *testing.T) {
	f := newUpdateOrderStatusFixture()
	o := f.orderIn(t, order.Preparing)
	f.expectRestaurant()

	var created *delivery.Delivery
	mock.InOrder(
		f.uow.On("Begin", mock.Anything).Return(nil).Once(),
		f.uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		f.uow.orders.On("UpdateStatus", mock.Anything, o, order.Preparing).Return(nil).Once(),
		f.uow.deliveries.On("GetByOrderID", mock.Anything, o.ID()).
			Return(nil, errs.NewObjectNotFoundError("delivery", o.ID())).Once(),
		f.uow.deliveries.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*delivery.Delivery) }).
			Return(nil).Once(),
		f.uow.On("Commit", mock.Anything).Return(nil).Once(),
		f.uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	err := f.handler.Handle(t.Context(), f.command(t, o, f.restaurantActor(), order.Ready))

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, delivery.Pending, created.Status())
	assert.Nil(t, created.CourierID())
	assert.True(t, created.OrderID().IsEqual(o.ID()))
	f.uow.assertAll(t)
}

func TestUpdateOrderStatusCommandHandler_ReadyOnPendingIsInvalidTransition(t *testing.T) {
	f := newUpdateOrderStatusFixture()
	o := f.orderIn(t, order.Pending)
	f.expectRestaurant()
	f.uow.expectRolledBack()
	f.uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

	err := f.handler.Handle(t.Context(), f.command(t, o, f.restaurantActor(), order.Ready))

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "PENDING")
	assert.Contains(t, err.Error(), "READY")
	f.uow.assertAll(t)
}

func TestUpdateOrderStatusCommandHandler_OtherRestaurantIsForbidden(t *testing.T) {
	f := newUpdateOrderStatusFixture()
	o := f.orderIn(t, order.Pending)
	f.expectRestaurant()
	f.uow.expectRolledBack()
	f.uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

	stranger := kernel.Actor{Role: kernel.RoleRestaurant, ID: kernel.NewUUID()}
	err := f.handler.Handle(t.Context(), f.command(t, o, stranger, order.Preparing))

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.Pending, o.Status())
}

func TestUpdateOrderStatusCommandHandler_RoleOutsideItsStatusesIsForbidden(t *testing.T) {
	f := newUpdateOrderStatusFixture()
	o := f.orderIn(t, order.Pending)
	f.uow.expectRolledBack()
	f.uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

	err := f.handler.Handle(t.Context(), f.command(t, o, f.customerActor(), order.Preparing))

	require.ErrorIs(t, err, errs.ErrForbidden)
	f.catalog.AssertNotCalled(t, "GetRestaurant", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_CustomerCancels(t *testing.T) {
	f := newUpdateOrderStatusFixture()
	o := f.orderIn(t, order.Pending)
	f.uow.expectCommitted()
	f.uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	f.uow.orders.On("UpdateStatus", mock.Anything, o, order.Pending).Return(nil).Once()

	err := f.handler.Handle(t.Context(), f.command(t, o, f.customerActor(), order.Cancelled))

	require.NoError(t, err)
	assert.Equal(t, "Cancelled by customer", o.CancellationReason())
}

func TestUpdateOrderStatusCommandHandler_CourierNotBoundIsForbidden(t *testing.T) {
	f := newUpdateOrderStatusFixture()
	o := f.orderIn(t, order.Ready)
	d, _ := acceptedDelivery(t, o)
	f.uow.expectRolledBack()
	f.uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	f.uow.deliveries.On("GetByOrderID", mock.Anything, o.ID()).Return(d, nil).Once()

	other := kernel.Actor{Role: kernel.RoleCourier, ID: kernel.NewUUID()}
	err := f.handler.Handle(t.Context(), f.command(t, o, other, order.Delivered))

	require.ErrorIs(t, err, errs.ErrForbidden)
	f.uow.assertAll(t)
}

func TestUpdateOrderStatusCommandHandler_CourierWithoutDeliveryIsForbidden(t *testing.T) {
	f := newUpdateOrderStatusFixture()
	o := f.orderIn(t, order.Preparing)
	f.uow.expectRolledBack()
	f.uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	f.uow.deliveries.On("GetByOrderID", mock.Anything, o.ID()).
		Return(nil, errs.NewObjectNotFoundError("delivery", o.ID())).Once()

	actor := kernel.Actor{Role: kernel.RoleCourier, ID: kernel.NewUUID()}
	err := f.handler.Handle(t.Context(), f.command(t, o, actor, order.OutForDelivery))

	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestUpdateOrderStatusCommandHandler_CourierPathMovesDeliveryToo(t *testing.T) {
	f := newUpdateOrderStatusFixture()
	o := f.orderIn(t, order.Ready)
	d, c := acceptedDelivery(t, o)
	actor := kernel.Actor{Role: kernel.RoleCourier, ID: c.ID()}

	f.uow.expectCommitted()
	f.uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	f.uow.deliveries.On("GetByOrderID", mock.Anything, o.ID()).Return(d, nil).Once()
	f.uow.couriers.On("Get", mock.Anything, c.ID()).Return(c, nil).Once()
	f.uow.deliveries.On("Update", mock.Anything, d, delivery.Accepted).Return(nil).Once()
	f.uow.orders.On("UpdateStatus", mock.Anything, o, order.Ready).Return(nil).Once()

	err := f.handler.Handle(t.Context(), f.command(t, o, actor, order.OutForDelivery))

	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, o.Status())
	assert.Equal(t, delivery.PickedUp, d.Status())
	assert.Equal(t, courier.Busy, c.Availability())
	f.uow.assertAll(t)
}

func TestNewUpdateOrderStatusCommand_Validation(t *testing.T) {
	actor := kernel.Actor{Role: kernel.RoleRestaurant, ID: kernel.NewUUID()}

	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), actor, order.Pending, "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), kernel.Actor{ID: kernel.NewUUID()}, order.Ready, "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewUpdateOrderStatusCommand(kernel.UUID{}, actor, order.Ready, "")
	require.Error(t, err)

	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), actor, order.Cancelled, "  out of dough ")
	require.NoError(t, err)
	assert.Equal(t, "out of dough", cmd.Reason())
}
