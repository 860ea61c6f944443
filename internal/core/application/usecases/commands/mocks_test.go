package commands_test

import (
	"context"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	return m.Called(ctx, o, expected).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByCustomer(
	_ context.Context, _ kernel.UUID, _ ports.Page,
) (ports.PagedResult[*order.Order], error) {
	panic("not used by commands")
}

func (m *MockOrderRepository) ListByRestaurant(
	_ context.Context, _ kernel.UUID, _ *order.Status, _ ports.Page,
) (ports.PagedResult[*order.Order], error) {
	panic("not used by commands")
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery, expected delivery.Status) error {
	return m.Called(ctx, d, expected).Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) ListPending(
	_ context.Context, _ ports.Page,
) (ports.PagedResult[*delivery.Delivery], error) {
	panic("not used by commands")
}

func (m *MockDeliveryRepository) CountPendingSince(_ context.Context, _ time.Time) (int64, error) {
	panic("not used by commands")
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCourierRepository) UpdateAvailability(
	ctx context.Context, c *courier.Courier, expected courier.Availability,
) error {
	return m.Called(ctx, c, expected).Error(0)
}

func (m *MockCourierRepository) UpdateLocation(ctx context.Context, c *courier.Courier) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*courier.Courier)
	return c, args.Error(1)
}

func (m *MockCourierRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(*courier.Courier)
	return c, args.Error(1)
}

func (m *MockCourierRepository) ListAvailableWithLocation(_ context.Context) ([]*courier.Courier, error) {
	panic("not used by commands")
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) ListByUser(
	_ context.Context, _ kernel.UUID, _ ports.Page,
) (ports.PagedResult[*notification.Notification], error) {
	panic("not used by commands")
}

func (m *MockNotificationRepository) MarkAllAsRead(ctx context.Context, userID kernel.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(_ context.Context, _ kernel.UUID) (int64, error) {
	panic("not used by commands")
}

// MockUoW serves every narrowed unit of work interface.
type MockUoW struct {
	mock.Mock
	orders     *MockOrderRepository
	deliveries *MockDeliveryRepository
	couriers   *MockCourierRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		orders:     new(MockOrderRepository),
		deliveries: new(MockDeliveryRepository),
		couriers:   new(MockCourierRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository       { return m.orders }
func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository { return m.deliveries }
func (m *MockUoW) CourierRepository() ports.CourierRepository   { return m.couriers }

// expectCommitted registers the Begin, Commit, deferred Rollback sequence of a handler
// that succeeds.
func (m *MockUoW) expectCommitted() {
	m.On("Begin", mock.Anything).Return(nil).Once()
	m.On("Commit", mock.Anything).Return(nil).Once()
	m.On("Rollback", mock.Anything).Return(nil).Maybe()
}

// expectRolledBack registers a Begin followed by the deferred Rollback only.
func (m *MockUoW) expectRolledBack() {
	m.On("Begin", mock.Anything).Return(nil).Once()
	m.On("Rollback", mock.Anything).Return(nil).Once()
}

func (m *MockUoW) assertAll(t mock.TestingT) {
	m.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.deliveries.AssertExpectations(t)
	m.couriers.AssertExpectations(t)
}

type MockUoWFactory struct{ uow *MockUoW }

func (f MockUoWFactory) Create() commands.UoW { return f.uow }

type MockOrderUoWFactory struct{ uow *MockUoW }

func (f MockOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

type MockCourierUoWFactory struct{ uow *MockUoW }

func (f MockCourierUoWFactory) Create() commands.CourierUoW { return f.uow }

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) GetRestaurant(ctx context.Context, id kernel.UUID) (catalog.Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Restaurant), args.Error(1)
}

func (m *MockCatalogReader) GetMenuItems(ctx context.Context, ids []kernel.UUID) ([]catalog.MenuItem, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]catalog.MenuItem)
	return items, args.Error(1)
}

func (m *MockCatalogReader) GetAddress(ctx context.Context, id kernel.UUID) (catalog.Address, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Address), args.Error(1)
}

func (m *MockCatalogReader) GetPaymentMethod(ctx context.Context, id kernel.UUID) (catalog.PaymentMethod, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.PaymentMethod), args.Error(1)
}

type MockPixProvider struct{ mock.Mock }

func (m *MockPixProvider) GenerateQrCode(
	ctx context.Context, amount int64, orderID kernel.UUID, expiresInMinutes int,
) (ports.PixCharge, error) {
	args := m.Called(ctx, amount, orderID, expiresInMinutes)
	return args.Get(0).(ports.PixCharge), args.Error(1)
}

func (m *MockPixProvider) CheckPaymentStatus(ctx context.Context, code string) (ports.PixPaymentStatus, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(ports.PixPaymentStatus), args.Error(1)
}
