package queries_test

import (
	"context"
	"time"

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

func (m *MockOrderRepository) Add(_ context.Context, _ *order.Order) error {
	panic("queries never write")
}

func (m *MockOrderRepository) UpdateStatus(_ context.Context, _ *order.Order, _ order.Status) error {
	panic("queries never write")
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByCustomer(
	ctx context.Context, customerID kernel.UUID, page ports.Page,
) (ports.PagedResult[*order.Order], error) {
	args := m.Called(ctx, customerID, page)
	return args.Get(0).(ports.PagedResult[*order.Order]), args.Error(1)
}

func (m *MockOrderRepository) ListByRestaurant(
	ctx context.Context, restaurantID kernel.UUID, status *order.Status, page ports.Page,
) (ports.PagedResult[*order.Order], error) {
	args := m.Called(ctx, restaurantID, status, page)
	return args.Get(0).(ports.PagedResult[*order.Order]), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(_ context.Context, _ *delivery.Delivery) error {
	panic("queries never write")
}

func (m *MockDeliveryRepository) Update(_ context.Context, _ *delivery.Delivery, _ delivery.Status) error {
	panic("queries never write")
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
	panic("the board is read through SQL")
}

func (m *MockDeliveryRepository) CountPendingSince(_ context.Context, _ time.Time) (int64, error) {
	panic("not used by queries")
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(_ context.Context, _ *courier.Courier) error {
	panic("queries never write")
}

func (m *MockCourierRepository) UpdateAvailability(_ context.Context, _ *courier.Courier, _ courier.Availability) error {
	panic("queries never write")
}

func (m *MockCourierRepository) UpdateLocation(_ context.Context, _ *courier.Courier) error {
	panic("queries never write")
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

func (m *MockCourierRepository) ListAvailableWithLocation(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	couriers, _ := args.Get(0).([]*courier.Courier)
	return couriers, args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(_ context.Context, _ *notification.Notification) error {
	panic("queries never write")
}

func (m *MockNotificationRepository) ListByUser(
	ctx context.Context, userID kernel.UUID, page ports.Page,
) (ports.PagedResult[*notification.Notification], error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).(ports.PagedResult[*notification.Notification]), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllAsRead(_ context.Context, _ kernel.UUID) (int64, error) {
	panic("queries never write")
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID kernel.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) GetRestaurant(ctx context.Context, id kernel.UUID) (catalog.Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Restaurant), args.Error(1)
}

func (m *MockCatalogReader) GetMenuItems(_ context.Context, _ []kernel.UUID) ([]catalog.MenuItem, error) {
	panic("not used by queries")
}

func (m *MockCatalogReader) GetAddress(ctx context.Context, id kernel.UUID) (catalog.Address, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Address), args.Error(1)
}

func (m *MockCatalogReader) GetPaymentMethod(_ context.Context, _ kernel.UUID) (catalog.PaymentMethod, error) {
	panic("not used by queries")
}

type MockPixProvider struct{ mock.Mock }

func (m *MockPixProvider) GenerateQrCode(
	_ context.Context, _ int64, _ kernel.UUID, _ int,
) (ports.PixCharge, error) {
	panic("queries never issue charges")
}

func (m *MockPixProvider) CheckPaymentStatus(ctx context.Context, code string) (ports.PixPaymentStatus, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(ports.PixPaymentStatus), args.Error(1)
}
