package commands_test

import (
	"errors"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type createOrderFixture struct {
	customerID kernel.UUID
	restaurant catalog.Restaurant
	address    catalog.Address
	pizza      catalog.MenuItem
	soda       catalog.MenuItem
	catalog    *MockCatalogReader
	pix        *MockPixProvider
	uow        *MockUoW
	handler    commands.CreateOrderCommandHandler
}

func newCreateOrderFixture() *createOrderFixture {
	f := &createOrderFixture{customerID: kernel.NewUUID()}
	f.restaurant = catalog.Restaurant{
		ID: kernel.NewUUID(), OwnerUserID: kernel.NewUUID(), Name: "Cantina",
		DeliveryFee: 500, MinimumOrder: 1000, DeliveryTimeMin: 30, DeliveryTimeMax: 45, IsOpen: true,
	}
	f.address = catalog.Address{ID: kernel.NewUUID(), UserID: f.customerID, Street: "Main St"}
	f.pizza = catalog.MenuItem{
		ID: kernel.NewUUID(), RestaurantID: f.restaurant.ID, Name: "Pizza", Price: 2500, IsAvailable: true,
	}
	f.soda = catalog.MenuItem{
		ID: kernel.NewUUID(), RestaurantID: f.restaurant.ID, Name: "Soda", Price: 1500, IsAvailable: true,
	}

	f.catalog = new(MockCatalogReader)
	f.pix = new(MockPixProvider)
	f.uow = newMockUoW()
	f.handler = commands.NewCreateOrderCommandHandler(MockOrderUoWFactory{uow: f.uow}, f.catalog, f.pix)
	return f
}

func (f *createOrderFixture) expectCatalog() {
	f.catalog.On("GetRestaurant", mock.Anything, f.restaurant.ID).Return(f.restaurant, nil).Maybe()
	f.catalog.On("GetAddress", mock.Anything, f.address.ID).Return(f.address, nil).Maybe()
	f.catalog.On("GetMenuItems", mock.Anything, mock.Anything).
		Return([]catalog.MenuItem{f.pizza, f.soda}, nil).Maybe()
}

func (f *createOrderFixture) command(t *testing.T, mutate func(p *commands.CreateOrderParams)) commands.CreateOrderCommand {
	t.Helper()
	p := commands.CreateOrderParams{
		OrderID:           kernel.NewUUID(),
		CustomerID:        f.customerID,
		RestaurantID:      f.restaurant.ID,
		DeliveryAddressID: f.address.ID,
		Lines: []commands.CreateOrderLine{
			{MenuItemID: f.pizza.ID, Quantity: 2},
			{MenuItemID: f.soda.ID, Quantity: 1, Notes: "no ice"},
		},
		PaymentType: order.PaymentCash,
	}
	if mutate != nil {
		mutate(&p)
	}
	cmd, err := commands.NewCreateOrderCommand(p)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_PricesAndPersistsOrder(t *testing.T) {
	f := newCreateOrderFixture()
	f.expectCatalog()

	var saved *order.Order
	mock.InOrder(
		f.uow.On("Begin", mock.Anything).Return(nil).Once(),
		f.uow.orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		f.uow.On("Commit", mock.Anything).Return(nil).Once(),
		f.uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	err := f.handler.Handle(t.Context(), f.command(t, nil))

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, int64(6500), saved.Subtotal())
	assert.Equal(t, int64(500), saved.DeliveryFee())
	assert.Equal(t, int64(7000), saved.TotalAmount())
	assert.Equal(t, order.Pending, saved.Status())
	items := saved.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Pizza", items[0].ProductName())
	assert.Equal(t, int64(5000), items[0].TotalPrice())
	assert.Equal(t, "no ice", items[1].Notes())
	f.uow.assertAll(t)
	f.pix.AssertNotCalled(t, "GenerateQrCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_PixChargeIsStoredOnOrder(t *testing.T) {
	f := newCreateOrderFixture()
	f.expectCatalog()
	cmd := f.command(t, func(p *commands.CreateOrderParams) { p.PaymentType = order.PaymentPix })

	charge := ports.PixCharge{
		Code: "000201pix", QRCodeImage: "iVBOR", PixKey: "pix@example.com", ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	f.pix.On("GenerateQrCode", mock.Anything, int64(7000), cmd.OrderID(), commands.PixExpiresInMinutes).
		Return(charge, nil).Once()

	var saved *order.Order
	f.uow.expectCommitted()
	f.uow.orders.On("Add", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*order.Order) }).
		Return(nil).Once()

	require.NoError(t, f.handler.Handle(t.Context(), cmd))

	pix, ok := saved.Payment().(order.PixPayment)
	require.True(t, ok)
	assert.Equal(t, charge.Code, pix.Code)
	assert.Equal(t, charge.QRCodeImage, pix.QRCodeImage)
	f.pix.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PixFailureAbortsBeforeTransaction(t *testing.T) {
	f := newCreateOrderFixture()
	f.expectCatalog()
	cmd := f.command(t, func(p *commands.CreateOrderParams) { p.PaymentType = order.PaymentPix })
	f.pix.On("GenerateQrCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(ports.PixCharge{}, errors.New("provider down")).Once()

	err := f.handler.Handle(t.Context(), cmd)

	require.ErrorContains(t, err, "provider down")
	f.uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_StoredCard(t *testing.T) {
	t.Run("own card", func(t *testing.T) {
		f := newCreateOrderFixture()
		f.expectCatalog()
		method := catalog.PaymentMethod{ID: kernel.NewUUID(), UserID: f.customerID}
		f.catalog.On("GetPaymentMethod", mock.Anything, method.ID).Return(method, nil).Once()
		f.uow.expectCommitted()
		f.uow.orders.On("Add", mock.Anything, mock.Anything).Return(nil).Once()

		cmd := f.command(t, func(p *commands.CreateOrderParams) {
			p.PaymentType, p.PaymentMethodID = order.PaymentStoredCard, &method.ID
		})

		require.NoError(t, f.handler.Handle(t.Context(), cmd))
	})

	t.Run("another customer's card", func(t *testing.T) {
		f := newCreateOrderFixture()
		f.expectCatalog()
		method := catalog.PaymentMethod{ID: kernel.NewUUID(), UserID: kernel.NewUUID()}
		f.catalog.On("GetPaymentMethod", mock.Anything, method.ID).Return(method, nil).Once()

		cmd := f.command(t, func(p *commands.CreateOrderParams) {
			p.PaymentType, p.PaymentMethodID = order.PaymentStoredCard, &method.ID
		})

		require.ErrorIs(t, f.handler.Handle(t.Context(), cmd), errs.ErrForbidden)
	})

	t.Run("unknown card", func(t *testing.T) {
		f := newCreateOrderFixture()
		f.expectCatalog()
		id := kernel.NewUUID()
		f.catalog.On("GetPaymentMethod", mock.Anything, id).
			Return(catalog.PaymentMethod{}, errs.NewObjectNotFoundError("paymentMethod", id)).Once()

		cmd := f.command(t, func(p *commands.CreateOrderParams) {
			p.PaymentType, p.PaymentMethodID = order.PaymentStoredCard, &id
		})

		require.ErrorIs(t, f.handler.Handle(t.Context(), cmd), errs.ErrObjectNotFound)
	})
}

func TestCreateOrderCommandHandler_Handle_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		arrange func(f *createOrderFixture)
		mutate  func(f *createOrderFixture, p *commands.CreateOrderParams)
		wantErr error
	}{
		{
			name:    "restaurant closed",
			arrange: func(f *createOrderFixture) { f.restaurant.IsOpen = false },
			wantErr: errs.ErrPreconditionFailed,
		},
		{
			name:    "address of another customer",
			arrange: func(f *createOrderFixture) { f.address.UserID = kernel.NewUUID() },
			wantErr: errs.ErrForbidden,
		},
		{
			name:    "menu item of another restaurant",
			arrange: func(f *createOrderFixture) { f.soda.RestaurantID = kernel.NewUUID() },
			wantErr: errs.ErrObjectNotFound,
		},
		{
			name:    "menu item unavailable",
			arrange: func(f *createOrderFixture) { f.pizza.IsAvailable = false },
			wantErr: errs.ErrPreconditionFailed,
		},
		{
			name: "unknown menu item",
			mutate: func(_ *createOrderFixture, p *commands.CreateOrderParams) {
				p.Lines = append(p.Lines, commands.CreateOrderLine{MenuItemID: kernel.NewUUID(), Quantity: 1})
			},
			wantErr: errs.ErrObjectNotFound,
		},
		{
			name:    "below minimum order",
			arrange: func(f *createOrderFixture) { f.restaurant.MinimumOrder = 100000 },
			wantErr: errs.ErrValueIsInvalid,
		},
		{
			name: "change for less than total",
			mutate: func(_ *createOrderFixture, p *commands.CreateOrderParams) {
				change := int64(5000)
				p.ChangeFor = &change
			},
			wantErr: errs.ErrValueIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCreateOrderFixture()
			if tt.arrange != nil {
				tt.arrange(f)
			}
			f.expectCatalog()
			cmd := f.command(t, func(p *commands.CreateOrderParams) {
				if tt.mutate != nil {
					tt.mutate(f, p)
				}
			})

			err := f.handler.Handle(t.Context(), cmd)

			require.ErrorIs(t, err, tt.wantErr)
			f.uow.AssertNotCalled(t, "Begin", mock.Anything)
		})
	}
}

func TestCreateOrderCommandHandler_Handle_AddErrorRollsBack(t *testing.T) {
	f := newCreateOrderFixture()
	f.expectCatalog()
	f.uow.expectRolledBack()
	f.uow.orders.On("Add", mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once()

	err := f.handler.Handle(t.Context(), f.command(t, nil))

	require.ErrorContains(t, err, "insert failed")
	f.uow.assertAll(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	f := newCreateOrderFixture()
	err := f.handler.Handle(t.Context(), commands.CreateOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
