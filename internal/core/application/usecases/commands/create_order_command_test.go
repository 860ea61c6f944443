package commands_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateOrderParams() commands.CreateOrderParams {
	return commands.CreateOrderParams{
		OrderID:           kernel.NewUUID(),
		CustomerID:        kernel.NewUUID(),
		RestaurantID:      kernel.NewUUID(),
		DeliveryAddressID: kernel.NewUUID(),
		Lines:             []commands.CreateOrderLine{{MenuItemID: kernel.NewUUID(), Quantity: 1}},
		PaymentType:       order.PaymentCash,
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	methodID := kernel.NewUUID()
	change := int64(5000)

	tests := []struct {
		name    string
		mutate  func(p *commands.CreateOrderParams)
		wantErr error
	}{
		{name: "cash", mutate: func(*commands.CreateOrderParams) {}},
		{name: "cash with change", mutate: func(p *commands.CreateOrderParams) { p.ChangeFor = &change }},
		{name: "stored card", mutate: func(p *commands.CreateOrderParams) {
			p.PaymentType, p.PaymentMethodID = order.PaymentStoredCard, &methodID
		}},
		{name: "pix", mutate: func(p *commands.CreateOrderParams) { p.PaymentType = order.PaymentPix }},
		{name: "no items", wantErr: errs.ErrValueIsRequired, mutate: func(p *commands.CreateOrderParams) {
			p.Lines = nil
		}},
		{name: "zero quantity", wantErr: errs.ErrValueIsOutOfRange, mutate: func(p *commands.CreateOrderParams) {
			p.Lines[0].Quantity = 0
		}},
		{name: "missing customer", wantErr: errs.ErrValueIsRequired, mutate: func(p *commands.CreateOrderParams) {
			p.CustomerID = kernel.UUID{}
		}},
		{name: "stored card without method", wantErr: errs.ErrValueIsRequired, mutate: func(p *commands.CreateOrderParams) {
			p.PaymentType = order.PaymentStoredCard
		}},
		{name: "method id with pix", wantErr: errs.ErrValueIsInvalid, mutate: func(p *commands.CreateOrderParams) {
			p.PaymentType, p.PaymentMethodID = order.PaymentPix, &methodID
		}},
		{name: "change for card", wantErr: errs.ErrValueIsInvalid, mutate: func(p *commands.CreateOrderParams) {
			p.PaymentType, p.PaymentMethodID, p.ChangeFor = order.PaymentStoredCard, &methodID, &change
		}},
		{name: "no payment type", wantErr: errs.ErrValueIsRequired, mutate: func(p *commands.CreateOrderParams) {
			p.PaymentType = order.PaymentUnknown
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validCreateOrderParams()
			tt.mutate(&p)

			cmd, err := commands.NewCreateOrderCommand(p)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Error(t, cmd.Validate())
				return
			}
			require.NoError(t, err)
			require.NoError(t, cmd.Validate())
			assert.Equal(t, p.PaymentType, cmd.PaymentType())
			assert.Len(t, cmd.Lines(), 1)
		})
	}
}

func TestCreateOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestNewCreateOrderCommand_MissingIDsAreReportedInFieldOrder(t *testing.T) {
	p := validCreateOrderParams()
	p.OrderID, p.CustomerID, p.RestaurantID, p.DeliveryAddressID = kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, kernel.UUID{}

	want := errors.Join(
		errs.NewValueIsRequiredError("orderId"),
		errs.NewValueIsRequiredError("customerId"),
		errs.NewValueIsRequiredError("restaurantId"),
		errs.NewValueIsRequiredError("deliveryAddressId"),
	).Error()

	for range 5 {
		_, err := commands.NewCreateOrderCommand(p)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, want, err.Error())
	}
}
