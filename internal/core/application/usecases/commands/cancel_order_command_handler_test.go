package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		status     order.Status
		foreign    bool
		reason     string
		wantErr    error
		wantReason string
	}{
		{name: "pending", status: order.Pending, wantReason: "Cancelled by customer"},
		{name: "preparing with reason", status: order.Preparing, reason: "changed my mind", wantReason: "changed my mind"},
		{name: "ready is too late", status: order.Ready, wantErr: errs.ErrInvalidTransition},
		{name: "someone else's order", status: order.Pending, foreign: true, wantErr: errs.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld()
			o := w.orderIn(t, tt.status)
			customerID := w.customerID
			if tt.foreign {
				customerID = kernel.NewUUID()
			}

			uow := newMockUoW()
			uow.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
			if tt.wantErr == nil {
				uow.expectCommitted()
				uow.orders.On("UpdateStatus", mock.Anything, o, tt.status).Return(nil).Once()
			} else {
				uow.expectRolledBack()
			}

			cmd, err := commands.NewCancelOrderCommand(o.ID(), customerID, tt.reason)
			require.NoError(t, err)

			err = commands.NewCancelOrderCommandHandler(MockOrderUoWFactory{uow: uow}).Handle(t.Context(), cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.status, o.Status())
			} else {
				require.NoError(t, err)
				assert.Equal(t, order.Cancelled, o.Status())
				assert.Equal(t, tt.wantReason, o.CancellationReason())
				assert.NotNil(t, o.CancelledAt())
			}
			uow.assertAll(t)
		})
	}
}
