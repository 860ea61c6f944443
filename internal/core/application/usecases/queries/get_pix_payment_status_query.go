package queries

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetPixPaymentStatusQueryIsNotConstructed = errors.New(
	"GetPixPaymentStatusQuery must be created via NewGetPixPaymentStatusQuery constructor",
)

// GetPixPaymentStatusQuery is a customer polling the PIX charge of their order.
type GetPixPaymentStatusQuery struct {
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPixPaymentStatusQuery(orderID, customerID kernel.UUID) (GetPixPaymentStatusQuery, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return GetPixPaymentStatusQuery{}, err
	}
	return GetPixPaymentStatusQuery{
		orderID:    orderID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetPixPaymentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetPixPaymentStatusQueryIsNotConstructed)
}

// PixPaymentStatus is the provider's answer for the order's QR code.
type PixPaymentStatus struct {
	OrderID kernel.UUID
	Code    string
	Status  ports.PixPaymentStatus
}

// GetPixPaymentStatusQueryHandler asks the PIX provider whether the customer paid the QR
// code issued for an order.
type GetPixPaymentStatusQueryHandler struct {
	orders ports.OrderRepository
	pix    ports.PixProvider
}

func NewGetPixPaymentStatusQueryHandler(orders ports.OrderRepository, pix ports.PixProvider) GetPixPaymentStatusQueryHandler {
	return GetPixPaymentStatusQueryHandler{orders: orders, pix: pix}
}

// Handle asks the provider.
//
// Returns:
//   - ErrForbidden if the order belongs to another customer
//   - ErrPreconditionFailed if the order is not paid with PIX
//   - the wrapped provider error when the provider cannot be reached
func (h GetPixPaymentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetPixPaymentStatusQuery,
) (PixPaymentStatus, error) {
	if err := query.Validate(); err != nil {
		return PixPaymentStatus{}, err
	}

	o, err := h.orders.Get(ctx, query.orderID)
	if err != nil {
		return PixPaymentStatus{}, err
	}
	if !o.IsOwnedBy(query.customerID) {
		return PixPaymentStatus{}, errs.NewForbiddenError("customer", "view payment of order "+o.ID().String())
	}

	pix, ok := o.Payment().(order.PixPayment)
	if !ok {
		return PixPaymentStatus{}, errs.NewPreconditionFailedError("paymentMethod",
			"order "+o.ID().String()+" is not paid with PIX")
	}

	status, err := h.pix.CheckPaymentStatus(ctx, pix.Code)
	if err != nil {
		return PixPaymentStatus{}, fmt.Errorf("check pix payment status: %w", err)
	}

	return PixPaymentStatus{OrderID: o.ID(), Code: pix.Code, Status: status}, nil
}
