package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderLine is one requested menu item. Prices are never taken from the caller.
type CreateOrderLine struct {
	MenuItemID kernel.UUID
	Quantity   int
	Notes      string
}

// CreateOrderParams is the raw input of NewCreateOrderCommand.
type CreateOrderParams struct {
	OrderID           kernel.UUID
	CustomerID        kernel.UUID
	RestaurantID      kernel.UUID
	DeliveryAddressID kernel.UUID
	Lines             []CreateOrderLine
	PaymentType       order.PaymentType
	PaymentMethodID   *kernel.UUID
	ChangeFor         *int64
	Notes             string
}

// CreateOrderCommand places a new order for a customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(CreateOrderParams{
//	    OrderID:           kernel.NewUUID(),
//	    CustomerID:        customerID,
//	    RestaurantID:      restaurantID,
//	    DeliveryAddressID: addressID,
//	    Lines:             []CreateOrderLine{{MenuItemID: pizzaID, Quantity: 2}},
//	    PaymentType:       order.PaymentCash,
//	})
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	customerID        kernel.UUID
	restaurantID      kernel.UUID
	deliveryAddressID kernel.UUID
	lines             []CreateOrderLine
	paymentType       order.PaymentType
	paymentMethodID   *kernel.UUID
	changeFor         *int64
	notes             string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the shape of the request. A payment method id must be
// given for STORED_CARD and only for STORED_CARD; changeFor is only accepted for CASH.
func NewCreateOrderCommand(p CreateOrderParams) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: strings.TrimSpace(p.Notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(p.OrderID, p.CustomerID, p.RestaurantID, p.DeliveryAddressID),
		cmd.setLines(p.Lines),
		cmd.setPayment(p.PaymentType, p.PaymentMethodID, p.ChangeFor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate reports whether the command was built by its constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID           { return c.orderID }
func (c CreateOrderCommand) CustomerID() kernel.UUID        { return c.customerID }
func (c CreateOrderCommand) RestaurantID() kernel.UUID      { return c.restaurantID }
func (c CreateOrderCommand) DeliveryAddressID() kernel.UUID { return c.deliveryAddressID }
func (c CreateOrderCommand) PaymentType() order.PaymentType { return c.paymentType }
func (c CreateOrderCommand) PaymentMethodID() *kernel.UUID  { return c.paymentMethodID }
func (c CreateOrderCommand) ChangeFor() *int64              { return c.changeFor }
func (c CreateOrderCommand) Notes() string                  { return c.notes }

// Lines returns a copy of the requested lines.
func (c CreateOrderCommand) Lines() []CreateOrderLine {
	lines := make([]CreateOrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setIDs(orderID, customerID, restaurantID, addressID kernel.UUID) error {
	var errList []error
	for _, field := range []struct {
		name string
		id   kernel.UUID
	}{
		{"orderId", orderID},
		{"customerId", customerID},
		{"restaurantId", restaurantID},
		{"deliveryAddressId", addressID},
	} {
		if field.id.IsZero() {
			errList = append(errList, errs.NewValueIsRequiredError(field.name))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.orderID, c.customerID, c.restaurantID, c.deliveryAddressID = orderID, customerID, restaurantID, addressID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []CreateOrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, l := range lines {
		if l.MenuItemID.IsZero() {
			return errs.NewValueIsRequiredError("menuItemId")
		}
		if l.Quantity <= 0 {
			return errs.NewValueIsOutOfRangeError("quantity", l.Quantity, 1, nil)
		}
	}

	c.lines = make([]CreateOrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *CreateOrderCommand) setPayment(t order.PaymentType, methodID *kernel.UUID, changeFor *int64) error {
	switch t {
	case order.PaymentStoredCard:
		if methodID == nil || methodID.IsZero() {
			return errs.NewValueIsRequiredError("paymentMethodId")
		}
	case order.PaymentPix, order.PaymentCash:
		if methodID != nil {
			return errs.NewValueIsInvalidError("paymentMethodId is only accepted for STORED_CARD")
		}
	case order.PaymentUnknown:
		return errs.NewValueIsRequiredError("paymentMethod")
	default:
		return errs.NewValueIsInvalidError("paymentMethod")
	}

	if changeFor != nil && t != order.PaymentCash {
		return errs.NewValueIsInvalidError("changeFor is only accepted for CASH")
	}

	c.paymentType, c.paymentMethodID, c.changeFor = t, methodID, changeFor
	return nil
}
