package commands

import (
	"context"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// PixExpiresInMinutes is how long an issued PIX QR code stays payable.
const PixExpiresInMinutes = 5

// CreateOrderCommandHandler checks the request against the catalog, snapshots and prices
// the items, obtains the payment details and persists the order in PENDING.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogReader
	pix        ports.PixProvider
}

// NewCreateOrderCommandHandler creates the handler.
//
// Parameters:
//   - uowFactory: order-only units of work
//   - catalogReader: restaurants, menu items, addresses and saved payment methods
//   - pix: issues QR codes for PIX orders
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalogReader ports.CatalogReader,
	pix ports.PixProvider,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalogReader,
		pix:        pix,
	}
}

// Handle creates the order. The PIX charge is requested before the transaction opens;
// if the provider fails, nothing is persisted.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	restaurant, err := h.catalog.GetRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}
	if !restaurant.IsOpen {
		return errs.NewPreconditionFailedError("restaurant", "is not accepting orders")
	}

	address, err := h.catalog.GetAddress(ctx, cmd.DeliveryAddressID())
	if err != nil {
		return err
	}
	if !address.UserID.IsEqual(cmd.CustomerID()) {
		return errs.NewForbiddenError("customer", "deliver to another customer's address")
	}

	items, err := h.snapshotItems(ctx, restaurant, cmd.Lines())
	if err != nil {
		return err
	}

	quote, err := services.PriceOrder(items, restaurant.DeliveryFee, restaurant.MinimumOrder)
	if err != nil {
		return err
	}

	payment, err := h.payment(ctx, cmd, quote.Total)
	if err != nil {
		return err
	}

	o, err := order.NewOrder(order.NewOrderParams{
		ID:                cmd.OrderID(),
		CustomerID:        cmd.CustomerID(),
		RestaurantID:      restaurant.ID,
		DeliveryAddressID: address.ID,
		Payment:           payment,
		Items:             items,
		Subtotal:          quote.Subtotal,
		DeliveryFee:       quote.DeliveryFee,
		TotalAmount:       quote.Total,
		Notes:             cmd.Notes(),
		CreatedAt:         time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CreateOrderCommandHandler) snapshotItems(
	ctx context.Context,
	restaurant catalog.Restaurant,
	lines []CreateOrderLine,
) ([]order.Item, error) {
	ids := make([]kernel.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.MenuItemID)
	}

	menu, err := h.catalog.GetMenuItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[kernel.UUID]catalog.MenuItem, len(menu))
	for _, m := range menu {
		byID[m.ID] = m
	}

	items := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		m, ok := byID[l.MenuItemID]
		if !ok || !m.RestaurantID.IsEqual(restaurant.ID) {
			return nil, errs.NewObjectNotFoundError("menuItem", l.MenuItemID.String())
		}
		if !m.IsAvailable {
			return nil, errs.NewPreconditionFailedError("menuItem", m.Name+" is not available")
		}

		item, err := order.NewItem(order.ItemParams{
			ID:          kernel.NewUUID(),
			MenuItemID:  m.ID,
			ProductName: m.Name,
			Description: m.Description,
			ImageURL:    m.ImageURL,
			Quantity:    l.Quantity,
			UnitPrice:   m.Price,
			Notes:       l.Notes,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (h CreateOrderCommandHandler) payment(ctx context.Context, cmd CreateOrderCommand, total int64) (order.Payment, error) {
	switch cmd.PaymentType() {
	case order.PaymentStoredCard:
		method, err := h.catalog.GetPaymentMethod(ctx, *cmd.PaymentMethodID())
		if err != nil {
			return nil, err
		}
		if !method.UserID.IsEqual(cmd.CustomerID()) {
			return nil, errs.NewForbiddenError("customer", "pay with another customer's card")
		}
		return order.StoredCardPayment{PaymentMethodID: method.ID}, nil

	case order.PaymentPix:
		charge, err := h.pix.GenerateQrCode(ctx, total, cmd.OrderID(), PixExpiresInMinutes)
		if err != nil {
			return nil, fmt.Errorf("generate pix qr code: %w", err)
		}
		return order.PixPayment{
			Code:        charge.Code,
			QRCodeImage: charge.QRCodeImage,
			PixKey:      charge.PixKey,
			ExpiresAt:   charge.ExpiresAt,
		}, nil

	case order.PaymentCash:
		return order.CashPayment{ChangeFor: cmd.ChangeFor()}, nil

	case order.PaymentUnknown:
	}
	return nil, errs.NewValueIsInvalidError("paymentMethod")
}
