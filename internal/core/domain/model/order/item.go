package order

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("order item must be created via NewItem")

// Item is a snapshot of a menu item taken when the order is placed. It does not change
// when the menu does.
type Item struct {
	id          kernel.UUID
	menuItemID  kernel.UUID
	productName string
	description string
	imageURL    string
	quantity    int
	unitPrice   int64
	totalPrice  int64
	notes       string

	isConstructed bool
}

type ItemParams struct {
	ID          kernel.UUID
	MenuItemID  kernel.UUID
	ProductName string
	Description string
	ImageURL    string
	Quantity    int
	UnitPrice   int64
	Notes       string
}

// NewItem snapshots a menu item; the line total is quantity * unit price.
func NewItem(p ItemParams) (Item, error) {
	item := Item{
		description:   p.Description,
		imageURL:      p.ImageURL,
		notes:         p.Notes,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(p.ID),
		item.setMenuItemID(p.MenuItemID),
		item.setProductName(p.ProductName),
		item.setQuantity(p.Quantity),
		item.setUnitPrice(p.UnitPrice),
	); err != nil {
		return Item{}, err
	}

	item.totalPrice = int64(item.quantity) * item.unitPrice
	return item, nil
}

// RestoreItem rebuilds a persisted item. The stored total must still match quantity * unit price.
func RestoreItem(p ItemParams, totalPrice int64) (Item, error) {
	item, err := NewItem(p)
	if err != nil {
		return Item{}, err
	}
	if item.totalPrice != totalPrice {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("totalPrice",
			fmt.Errorf("%d != %d * %d", totalPrice, item.quantity, item.unitPrice))
	}
	return item, nil
}

func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i Item) ID() kernel.UUID         { return i.id }
func (i Item) MenuItemID() kernel.UUID { return i.menuItemID }
func (i Item) ProductName() string     { return i.productName }
func (i Item) Description() string     { return i.description }
func (i Item) ImageURL() string        { return i.imageURL }
func (i Item) Quantity() int           { return i.quantity }
func (i Item) UnitPrice() int64        { return i.unitPrice }
func (i Item) TotalPrice() int64       { return i.totalPrice }
func (i Item) Notes() string           { return i.notes }

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menuItemId", err)
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%d is negative", price))
	}
	i.unitPrice = price
	return nil
}
