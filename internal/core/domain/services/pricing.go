package services

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// PricedLine is one priced line of an order. order.Item implements it.
type PricedLine interface {
	Quantity() int
	UnitPrice() int64
	TotalPrice() int64
}

var _ PricedLine = order.Item{}

// CalculateSubtotal sums the line totals.
func CalculateSubtotal[L PricedLine](lines []L) int64 {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.TotalPrice()
	}
	return subtotal
}

// CalculateTotal adds the delivery fee to the subtotal.
func CalculateTotal(subtotal, deliveryFee int64) int64 {
	return subtotal + deliveryFee
}

// ValidateItemsPricing reports whether every line has a positive quantity, a non-negative
// unit price and a total of exactly quantity * unit price.
func ValidateItemsPricing[L PricedLine](lines []L) bool {
	for _, l := range lines {
		if l.Quantity() <= 0 || l.UnitPrice() < 0 {
			return false
		}
		if l.TotalPrice() != int64(l.Quantity())*l.UnitPrice() {
			return false
		}
	}
	return true
}

// IsTotalCorrect reports whether total equals subtotal plus deliveryFee.
func IsTotalCorrect(subtotal, deliveryFee, total int64) bool {
	return subtotal+deliveryFee == total
}

// MeetsMinimumOrder reports whether total reaches the restaurant minimum.
func MeetsMinimumOrder(total, minimum int64) bool {
	return total >= minimum
}

// Quote is the price breakdown of an order.
type Quote struct {
	Subtotal    int64
	DeliveryFee int64
	Total       int64
}

// PriceOrder computes and checks the breakdown for items. A mismatch or a total below
// minimumOrder is a validation error; nothing is corrected.
func PriceOrder(items []order.Item, deliveryFee, minimumOrder int64) (Quote, error) {
	if !ValidateItemsPricing(items) {
		return Quote{}, errs.NewValueIsInvalidError("items pricing")
	}

	q := Quote{DeliveryFee: deliveryFee}
	q.Subtotal = CalculateSubtotal(items)
	q.Total = CalculateTotal(q.Subtotal, deliveryFee)

	if !IsTotalCorrect(q.Subtotal, q.DeliveryFee, q.Total) {
		return Quote{}, errs.NewValueIsInvalidError("totalAmount")
	}
	if !MeetsMinimumOrder(q.Total, minimumOrder) {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("minimum order is %d, got %d", minimumOrder, q.Total))
	}
	return q, nil
}
