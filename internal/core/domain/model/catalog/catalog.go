// Package catalog holds read models for data owned outside the order lifecycle:
// restaurants, menu items, customer addresses and stored payment methods.
// The core never writes them.
package catalog

import "fooddelivery/internal/core/domain/model/kernel"

// Restaurant is the read-only catalog view of a restaurant. Prices are in minor units.
type Restaurant struct {
	ID              kernel.UUID
	OwnerUserID     kernel.UUID
	Name            string
	DeliveryFee     int64
	MinimumOrder    int64
	DeliveryTimeMin int
	DeliveryTimeMax int
	Location        kernel.Location
	IsOpen          bool
}

// IsOwnedBy reports whether userID manages the restaurant.
func (r Restaurant) IsOwnedBy(userID kernel.UUID) bool {
	return r.OwnerUserID.IsEqual(userID)
}

// MenuItem is a dish the restaurant sells. Price is the current unit price.
type MenuItem struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Description  string
	ImageURL     string
	Price        int64
	IsAvailable  bool
}

// Address is a saved drop-off address of a customer.
type Address struct {
	ID       kernel.UUID
	UserID   kernel.UUID
	Street   string
	Location kernel.Location
}

// PaymentMethod is a card the customer stored with the payment provider.
type PaymentMethod struct {
	ID          kernel.UUID
	UserID      kernel.UUID
	ProviderRef string
	Brand       string
	Last4       string
}
