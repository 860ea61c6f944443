package pgtest

import (
	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// Catalog is a minimal seeded catalog: one open restaurant with two menu items, a customer
// with an address and a stored card.
type Catalog struct {
	RestaurantID    kernel.UUID
	OwnerUserID     kernel.UUID
	CustomerID      kernel.UUID
	AddressID       kernel.UUID
	PaymentMethodID kernel.UUID
	PizzaID         kernel.UUID
	SodaID          kernel.UUID
}

// SeedCatalog inserts the fixture catalog. The restaurant charges a 500 delivery fee and
// sells pizza at 2500 and soda at 1500.
func SeedCatalog(db *gorm.DB) (Catalog, error) {
	c := Catalog{
		RestaurantID:    kernel.NewUUID(),
		OwnerUserID:     kernel.NewUUID(),
		CustomerID:      kernel.NewUUID(),
		AddressID:       kernel.NewUUID(),
		PaymentMethodID: kernel.NewUUID(),
		PizzaID:         kernel.NewUUID(),
		SodaID:          kernel.NewUUID(),
	}

	rows := []any{
		&catalogrepo.RestaurantDTO{
			ID:              c.RestaurantID.Bytes(),
			OwnerUserID:     c.OwnerUserID.Bytes(),
			Name:            "Cantina",
			DeliveryFee:     500,
			MinimumOrder:    1000,
			DeliveryTimeMin: 30,
			DeliveryTimeMax: 45,
			Latitude:        -23.5505,
			Longitude:       -46.6333,
			IsOpen:          true,
		},
		&catalogrepo.MenuItemDTO{
			ID: c.PizzaID.Bytes(), RestaurantID: c.RestaurantID.Bytes(),
			Name: "Pizza", Price: 2500, IsAvailable: true,
		},
		&catalogrepo.MenuItemDTO{
			ID: c.SodaID.Bytes(), RestaurantID: c.RestaurantID.Bytes(),
			Name: "Soda", Price: 1500, IsAvailable: true,
		},
		&catalogrepo.AddressDTO{
			ID: c.AddressID.Bytes(), UserID: c.CustomerID.Bytes(),
			Street: "Av. Paulista, 1000", Latitude: -23.5614, Longitude: -46.6559,
		},
		&catalogrepo.PaymentMethodDTO{
			ID: c.PaymentMethodID.Bytes(), UserID: c.CustomerID.Bytes(),
			ProviderRef: "pm_test", Brand: "visa", Last4: "4242",
		},
	}

	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			return Catalog{}, err
		}
	}
	return c, nil
}
