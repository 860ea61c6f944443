package catalogrepo

import (
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RestaurantDTO maps the restaurants table. The catalog is read-only here.
type RestaurantDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerUserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"not null"`
	DeliveryFee     int64     `gorm:"not null"`
	MinimumOrder    int64     `gorm:"not null;default:0"`
	DeliveryTimeMin int       `gorm:"not null"`
	DeliveryTimeMax int       `gorm:"not null"`
	Latitude        float64   `gorm:"not null"`
	Longitude       float64   `gorm:"not null"`
	IsOpen          bool      `gorm:"not null"`
}

func (RestaurantDTO) TableName() string { return "restaurants" }

// MenuItemDTO maps the menu_items table.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"not null"`
	Description  string    `gorm:"type:text"`
	ImageURL     string
	Price        int64 `gorm:"not null"`
	IsAvailable  bool  `gorm:"not null"`
}

func (MenuItemDTO) TableName() string { return "menu_items" }

// AddressDTO maps the addresses table.
type AddressDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Street    string    `gorm:"not null"`
	Latitude  float64   `gorm:"not null"`
	Longitude float64   `gorm:"not null"`
}

func (AddressDTO) TableName() string { return "addresses" }

// PaymentMethodDTO maps the payment_methods table.
type PaymentMethodDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ProviderRef string    `gorm:"not null"`
	Brand       string
	Last4       string `gorm:"column:last4;type:varchar(4)"`
}

func (PaymentMethodDTO) TableName() string { return "payment_methods" }

func (dto RestaurantDTO) toDomain() (catalog.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Restaurant{}, err
	}
	owner, err := kernel.UUIDFromBytes(dto.OwnerUserID[:])
	if err != nil {
		return catalog.Restaurant{}, err
	}
	loc, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return catalog.Restaurant{}, err
	}

	return catalog.Restaurant{
		ID:              id,
		OwnerUserID:     owner,
		Name:            dto.Name,
		DeliveryFee:     dto.DeliveryFee,
		MinimumOrder:    dto.MinimumOrder,
		DeliveryTimeMin: dto.DeliveryTimeMin,
		DeliveryTimeMax: dto.DeliveryTimeMax,
		Location:        loc,
		IsOpen:          dto.IsOpen,
	}, nil
}

func (dto MenuItemDTO) toDomain() (catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.MenuItem{}, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return catalog.MenuItem{}, err
	}

	return catalog.MenuItem{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         dto.Name,
		Description:  dto.Description,
		ImageURL:     dto.ImageURL,
		Price:        dto.Price,
		IsAvailable:  dto.IsAvailable,
	}, nil
}

func (dto AddressDTO) toDomain() (catalog.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Address{}, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return catalog.Address{}, err
	}
	loc, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return catalog.Address{}, err
	}

	return catalog.Address{ID: id, UserID: userID, Street: dto.Street, Location: loc}, nil
}

func (dto PaymentMethodDTO) toDomain() (catalog.PaymentMethod, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.PaymentMethod{}, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return catalog.PaymentMethod{}, err
	}

	return catalog.PaymentMethod{
		ID:          id,
		UserID:      userID,
		ProviderRef: dto.ProviderRef,
		Brand:       dto.Brand,
		Last4:       dto.Last4,
	}, nil
}
