package courierrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

const userUniqueIndex = "idx_couriers_user_id"

type CourierDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_couriers_user_id"`
	Availability     string    `gorm:"type:varchar(16);not null;index"`
	VehicleType      string    `gorm:"type:varchar(16);not null"`
	CurrentLatitude  *float64
	CurrentLongitude *float64
	DeliveryRadius   float64 `gorm:"not null"`
	TotalDeliveries  int     `gorm:"not null;default:0"`
	Rating           float64 `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	dto := CourierDTO{
		ID:              c.ID().Bytes(),
		UserID:          c.UserID().Bytes(),
		Availability:    c.Availability().String(),
		VehicleType:     c.Vehicle().String(),
		DeliveryRadius:  c.DeliveryRadiusKm(),
		TotalDeliveries: c.TotalDeliveries(),
		Rating:          c.Rating(),
	}

	if loc := c.Location(); loc != nil {
		lat, lon := loc.Latitude(), loc.Longitude()
		dto.CurrentLatitude = &lat
		dto.CurrentLongitude = &lon
	}

	return dto
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	availability, err := courier.ParseAvailability(dto.Availability)
	if err != nil {
		return nil, err
	}

	vehicle, err := courier.ParseVehicleType(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewOptionalLocation(dto.CurrentLatitude, dto.CurrentLongitude)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(courier.RestoreParams{
		ID:               id,
		UserID:           userID,
		Availability:     availability,
		Vehicle:          vehicle,
		Location:         loc,
		DeliveryRadiusKm: dto.DeliveryRadius,
		TotalDeliveries:  dto.TotalDeliveries,
		Rating:           dto.Rating,
	})
}
