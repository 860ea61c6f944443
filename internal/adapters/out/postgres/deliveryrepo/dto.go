package deliveryrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// orderUniqueIndex enforces one delivery per order.
const orderUniqueIndex = "idx_deliveries_order_id"

type DeliveryDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_deliveries_order_id"`
	DeliveryPersonID *uuid.UUID `gorm:"type:uuid;index"`
	Status           string     `gorm:"type:varchar(16);not null;index"`
	CurrentLatitude  *float64
	CurrentLongitude *float64
	AcceptedAt       *time.Time
	PickedUpAt       *time.Time
	DeliveredAt      *time.Time
	CreatedAt        time.Time `gorm:"not null;index"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:          d.ID().Bytes(),
		OrderID:     d.OrderID().Bytes(),
		Status:      d.Status().String(),
		AcceptedAt:  d.AcceptedAt(),
		PickedUpAt:  d.PickedUpAt(),
		DeliveredAt: d.DeliveredAt(),
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
	}

	if id := d.CourierID(); id != nil {
		raw := id.Bytes()
		dto.DeliveryPersonID = &raw
	}

	if loc := d.Location(); loc != nil {
		lat, lon := loc.Latitude(), loc.Longitude()
		dto.CurrentLatitude = &lat
		dto.CurrentLongitude = &lon
	}

	return dto
}

func (dto DeliveryDTO) columns() map[string]any {
	return map[string]any{
		"delivery_person_id": dto.DeliveryPersonID,
		"status":             dto.Status,
		"current_latitude":   dto.CurrentLatitude,
		"current_longitude":  dto.CurrentLongitude,
		"accepted_at":        dto.AcceptedAt,
		"picked_up_at":       dto.PickedUpAt,
		"delivered_at":       dto.DeliveredAt,
		"updated_at":         dto.UpdatedAt,
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.DeliveryPersonID != nil {
		cID, courierErr := kernel.UUIDFromBytes(dto.DeliveryPersonID[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewOptionalLocation(dto.CurrentLatitude, dto.CurrentLongitude)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(delivery.RestoreParams{
		ID:          id,
		OrderID:     orderID,
		CourierID:   courierID,
		Status:      status,
		Location:    loc,
		AcceptedAt:  dto.AcceptedAt,
		PickedUpAt:  dto.PickedUpAt,
		DeliveredAt: dto.DeliveredAt,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	})
}
