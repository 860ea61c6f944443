package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	RestaurantID      uuid.UUID `gorm:"type:uuid;not null;index"`
	DeliveryAddressID uuid.UUID `gorm:"type:uuid;not null"`
	Status            string    `gorm:"type:varchar(32);not null;index"`

	PaymentType     string     `gorm:"type:varchar(16);not null"`
	PaymentMethodID *uuid.UUID `gorm:"type:uuid"`
	PixCode         *string
	PixQRCodeImage  *string `gorm:"column:pix_qr_code_image;type:text"`
	PixKey          *string
	PixExpiresAt    *time.Time
	ChangeFor       *int64

	Subtotal    int64 `gorm:"not null"`
	DeliveryFee int64 `gorm:"not null"`
	TotalAmount int64 `gorm:"not null"`

	Notes              string `gorm:"type:text"`
	CancellationReason string `gorm:"type:text"`

	EstimatedDeliveryTime *time.Time
	AcceptedAt            *time.Time
	ReadyAt               *time.Time
	PickedUpAt            *time.Time
	DeliveredAt           *time.Time
	CancelledAt           *time.Time
	CreatedAt             time.Time `gorm:"not null;index"`
	UpdatedAt             time.Time `gorm:"not null"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type OrderItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Position    int       `gorm:"not null"`
	MenuItemID  uuid.UUID `gorm:"type:uuid;not null"`
	ProductName string    `gorm:"not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string
	Quantity    int    `gorm:"not null"`
	UnitPrice   int64  `gorm:"not null"`
	TotalPrice  int64  `gorm:"not null"`
	Notes       string `gorm:"type:text"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                    o.ID().Bytes(),
		CustomerID:            o.CustomerID().Bytes(),
		RestaurantID:          o.RestaurantID().Bytes(),
		DeliveryAddressID:     o.DeliveryAddressID().Bytes(),
		Status:                o.Status().String(),
		Subtotal:              o.Subtotal(),
		DeliveryFee:           o.DeliveryFee(),
		TotalAmount:           o.TotalAmount(),
		Notes:                 o.Notes(),
		CancellationReason:    o.CancellationReason(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime(),
		AcceptedAt:            o.AcceptedAt(),
		ReadyAt:               o.ReadyAt(),
		PickedUpAt:            o.PickedUpAt(),
		DeliveredAt:           o.DeliveredAt(),
		CancelledAt:           o.CancelledAt(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}

	dto.PaymentType = o.Payment().Type().String()
	switch p := o.Payment().(type) {
	case order.StoredCardPayment:
		id := p.PaymentMethodID.Bytes()
		dto.PaymentMethodID = &id
	case order.PixPayment:
		expiresAt := p.ExpiresAt
		dto.PixCode = &p.Code
		dto.PixQRCodeImage = &p.QRCodeImage
		dto.PixKey = &p.PixKey
		dto.PixExpiresAt = &expiresAt
	case order.CashPayment:
		dto.ChangeFor = p.ChangeFor
	}

	items := o.Items()
	dto.Items = make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     dto.ID,
			Position:    i,
			MenuItemID:  item.MenuItemID().Bytes(),
			ProductName: item.ProductName(),
			Description: item.Description(),
			ImageURL:    item.ImageURL(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			TotalPrice:  item.TotalPrice(),
			Notes:       item.Notes(),
		})
	}

	return dto
}

// lifecycleColumns are the columns a status change may touch.
func lifecycleColumns(o *order.Order) map[string]any {
	return map[string]any{
		"status":                  o.Status().String(),
		"cancellation_reason":     o.CancellationReason(),
		"estimated_delivery_time": o.EstimatedDeliveryTime(),
		"accepted_at":             o.AcceptedAt(),
		"ready_at":                o.ReadyAt(),
		"picked_up_at":            o.PickedUpAt(),
		"delivered_at":            o.DeliveredAt(),
		"cancelled_at":            o.CancelledAt(),
		"updated_at":              o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	ids, err := parseIDs(dto.ID, dto.CustomerID, dto.RestaurantID, dto.DeliveryAddressID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	payment, err := paymentToDomain(dto)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		NewOrderParams: order.NewOrderParams{
			ID:                ids[0],
			CustomerID:        ids[1],
			RestaurantID:      ids[2],
			DeliveryAddressID: ids[3],
			Payment:           payment,
			Items:             items,
			Subtotal:          dto.Subtotal,
			DeliveryFee:       dto.DeliveryFee,
			TotalAmount:       dto.TotalAmount,
			Notes:             dto.Notes,
			CreatedAt:         dto.CreatedAt,
		},
		Status:                status,
		CancellationReason:    dto.CancellationReason,
		EstimatedDeliveryTime: dto.EstimatedDeliveryTime,
		AcceptedAt:            dto.AcceptedAt,
		ReadyAt:               dto.ReadyAt,
		PickedUpAt:            dto.PickedUpAt,
		DeliveredAt:           dto.DeliveredAt,
		CancelledAt:           dto.CancelledAt,
		UpdatedAt:             dto.UpdatedAt,
	})
}

func paymentToDomain(dto OrderDTO) (order.Payment, error) {
	paymentType, err := order.ParsePaymentType(dto.PaymentType)
	if err != nil {
		return nil, err
	}

	switch paymentType {
	case order.PaymentStoredCard:
		var methodID kernel.UUID
		if dto.PaymentMethodID != nil {
			methodID, err = kernel.UUIDFromBytes(dto.PaymentMethodID[:])
			if err != nil {
				return nil, err
			}
		}
		return order.StoredCardPayment{PaymentMethodID: methodID}, nil
	case order.PaymentPix:
		p := order.PixPayment{
			Code:        deref(dto.PixCode),
			QRCodeImage: deref(dto.PixQRCodeImage),
			PixKey:      deref(dto.PixKey),
		}
		if dto.PixExpiresAt != nil {
			p.ExpiresAt = *dto.PixExpiresAt
		}
		return p, nil
	case order.PaymentCash:
		return order.CashPayment{ChangeFor: dto.ChangeFor}, nil
	case order.PaymentUnknown:
	}
	return nil, nil
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	ids, err := parseIDs(dto.ID, dto.MenuItemID)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(order.ItemParams{
		ID:          ids[0],
		MenuItemID:  ids[1],
		ProductName: dto.ProductName,
		Description: dto.Description,
		ImageURL:    dto.ImageURL,
		Quantity:    dto.Quantity,
		UnitPrice:   dto.UnitPrice,
		Notes:       dto.Notes,
	}, dto.TotalPrice)
}

func parseIDs(raw ...uuid.UUID) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := kernel.UUIDFromBytes(r[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
