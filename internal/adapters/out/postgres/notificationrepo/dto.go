package notificationrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO maps the notifications table.
type NotificationDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_user_read,priority:1"`
	OrderID   *uuid.UUID `gorm:"type:uuid"`
	Type      string     `gorm:"type:varchar(32);not null"`
	Title     string     `gorm:"not null"`
	Message   string     `gorm:"type:text"`
	IsRead    bool       `gorm:"not null;default:false;index:idx_notifications_user_read,priority:2"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	dto := NotificationDTO{
		ID:        n.ID().Bytes(),
		UserID:    n.UserID().Bytes(),
		Type:      string(n.Type()),
		Title:     n.Title(),
		Message:   n.Message(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
		UpdatedAt: n.UpdatedAt(),
	}
	if id := n.OrderID(); id != nil {
		raw := id.Bytes()
		dto.OrderID = &raw
	}
	return dto
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes(dto.OrderID[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	return notification.RestoreNotification(notification.Params{
		ID:        id,
		UserID:    userID,
		OrderID:   orderID,
		Type:      notification.Type(dto.Type),
		Title:     dto.Title,
		Message:   dto.Message,
		IsRead:    dto.IsRead,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	})
}
