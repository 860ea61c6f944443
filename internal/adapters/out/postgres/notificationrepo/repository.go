package notificationrepo

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

// GormNotificationRepository stores in-app notifications. It is used outside the unit
// of work: a notification is written after the state change it reports has committed.
type GormNotificationRepository struct {
	db *gorm.DB
}

var _ ports.NotificationRepository = (*GormNotificationRepository)(nil)

// NewGormNotificationRepository creates a repository over db.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add inserts n.
func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	dto := fromDomain(n)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByUser returns one page of the user's notifications, newest first. An empty inbox
// skips the page query.
func (r *GormNotificationRepository) ListByUser(
	ctx context.Context,
	userID kernel.UUID,
	page ports.Page,
) (ports.PagedResult[*notification.Notification], error) {
	result := ports.PagedResult[*notification.Notification]{
		Page:  page,
		Items: make([]*notification.Notification, 0),
	}

	err := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("user_id = ?", userID.Bytes()).
		Count(&result.Total).Error
	if err != nil || result.Total == 0 {
		return result, err
	}

	var dtos []NotificationDTO
	err = r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Order("created_at DESC, id").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&dtos).Error
	if err != nil {
		return result, err
	}

	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return result, err
		}
		result.Items = append(result.Items, n)
	}
	return result, nil
}

// MarkAllAsRead flags every unread notification of the user as read.
//
// Returns:
//   - int64: the number of rows that changed
//   - error: the database error, if any
func (r *GormNotificationRepository) MarkAllAsRead(ctx context.Context, userID kernel.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("user_id = ? AND is_read = ?", userID.Bytes(), false).
		Updates(map[string]any{"is_read": true, "updated_at": time.Now().UTC()})
	return result.RowsAffected, result.Error
}

// CountUnread counts the user's unread notifications.
func (r *GormNotificationRepository) CountUnread(ctx context.Context, userID kernel.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("user_id = ? AND is_read = ?", userID.Bytes(), false).
		Count(&count).Error
	return count, err
}
