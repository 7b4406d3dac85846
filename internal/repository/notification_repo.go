package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/JosiephousPierre/SELab-final/internal/model"
)

// NotificationRepository is the notifications data-access interface. The
// FindRecent* lookups implement the composer's dedup windows.
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	CreateUserNotification(ctx context.Context, un *model.UserNotification) error
	// FindRecentByMessage returns a notification with the same title and
	// message created inside the window, or gorm.ErrRecordNotFound.
	FindRecentByMessage(ctx context.Context, title, message string, window time.Duration) (*model.Notification, error)
	// FindRecentRelated returns a notification with the same title and
	// related entity created inside the window, or gorm.ErrRecordNotFound.
	FindRecentRelated(ctx context.Context, title, relatedTo string, relatedID int64, window time.Duration) (*model.Notification, error)
}

type notificationRepo struct {
	db *gorm.DB
}

// NewNotificationRepo creates the gorm-backed NotificationRepository.
func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepo) CreateUserNotification(ctx context.Context, un *model.UserNotification) error {
	return r.db.WithContext(ctx).Create(un).Error
}

func (r *notificationRepo) FindRecentByMessage(ctx context.Context, title, message string, window time.Duration) (*model.Notification, error) {
	var n model.Notification
	err := r.db.WithContext(ctx).
		Where("title = ? AND message = ? AND created_at > ?", title, message, time.Now().Add(-window)).
		Order("created_at DESC").
		First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepo) FindRecentRelated(ctx context.Context, title, relatedTo string, relatedID int64, window time.Duration) (*model.Notification, error) {
	var n model.Notification
	err := r.db.WithContext(ctx).
		Where("title = ? AND related_to = ? AND related_id = ? AND created_at > ?",
			title, relatedTo, relatedID, time.Now().Add(-window)).
		Order("created_at DESC").
		First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}
