package notification

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	FindByID(ctx context.Context, id string) (*Notification, error)
	Save(ctx context.Context, n *Notification) error
	ListForRecipient(ctx context.Context, userID string) ([]Notification, error)
	MarkAllReadFor(ctx context.Context, userID string) error
	Delete(ctx context.Context, id string) error
	DeleteAllFor(ctx context.Context, userID string) error
	CountUnreadFor(ctx context.Context, userID string) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepository) FindByID(ctx context.Context, id string) (*Notification, error) {
	var n Notification
	err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) Save(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *notificationRepository) ListForRecipient(ctx context.Context, userID string) ([]Notification, error) {
	var notifications []Notification
	err := r.db.WithContext(ctx).
		Where("recipient_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) MarkAllReadFor(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Model(&Notification{}).
		Where("recipient_id = ?", userID).
		Update("read", true).Error
}

func (r *notificationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Notification{}, "id = ?", id).Error
}

func (r *notificationRepository) DeleteAllFor(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Delete(&Notification{}, "recipient_id = ?", userID).Error
}

func (r *notificationRepository) CountUnreadFor(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Notification{}).
		Where("recipient_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}
