package notif

import (
	"context"

	"gorm.io/gorm"

	"github.com/vickris/opensit/internal/dbmysql"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *dbmysql.Notification) error
	ByUser(ctx context.Context, userID uint64, limit, offset int) ([]dbmysql.Notification, error)
	UnreadCount(ctx context.Context, userID uint64) (int64, error)
	UnreadIDs(ctx context.Context, userID uint64) ([]uint64, error)
	MarkViewed(ctx context.Context, ids []uint64) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *dbmysql.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepository) ByUser(ctx context.Context, userID uint64, limit, offset int) ([]dbmysql.Notification, error) {
	var notifications []dbmysql.Notification
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Notification{}).
		Where("user_id = ? AND viewed = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) UnreadIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Notification{}).
		Where("user_id = ? AND viewed = ?", userID, false).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *notificationRepository) MarkViewed(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&dbmysql.Notification{}).
		Where("id IN ?", ids).
		Update("viewed", true).Error
}
