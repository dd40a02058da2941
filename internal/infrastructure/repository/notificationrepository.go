package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bugtrail/internal/domain/notification"
	"bugtrail/internal/infrastructure/persistence/mappers"
	"bugtrail/internal/infrastructure/persistence/models"
	"bugtrail/internal/shared/db"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return n.SetID(model.ID)
}

func (r *NotificationRepository) ListSent(ctx context.Context, userID uint) ([]*notification.Notification, error) {
	return r.list(ctx, "sender_id = ?", userID)
}

func (r *NotificationRepository) ListReceived(ctx context.Context, userID uint) ([]*notification.Notification, error) {
	return r.list(ctx, "recipient_id = ?", userID)
}

func (r *NotificationRepository) list(ctx context.Context, condition string, userID uint) ([]*notification.Notification, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelRows []models.NotificationModel
	err := tx.Where(condition, userID).Order("created_at DESC").Find(&modelRows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]*notification.Notification, 0, len(modelRows))
	for i := range modelRows {
		notifications = append(notifications, r.mapper.ToDomain(&modelRows[i]))
	}
	return notifications, nil
}
