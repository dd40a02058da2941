package mappers

import (
	"bugtrail/internal/domain/notification"
	"bugtrail/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) *notification.Notification
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:          n.ID(),
		SenderID:    n.SenderID(),
		RecipientID: n.RecipientID(),
		TicketID:    n.TicketID(),
		Title:       n.Title(),
		Message:     n.Message(),
	}
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) *notification.Notification {
	return notification.ReconstructNotification(model.ID, model.SenderID, model.RecipientID,
		model.TicketID, model.Title, model.Message, millisToTime(model.CreatedAt))
}
