package usecases

import (
	"context"
	"time"

	"bugtrail/internal/domain/notification"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type NotificationDTO struct {
	ID          uint   `json:"id"`
	SenderID    uint   `json:"sender_id"`
	RecipientID uint   `json:"recipient_id"`
	TicketID    *uint  `json:"ticket_id,omitempty"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	CreatedAt   string `json:"created_at"`
}

type NotificationBox int

const (
	BoxReceived NotificationBox = iota
	BoxSent
)

type ListNotificationsQuery struct {
	ActorUserID uint
	Box         NotificationBox
}

type ListNotificationsUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewListNotificationsUseCase(notificationRepo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) ([]NotificationDTO, error) {
	if query.ActorUserID == 0 {
		return nil, errors.NewValidationError("acting user ID is required")
	}

	var (
		notifications []*notification.Notification
		err           error
	)
	switch query.Box {
	case BoxSent:
		notifications, err = uc.notificationRepo.ListSent(ctx, query.ActorUserID)
	default:
		notifications, err = uc.notificationRepo.ListReceived(ctx, query.ActorUserID)
	}
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err, "user_id", query.ActorUserID)
		return nil, errors.NewInternalError("failed to list notifications")
	}

	dtos := make([]NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		dtos = append(dtos, NotificationDTO{
			ID:          n.ID(),
			SenderID:    n.SenderID(),
			RecipientID: n.RecipientID(),
			TicketID:    n.TicketID(),
			Title:       n.Title(),
			Message:     n.Message(),
			CreatedAt:   n.CreatedAt().Format(time.RFC3339),
		})
	}
	return dtos, nil
}
