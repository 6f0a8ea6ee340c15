package usecase

import (
	"context"
	"log/slog"

	"github.com/DrekStyler/handypro-api/internal/domain"
	"github.com/DrekStyler/handypro-api/pkg/apperror"
)

type notificationUsecase struct {
	notificationRepo domain.NotificationRepository
	log              *slog.Logger
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(notificationRepo domain.NotificationRepository, log *slog.Logger) domain.NotificationUsecase {
	return &notificationUsecase{
		notificationRepo: notificationRepo,
		log:              log,
	}
}

// ListNotifications returns the recipient's notifications, newest first
func (uc *notificationUsecase) ListNotifications(ctx context.Context, recipientID string) ([]*domain.Notification, error) {
	notifications, err := uc.notificationRepo.ListByRecipient(ctx, recipientID)
	if err != nil {
		uc.log.Error("notification list failed", "op", "ListNotifications",
			"user_id", recipientID, "error", err)
		return nil, err
	}
	return notifications, nil
}

// MarkRead marks one of the recipient's notifications as read
func (uc *notificationUsecase) MarkRead(ctx context.Context, recipientID, id string) error {
	n, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Notification not found")
		}
		uc.log.Error("notification load failed", "op", "MarkRead", "user_id", recipientID, "error", err)
		return err
	}
	if n.RecipientID != recipientID {
		return apperror.Forbidden("You can only update your own notifications")
	}

	if err := uc.notificationRepo.MarkRead(ctx, id); err != nil {
		uc.log.Error("notification update failed", "op", "MarkRead", "user_id", recipientID, "error", err)
		return err
	}
	return nil
}

// MarkAllRead marks every unread notification of the recipient as read
func (uc *notificationUsecase) MarkAllRead(ctx context.Context, recipientID string) error {
	if err := uc.notificationRepo.MarkAllRead(ctx, recipientID); err != nil {
		uc.log.Error("notification update failed", "op", "MarkAllRead", "user_id", recipientID, "error", err)
		return err
	}
	return nil
}
