package domain

import (
	"context"
	"time"
)

const (
	NotificationProjectInvite = "project_invite"
	NotificationProjectUpdate = "project_update"
	NotificationMessage       = "message"
)

// Notification is a per-recipient event shown in the notification list.
type Notification struct {
	ID          string    `json:"id" firestore:"-"`
	RecipientID string    `json:"recipient_id" firestore:"recipientId"`
	Type        string    `json:"type" firestore:"type"`
	Message     string    `json:"message" firestore:"message"`
	ProjectID   string    `json:"project_id,omitempty" firestore:"projectId"`
	Read        bool      `json:"read" firestore:"read"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

// NotificationRepository defines document store operations
type NotificationRepository interface {
	// ListByRecipient returns the recipient's notifications, newest first.
	ListByRecipient(ctx context.Context, recipientID string) ([]*Notification, error)
	Create(ctx context.Context, n *Notification) error
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, recipientID string) error
	GetByID(ctx context.Context, id string) (*Notification, error)
}

// NotificationUsecase defines business logic operations
type NotificationUsecase interface {
	ListNotifications(ctx context.Context, recipientID string) ([]*Notification, error)
	MarkRead(ctx context.Context, recipientID, id string) error
	MarkAllRead(ctx context.Context, recipientID string) error
}
