package firestore

import (
	"context"
	"time"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/DrekStyler/handypro-api/internal/domain"
)

type notificationRepo struct {
	db *fs.Client
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *fs.Client) domain.NotificationRepository {
	return &notificationRepo{db: db}
}

// ListByRecipient returns the recipient's notifications, newest first
func (r *notificationRepo) ListByRecipient(ctx context.Context, recipientID string) ([]*domain.Notification, error) {
	iter := r.db.Collection(colNotifications).
		Where("recipientId", "==", recipientID).
		OrderBy("createdAt", fs.Desc).
		Documents(ctx)
	defer iter.Stop()

	var notifications []*domain.Notification
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var n domain.Notification
		if err := snap.DataTo(&n); err != nil {
			return nil, err
		}
		n.ID = snap.Ref.ID
		notifications = append(notifications, &n)
	}
	return notifications, nil
}

// GetByID retrieves a single notification
func (r *notificationRepo) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	snap, err := r.db.Collection(colNotifications).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var n domain.Notification
	if err := snap.DataTo(&n); err != nil {
		return nil, err
	}
	n.ID = snap.Ref.ID
	return &n, nil
}

// Create persists a notification under a generated key
func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	ref := r.db.Collection(colNotifications).NewDoc()
	if _, err := ref.Set(ctx, n); err != nil {
		return err
	}
	n.ID = ref.ID
	return nil
}

// MarkRead flips the read flag on one notification
func (r *notificationRepo) MarkRead(ctx context.Context, id string) error {
	_, err := r.db.Collection(colNotifications).Doc(id).Update(ctx, []fs.Update{
		{Path: "read", Value: true},
	})
	if err != nil && isNotFound(err) {
		return domain.ErrNotFound
	}
	return err
}

// MarkAllRead flips the read flag on every unread notification of the recipient
func (r *notificationRepo) MarkAllRead(ctx context.Context, recipientID string) error {
	iter := r.db.Collection(colNotifications).
		Where("recipientId", "==", recipientID).
		Where("read", "==", false).
		Documents(ctx)
	defer iter.Stop()

	bw := r.db.BulkWriter(ctx)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return err
		}
		if _, err := bw.Update(snap.Ref, []fs.Update{{Path: "read", Value: true}}); err != nil {
			return err
		}
	}
	bw.End()
	return nil
}
