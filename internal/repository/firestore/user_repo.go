package firestore

import (
	"context"
	"time"

	fs "cloud.google.com/go/firestore"

	"github.com/DrekStyler/handypro-api/internal/domain"
)

type userRepo struct {
	db *fs.Client
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *fs.Client) domain.UserRepository {
	return &userRepo{db: db}
}

// GetByID retrieves a user profile by uid
func (r *userRepo) GetByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	snap, err := r.db.Collection(colUsers).Doc(userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var user domain.UserProfile
	if err := snap.DataTo(&user); err != nil {
		return nil, err
	}
	user.UserID = snap.Ref.ID
	return &user, nil
}

// Create writes the user document; a pre-existing document is not an error so that
// first-sign-in calls stay idempotent
func (r *userRepo) Create(ctx context.Context, user *domain.UserProfile) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.db.Collection(colUsers).Doc(user.UserID).Create(ctx, user)
	if err != nil && isAlreadyExists(err) {
		return nil
	}
	return err
}
