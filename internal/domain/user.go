package domain

import (
	"context"
	"time"
)

const (
	RolePrime         = "prime"
	RoleSubcontractor = "subcontractor"
)

// UserProfile is the account-level profile created on first sign-in, keyed by the
// identity provider's uid.
type UserProfile struct {
	UserID      string    `json:"user_id" firestore:"userId"`
	Email       string    `json:"email" firestore:"email"`
	DisplayName string    `json:"display_name" firestore:"displayName"`
	Role        string    `json:"role" firestore:"role"`
	Phone       string    `json:"phone" firestore:"phone"`
	Location    string    `json:"location" firestore:"location"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

// UserRepository defines document store operations
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*UserProfile, error)
	Create(ctx context.Context, user *UserProfile) error
}

// UserUsecase defines business logic operations
type UserUsecase interface {
	// EnsureProfile creates the user document on first sign-in. Idempotent; writes
	// are retried a bounded number of times before giving up.
	EnsureProfile(ctx context.Context, user *UserProfile) (*UserProfile, error)
	GetProfile(ctx context.Context, userID string) (*UserProfile, error)
}
