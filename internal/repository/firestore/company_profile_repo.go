package firestore

import (
	"context"
	"time"

	fs "cloud.google.com/go/firestore"

	"github.com/DrekStyler/handypro-api/internal/domain"
)

type companyProfileRepo struct {
	db *fs.Client
}

// NewCompanyProfileRepository creates a new company profile repository
func NewCompanyProfileRepository(db *fs.Client) domain.CompanyProfileRepository {
	return &companyProfileRepo{db: db}
}

// GetByUserID retrieves a company profile by the owning user's ID
func (r *companyProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	snap, err := r.db.Collection(colCompanyProfiles).Doc(userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var profile domain.CompanyProfile
	if err := snap.DataTo(&profile); err != nil {
		return nil, err
	}
	profile.UserID = snap.Ref.ID
	return &profile, nil
}

// Save overwrites the whole profile document (one profile per user)
func (r *companyProfileRepo) Save(ctx context.Context, profile *domain.CompanyProfile) error {
	profile.UpdatedAt = time.Now()
	_, err := r.db.Collection(colCompanyProfiles).Doc(profile.UserID).Set(ctx, profile)
	return err
}

// Create writes the profile document at registration; fails if one already exists
func (r *companyProfileRepo) Create(ctx context.Context, profile *domain.CompanyProfile) error {
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	_, err := r.db.Collection(colCompanyProfiles).Doc(profile.UserID).Create(ctx, profile)
	if err != nil && isAlreadyExists(err) {
		return nil
	}
	return err
}

// UpdateLogoURL updates only the logo reference on an existing profile
func (r *companyProfileRepo) UpdateLogoURL(ctx context.Context, userID, logoURL string) error {
	_, err := r.db.Collection(colCompanyProfiles).Doc(userID).Update(ctx, []fs.Update{
		{Path: "logoUrl", Value: logoURL},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil && isNotFound(err) {
		return domain.ErrNotFound
	}
	return err
}
