package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/DrekStyler/handypro-api/internal/domain"
	"github.com/DrekStyler/handypro-api/pkg/apperror"
)

type companyProfileUsecase struct {
	profileRepo domain.CompanyProfileRepository
	blobs       domain.BlobStore
	log         *slog.Logger
}

// NewCompanyProfileUsecase creates a new company profile usecase
func NewCompanyProfileUsecase(
	profileRepo domain.CompanyProfileRepository,
	blobs domain.BlobStore,
	log *slog.Logger,
) domain.CompanyProfileUsecase {
	return &companyProfileUsecase{
		profileRepo: profileRepo,
		blobs:       blobs,
		log:         log,
	}
}

// GetProfile retrieves the owner's company profile. A missing profile is an error,
// never a fabricated empty document.
func (uc *companyProfileUsecase) GetProfile(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Company profile not found")
		}
		uc.log.Error("profile load failed", "op", "GetProfile", "user_id", userID, "error", err)
		return nil, err
	}
	return profile, nil
}

// SaveProfile overwrites the whole profile document with the submitted draft.
// Rating, completed-project count and the creation timestamp are owned elsewhere and
// are carried over from the stored document, never from the draft.
func (uc *companyProfileUsecase) SaveProfile(ctx context.Context, userID string, profile *domain.CompanyProfile) (*domain.CompanyProfile, error) {
	current, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			// The root document is created at registration; the editor never creates it
			return nil, apperror.NotFound("Company profile not found")
		}
		uc.log.Error("profile load failed", "op", "SaveProfile", "user_id", userID, "error", err)
		return nil, err
	}

	// Force user ID from context (security: prevent IDOR)
	profile.UserID = userID

	profile.Rating = current.Rating
	profile.CompletedProjects = current.CompletedProjects
	profile.CreatedAt = current.CreatedAt

	// Trades and service areas are sets: replace entirely, deduplicated
	profile.Trades = dedupe(profile.Trades)
	profile.ServiceAreas = dedupe(profile.ServiceAreas)

	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		uc.log.Error("profile save failed", "op", "SaveProfile", "user_id", userID, "error", err)
		return nil, err
	}
	return profile, nil
}

// UploadLogo replaces the profile logo. The previous blob is deleted best-effort
// before the new upload; a failed deletion is logged and ignored. An upload failure
// leaves the stored logo reference untouched.
func (uc *companyProfileUsecase) UploadLogo(ctx context.Context, userID string, data []byte, contentType string) (string, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return "", apperror.NotFound("Company profile not found")
		}
		uc.log.Error("profile load failed", "op", "UploadLogo", "user_id", userID, "error", err)
		return "", err
	}

	if profile.LogoURL != "" {
		outcome, derr := uc.blobs.Delete(ctx, profile.LogoURL)
		if outcome != domain.Deleted {
			uc.log.Warn("old logo cleanup incomplete", "op", "UploadLogo", "user_id", userID,
				"outcome", outcome.String(), "error", derr)
		}
	}

	key := fmt.Sprintf("logos/%s/%s%s", userID, uuid.NewString(), extForContentType(contentType))
	url, err := uc.blobs.Upload(ctx, key, data, contentType)
	if err != nil {
		uc.log.Error("logo upload failed", "op", "UploadLogo", "user_id", userID, "error", err)
		return "", apperror.New(http.StatusBadGateway, "Logo upload failed", err)
	}

	if err := uc.profileRepo.UpdateLogoURL(ctx, userID, url); err != nil {
		uc.log.Error("logo reference update failed", "op", "UploadLogo", "user_id", userID, "error", err)
		return "", err
	}
	return url, nil
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func extForContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
