package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/DrekStyler/handypro-api/internal/domain"
	"github.com/DrekStyler/handypro-api/pkg/apperror"
)

// createRetries bounds the write retries during first-sign-in profile creation.
const createRetries = 3

type userUsecase struct {
	userRepo    domain.UserRepository
	profileRepo domain.CompanyProfileRepository
	log         *slog.Logger
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(
	userRepo domain.UserRepository,
	profileRepo domain.CompanyProfileRepository,
	log *slog.Logger,
) domain.UserUsecase {
	return &userUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		log:         log,
	}
}

// EnsureProfile creates the user document on first sign-in, retrying transient write
// failures. Subcontractors also get their company profile root document here; the
// profile editor itself never creates it.
func (uc *userUsecase) EnsureProfile(ctx context.Context, user *domain.UserProfile) (*domain.UserProfile, error) {
	if user.Role != domain.RolePrime && user.Role != domain.RoleSubcontractor {
		user.Role = domain.RoleSubcontractor
	}

	var err error
	for attempt := 1; attempt <= createRetries; attempt++ {
		if err = uc.userRepo.Create(ctx, user); err == nil {
			break
		}
		uc.log.Warn("user create attempt failed", "op", "EnsureProfile",
			"user_id", user.UserID, "attempt", attempt, "error", err)
		time.Sleep(time.Duration(attempt) * 100 * time.Millisecond)
	}
	if err != nil {
		uc.log.Error("user create failed", "op", "EnsureProfile", "user_id", user.UserID, "error", err)
		return nil, err
	}

	if user.Role == domain.RoleSubcontractor {
		profile := &domain.CompanyProfile{
			UserID:       user.UserID,
			CompanyName:  user.DisplayName,
			ContactEmail: user.Email,
			Trades:       []string{},
			ServiceAreas: []string{},
		}
		if perr := uc.profileRepo.Create(ctx, profile); perr != nil {
			// Sign-in still succeeds; the editor will report "no profile found" until
			// the document exists
			uc.log.Error("company profile bootstrap failed", "op", "EnsureProfile",
				"user_id", user.UserID, "error", perr)
		}
	}

	return uc.userRepo.GetByID(ctx, user.UserID)
}

// GetProfile retrieves the signed-in user's account profile
func (uc *userUsecase) GetProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("User profile not found")
		}
		uc.log.Error("user load failed", "op", "GetProfile", "user_id", userID, "error", err)
		return nil, err
	}
	return user, nil
}
