package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/DrekStyler/handypro-api/internal/domain"
	"github.com/DrekStyler/handypro-api/pkg/apperror"
)

type portfolioUsecase struct {
	portfolioRepo domain.PortfolioRepository
	blobs         domain.BlobStore
	log           *slog.Logger
}

// NewPortfolioUsecase creates a new portfolio usecase
func NewPortfolioUsecase(
	portfolioRepo domain.PortfolioRepository,
	blobs domain.BlobStore,
	log *slog.Logger,
) domain.PortfolioUsecase {
	return &portfolioUsecase{
		portfolioRepo: portfolioRepo,
		blobs:         blobs,
		log:           log,
	}
}

// ListProjects returns the owner's portfolio, newest completion first
func (uc *portfolioUsecase) ListProjects(ctx context.Context, ownerID string) ([]*domain.PortfolioProject, error) {
	projects, err := uc.portfolioRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		uc.log.Error("portfolio list failed", "op", "ListProjects", "user_id", ownerID, "error", err)
		return nil, err
	}
	return projects, nil
}

// AddProject validates and persists a new portfolio project. Validation failures
// never reach the store.
func (uc *portfolioUsecase) AddProject(ctx context.Context, ownerID string, project *domain.PortfolioProject) (*domain.PortfolioProject, error) {
	if strings.TrimSpace(project.Title) == "" {
		return nil, apperror.BadRequest("Project title is required")
	}
	if strings.TrimSpace(project.Description) == "" {
		return nil, apperror.BadRequest("Project description is required")
	}
	if len(project.ImageURLs) == 0 {
		return nil, apperror.BadRequest("At least one project image is required")
	}

	// Force owner from context (security: prevent IDOR)
	project.OwnerID = ownerID

	if err := uc.portfolioRepo.Create(ctx, project); err != nil {
		uc.log.Error("portfolio create failed", "op", "AddProject", "user_id", ownerID, "error", err)
		return nil, err
	}
	return project, nil
}

// DeleteProject removes the project's image blobs best-effort, then the document.
// Individual blob failures are logged and never block the rest of the cleanup or the
// document deletion.
func (uc *portfolioUsecase) DeleteProject(ctx context.Context, ownerID, projectID string) error {
	project, err := uc.portfolioRepo.GetByID(ctx, projectID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Portfolio project not found")
		}
		uc.log.Error("portfolio load failed", "op", "DeleteProject", "user_id", ownerID, "error", err)
		return err
	}
	if project.OwnerID != ownerID {
		return apperror.Forbidden("You can only delete your own portfolio projects")
	}

	for _, ref := range project.ImageURLs {
		outcome, derr := uc.blobs.Delete(ctx, ref)
		if outcome != domain.Deleted {
			uc.log.Warn("portfolio image cleanup incomplete", "op", "DeleteProject",
				"user_id", ownerID, "project_id", projectID, "ref", ref,
				"outcome", outcome.String(), "error", derr)
		}
	}

	if err := uc.portfolioRepo.Delete(ctx, projectID); err != nil {
		uc.log.Error("portfolio delete failed", "op", "DeleteProject", "user_id", ownerID,
			"project_id", projectID, "error", err)
		return err
	}
	return nil
}

// UploadImages uploads all files of a batch concurrently. The batch is
// all-or-nothing: on any failure, blobs that did make it are deleted best-effort and
// no references are returned.
func (uc *portfolioUsecase) UploadImages(ctx context.Context, ownerID string, files []domain.UploadFile) ([]string, error) {
	if len(files) == 0 {
		return nil, apperror.BadRequest("No files provided")
	}

	urls := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			key := fmt.Sprintf("portfolio/%s/%s%s", ownerID, uuid.NewString(), extForContentType(f.ContentType))
			url, err := uc.blobs.Upload(gctx, key, f.Data, f.ContentType)
			if err != nil {
				return fmt.Errorf("upload %s: %w", f.Name, err)
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.log.Error("image batch upload failed", "op", "UploadImages", "user_id", ownerID,
			"files", len(files), "error", err)
		for _, url := range urls {
			if url == "" {
				continue
			}
			outcome, derr := uc.blobs.Delete(ctx, url)
			if outcome != domain.Deleted {
				uc.log.Warn("batch rollback incomplete", "op", "UploadImages",
					"user_id", ownerID, "ref", url, "outcome", outcome.String(), "error", derr)
			}
		}
		return nil, apperror.New(http.StatusBadGateway, "Image upload failed", err)
	}

	return urls, nil
}
