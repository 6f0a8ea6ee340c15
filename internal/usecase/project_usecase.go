package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DrekStyler/handypro-api/internal/domain"
	"github.com/DrekStyler/handypro-api/pkg/apperror"
)

var validProjectStatuses = map[string]bool{
	domain.ProjectStatusOpen:       true,
	domain.ProjectStatusInProgress: true,
	domain.ProjectStatusCompleted:  true,
}

type projectUsecase struct {
	projectRepo domain.ProjectRepository
	log         *slog.Logger
}

// NewProjectUsecase creates a new marketplace project usecase
func NewProjectUsecase(projectRepo domain.ProjectRepository, log *slog.Logger) domain.ProjectUsecase {
	return &projectUsecase{
		projectRepo: projectRepo,
		log:         log,
	}
}

// CreateProject validates and posts a new marketplace project
func (uc *projectUsecase) CreateProject(ctx context.Context, ownerID string, project *domain.Project) (*domain.Project, error) {
	if strings.TrimSpace(project.Title) == "" {
		return nil, apperror.BadRequest("Project title is required")
	}
	if strings.TrimSpace(project.Description) == "" {
		return nil, apperror.BadRequest("Project description is required")
	}
	if project.BudgetMin < 0 || (project.BudgetMax > 0 && project.BudgetMax < project.BudgetMin) {
		return nil, apperror.BadRequest("Invalid budget range")
	}

	project.OwnerID = ownerID
	project.Status = domain.ProjectStatusOpen
	project.Trades = dedupe(project.Trades)

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		uc.log.Error("project create failed", "op", "CreateProject", "user_id", ownerID, "error", err)
		return nil, err
	}
	return project, nil
}

// GetProject retrieves one marketplace project
func (uc *projectUsecase) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Project not found")
		}
		uc.log.Error("project load failed", "op", "GetProject", "project_id", id, "error", err)
		return nil, err
	}
	return project, nil
}

// BrowseProjects lists marketplace projects matching the filter
func (uc *projectUsecase) BrowseProjects(ctx context.Context, filter domain.ProjectFilter) ([]*domain.Project, error) {
	if filter.Status != "" && !validProjectStatuses[filter.Status] {
		return nil, apperror.BadRequest("Invalid status filter")
	}

	projects, err := uc.projectRepo.List(ctx, filter)
	if err != nil {
		uc.log.Error("project list failed", "op", "BrowseProjects", "error", err)
		return nil, err
	}
	return projects, nil
}

// UpdateStatus transitions a project's status; only the owner may do so
func (uc *projectUsecase) UpdateStatus(ctx context.Context, ownerID, projectID, status string) error {
	if !validProjectStatuses[status] {
		return apperror.BadRequest("Invalid project status")
	}

	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Project not found")
		}
		uc.log.Error("project load failed", "op", "UpdateStatus", "project_id", projectID, "error", err)
		return err
	}
	if project.OwnerID != ownerID {
		return apperror.Forbidden("You can only update your own projects")
	}

	if err := uc.projectRepo.UpdateStatus(ctx, projectID, status); err != nil {
		uc.log.Error("project status update failed", "op", "UpdateStatus",
			"project_id", projectID, "error", err)
		return err
	}
	return nil
}
