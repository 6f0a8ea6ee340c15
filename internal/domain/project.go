package domain

import (
	"context"
	"time"
)

const (
	ProjectStatusOpen       = "open"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
)

// Project is a marketplace job posted by a prime for subcontractors to browse.
type Project struct {
	ID          string    `json:"id" firestore:"-"`
	OwnerID     string    `json:"owner_id" firestore:"ownerId"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	Trades      []string  `json:"trades" firestore:"trades"`
	Location    string    `json:"location" firestore:"location"`
	BudgetMin   float64   `json:"budget_min" firestore:"budgetMin"`
	BudgetMax   float64   `json:"budget_max" firestore:"budgetMax"`
	Status      string    `json:"status" firestore:"status"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ProjectFilter narrows marketplace browsing. Zero values mean "any".
type ProjectFilter struct {
	Trade    string
	Location string
	Status   string
}

// ProjectRepository defines document store operations
type ProjectRepository interface {
	GetByID(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]*Project, error)
	Create(ctx context.Context, project *Project) error
	UpdateStatus(ctx context.Context, id, status string) error
}

// ProjectUsecase defines business logic operations
type ProjectUsecase interface {
	CreateProject(ctx context.Context, ownerID string, project *Project) (*Project, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	BrowseProjects(ctx context.Context, filter ProjectFilter) ([]*Project, error)
	UpdateStatus(ctx context.Context, ownerID, projectID, status string) error
}
