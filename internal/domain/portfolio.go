package domain

import (
	"context"
	"time"
)

// PortfolioProject is a completed work showcased on a company profile. Belongs to
// exactly one profile via OwnerID.
type PortfolioProject struct {
	ID             string    `json:"id" firestore:"-"`
	OwnerID        string    `json:"owner_id" firestore:"ownerId"`
	Title          string    `json:"title" firestore:"title"`
	Description    string    `json:"description" firestore:"description"`
	Location       string    `json:"location" firestore:"location"`
	CompletionDate time.Time `json:"completion_date" firestore:"completionDate"`
	ClientName     string    `json:"client_name" firestore:"clientName"`
	ImageURLs      []string  `json:"image_urls" firestore:"imageUrls"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
}

// PortfolioRepository defines document store operations
type PortfolioRepository interface {
	// ListByOwner returns the owner's projects ordered by completion date descending.
	ListByOwner(ctx context.Context, ownerID string) ([]*PortfolioProject, error)
	GetByID(ctx context.Context, id string) (*PortfolioProject, error)
	Create(ctx context.Context, project *PortfolioProject) error
	Delete(ctx context.Context, id string) error
}

// PortfolioUsecase defines business logic operations
type PortfolioUsecase interface {
	ListProjects(ctx context.Context, ownerID string) ([]*PortfolioProject, error)
	// AddProject validates that title, description and at least one image are present
	// before any store call is made.
	AddProject(ctx context.Context, ownerID string, project *PortfolioProject) (*PortfolioProject, error)
	// DeleteProject removes the project's image blobs best-effort, then the document.
	DeleteProject(ctx context.Context, ownerID, projectID string) error
	// UploadImages uploads all files concurrently. The batch is all-or-nothing: if any
	// upload fails, successfully stored blobs are cleaned up and no references are
	// returned.
	UploadImages(ctx context.Context, ownerID string, files []UploadFile) ([]string, error)
}

// UploadFile is one file of an upload batch, already read into memory.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}
