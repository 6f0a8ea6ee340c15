package firestore

import (
	"context"
	"time"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/DrekStyler/handypro-api/internal/domain"
)

type projectRepo struct {
	db *fs.Client
}

// NewProjectRepository creates a new marketplace project repository
func NewProjectRepository(db *fs.Client) domain.ProjectRepository {
	return &projectRepo{db: db}
}

// GetByID retrieves a single marketplace project
func (r *projectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	snap, err := r.db.Collection(colProjects).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var p domain.Project
	if err := snap.DataTo(&p); err != nil {
		return nil, err
	}
	p.ID = snap.Ref.ID
	return &p, nil
}

// List returns projects matching the filter, newest first. Trade filtering uses an
// array-contains query on the trades field.
func (r *projectRepo) List(ctx context.Context, filter domain.ProjectFilter) ([]*domain.Project, error) {
	q := r.db.Collection(colProjects).Query
	if filter.Trade != "" {
		q = q.Where("trades", "array-contains", filter.Trade)
	}
	if filter.Location != "" {
		q = q.Where("location", "==", filter.Location)
	}
	if filter.Status != "" {
		q = q.Where("status", "==", filter.Status)
	}
	q = q.OrderBy("createdAt", fs.Desc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var projects []*domain.Project
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var p domain.Project
		if err := snap.DataTo(&p); err != nil {
			return nil, err
		}
		p.ID = snap.Ref.ID
		projects = append(projects, &p)
	}
	return projects, nil
}

// Create persists a new marketplace project under a generated key
func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	ref := r.db.Collection(colProjects).NewDoc()
	if _, err := ref.Set(ctx, project); err != nil {
		return err
	}
	project.ID = ref.ID
	return nil
}

// UpdateStatus updates only the status field
func (r *projectRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.db.Collection(colProjects).Doc(id).Update(ctx, []fs.Update{
		{Path: "status", Value: status},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil && isNotFound(err) {
		return domain.ErrNotFound
	}
	return err
}
