package firestore

import (
	"context"
	"time"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/DrekStyler/handypro-api/internal/domain"
)

type portfolioRepo struct {
	db *fs.Client
}

// NewPortfolioRepository creates a new portfolio repository
func NewPortfolioRepository(db *fs.Client) domain.PortfolioRepository {
	return &portfolioRepo{db: db}
}

// ListByOwner returns the owner's projects ordered by completion date descending
func (r *portfolioRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.PortfolioProject, error) {
	iter := r.db.Collection(colPortfolio).
		Where("ownerId", "==", ownerID).
		OrderBy("completionDate", fs.Desc).
		Documents(ctx)
	defer iter.Stop()

	var projects []*domain.PortfolioProject
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var p domain.PortfolioProject
		if err := snap.DataTo(&p); err != nil {
			return nil, err
		}
		p.ID = snap.Ref.ID
		projects = append(projects, &p)
	}
	return projects, nil
}

// GetByID retrieves a single portfolio project
func (r *portfolioRepo) GetByID(ctx context.Context, id string) (*domain.PortfolioProject, error) {
	snap, err := r.db.Collection(colPortfolio).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var p domain.PortfolioProject
	if err := snap.DataTo(&p); err != nil {
		return nil, err
	}
	p.ID = snap.Ref.ID
	return &p, nil
}

// Create persists a new portfolio project under a generated key
func (r *portfolioRepo) Create(ctx context.Context, project *domain.PortfolioProject) error {
	project.CreatedAt = time.Now()

	ref := r.db.Collection(colPortfolio).NewDoc()
	if _, err := ref.Set(ctx, project); err != nil {
		return err
	}
	project.ID = ref.ID
	return nil
}

// Delete removes a portfolio project document
func (r *portfolioRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Collection(colPortfolio).Doc(id).Delete(ctx)
	return err
}
