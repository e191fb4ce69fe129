package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"portfolio_backend/internal/feature/portfolio/domain/entity"
	"portfolio_backend/internal/platform/patch"
	"portfolio_backend/internal/platform/search"
	"portfolio_backend/internal/platform/store"
)

// SortColumns are the columns a project list may be sorted by.
var SortColumns = []string{"title", "created_at"}

// ProjectRepository abstracts project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	Get(ctx context.Context, key any) (*entity.Project, error)
	Search(ctx context.Context, params search.Params) ([]entity.Project, error)
	Update(ctx context.Context, key any, p patch.Patch) (*entity.Project, error)
	Delete(ctx context.Context, key any) error
}

// CreateProjectInput is a validated create request.
type CreateProjectInput struct {
	Title       string
	Description *string
	MediaURLs   *string
	Category    *string
}

type projectUsecase struct {
	repo ProjectRepository
	now  func() time.Time
}

// NewProjectUsecase creates the project usecase.
func NewProjectUsecase(repo ProjectRepository) *projectUsecase {
	return &projectUsecase{repo: repo, now: time.Now}
}

// List returns one page of projects.
func (u *projectUsecase) List(ctx context.Context, params search.Params) ([]entity.Project, error) {
	return u.repo.Search(ctx, params)
}

// Get returns a project by id.
func (u *projectUsecase) Get(ctx context.Context, id string) (*entity.Project, error) {
	p, err := u.repo.Get(ctx, id)
	return p, mapErr(err)
}

// Create stores a new project with a fresh id and creation time.
func (u *projectUsecase) Create(ctx context.Context, in CreateProjectInput) (*entity.Project, error) {
	p := &entity.Project{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		MediaURLs:   in.MediaURLs,
		Category:    in.Category,
		CreatedAt:   u.now().UTC(),
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update applies the supplied fields only.
func (u *projectUsecase) Update(ctx context.Context, id string, changes patch.Patch) (*entity.Project, error) {
	if changes.Empty() {
		return nil, ErrNoUpdateFields
	}
	p, err := u.repo.Update(ctx, id, changes)
	return p, mapErr(err)
}

// Delete removes a project.
func (u *projectUsecase) Delete(ctx context.Context, id string) error {
	return mapErr(u.repo.Delete(ctx, id))
}

func mapErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrProjectNotFound
	}
	return err
}
