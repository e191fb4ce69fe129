package usecase

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"

	"portfolio_backend/internal/feature/blog/domain/entity"
	"portfolio_backend/internal/platform/patch"
	"portfolio_backend/internal/platform/search"
	"portfolio_backend/internal/platform/store"
)

// SlugColumn is the column posts are addressed by.
const SlugColumn = "post_slug"

// SortColumns are the columns a post list may be sorted by.
var SortColumns = []string{"title", "created_at"}

// PostRepository abstracts blog post persistence. Get, Update and Delete are keyed by slug.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	Get(ctx context.Context, key any) (*entity.Post, error)
	Exists(ctx context.Context, column string, value any) (bool, error)
	Search(ctx context.Context, params search.Params) ([]entity.Post, error)
	Update(ctx context.Context, key any, p patch.Patch) (*entity.Post, error)
	Delete(ctx context.Context, key any) error
}

// CreatePostInput is a validated create request.
type CreatePostInput struct {
	Slug     string
	Title    string
	Content  string
	Category *string
}

type postUsecase struct {
	repo PostRepository
	now  func() time.Time
}

// NewPostUsecase creates the blog post usecase.
func NewPostUsecase(repo PostRepository) *postUsecase {
	return &postUsecase{repo: repo, now: time.Now}
}

// List returns one page of posts.
func (u *postUsecase) List(ctx context.Context, params search.Params) ([]entity.Post, error) {
	return u.repo.Search(ctx, params)
}

// Get returns the post with slug.
func (u *postUsecase) Get(ctx context.Context, slug string) (*entity.Post, error) {
	p, err := u.repo.Get(ctx, slug)
	return p, mapErr(err)
}

// Create stores a new post. The pre-check gives the common case a clear error;
// the unique index on post_slug settles concurrent submissions.
func (u *postUsecase) Create(ctx context.Context, in CreatePostInput) (*entity.Post, error) {
	if err := u.ensureSlugFree(ctx, in.Slug); err != nil {
		return nil, err
	}

	p := &entity.Post{
		ID:        uuid.NewString(),
		Slug:      in.Slug,
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		CreatedAt: u.now().UTC(),
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

// Update applies the supplied fields to the post with slug. A new slug must not
// belong to another post; resending the current slug writes nothing.
func (u *postUsecase) Update(ctx context.Context, slug string, changes patch.Patch) (*entity.Post, error) {
	if v, ok := changes[SlugColumn]; ok {
		if next, _ := v.(string); next == slug {
			changes = maps.Clone(changes)
			delete(changes, SlugColumn)
		} else if err := u.ensureSlugFree(ctx, next); err != nil {
			return nil, err
		}
	}
	if changes.Empty() {
		return nil, ErrNoUpdateFields
	}

	p, err := u.repo.Update(ctx, slug, changes)
	return p, mapErr(err)
}

// Delete removes the post with slug.
func (u *postUsecase) Delete(ctx context.Context, slug string) error {
	return mapErr(u.repo.Delete(ctx, slug))
}

func (u *postUsecase) ensureSlugFree(ctx context.Context, slug string) error {
	taken, err := u.repo.Exists(ctx, SlugColumn, slug)
	if err != nil {
		return fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return ErrSlugAlreadyExists
	}
	return nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrPostNotFound
	case errors.Is(err, store.ErrDuplicate):
		return ErrSlugAlreadyExists.WithCause(err)
	}
	return err
}
