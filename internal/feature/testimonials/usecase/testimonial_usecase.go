package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"portfolio_backend/internal/feature/testimonials/domain/entity"
	"portfolio_backend/internal/platform/patch"
	"portfolio_backend/internal/platform/search"
	"portfolio_backend/internal/platform/store"
)

// SortColumns are the columns a testimonial list may be sorted by.
var SortColumns = []string{"content", "rating", "created_at"}

// TestimonialRepository abstracts testimonial persistence.
type TestimonialRepository interface {
	Create(ctx context.Context, t *entity.Testimonial) error
	Get(ctx context.Context, key any) (*entity.Testimonial, error)
	Search(ctx context.Context, params search.Params) ([]entity.Testimonial, error)
	Update(ctx context.Context, key any, p patch.Patch) (*entity.Testimonial, error)
	Delete(ctx context.Context, key any) error
}

// CreateTestimonialInput is a validated create request.
type CreateTestimonialInput struct {
	ProjectID string
	UserID    string
	Content   string
	Rating    *float64
}

type testimonialUsecase struct {
	repo TestimonialRepository
	now  func() time.Time
}

// NewTestimonialUsecase creates the testimonial usecase.
func NewTestimonialUsecase(repo TestimonialRepository) *testimonialUsecase {
	return &testimonialUsecase{repo: repo, now: time.Now}
}

func (u *testimonialUsecase) List(ctx context.Context, params search.Params) ([]entity.Testimonial, error) {
	return u.repo.Search(ctx, params)
}

func (u *testimonialUsecase) Get(ctx context.Context, id string) (*entity.Testimonial, error) {
	t, err := u.repo.Get(ctx, id)
	return t, mapErr(err)
}

func (u *testimonialUsecase) Create(ctx context.Context, in CreateTestimonialInput) (*entity.Testimonial, error) {
	t := &entity.Testimonial{
		ID:        uuid.NewString(),
		ProjectID: in.ProjectID,
		UserID:    in.UserID,
		Content:   in.Content,
		Rating:    in.Rating,
		CreatedAt: u.now().UTC(),
	}
	if err := u.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (u *testimonialUsecase) Update(ctx context.Context, id string, changes patch.Patch) (*entity.Testimonial, error) {
	if changes.Empty() {
		return nil, ErrNoUpdateFields
	}
	t, err := u.repo.Update(ctx, id, changes)
	return t, mapErr(err)
}

func (u *testimonialUsecase) Delete(ctx context.Context, id string) error {
	return mapErr(u.repo.Delete(ctx, id))
}

func mapErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrTestimonialNotFound
	}
	return err
}
