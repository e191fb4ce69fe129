package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"portfolio_backend/internal/feature/services/domain/entity"
	"portfolio_backend/internal/platform/patch"
	"portfolio_backend/internal/platform/search"
	"portfolio_backend/internal/platform/store"
)

// SortColumns are the columns a service list may be sorted by.
var SortColumns = []string{"title", "pricing", "created_at"}

// ServiceRepository abstracts service persistence.
type ServiceRepository interface {
	Create(ctx context.Context, s *entity.Service) error
	Get(ctx context.Context, key any) (*entity.Service, error)
	Search(ctx context.Context, params search.Params) ([]entity.Service, error)
	Update(ctx context.Context, key any, p patch.Patch) (*entity.Service, error)
	Delete(ctx context.Context, key any) error
}

// CreateServiceInput is a validated create request.
type CreateServiceInput struct {
	Title       string
	Description *string
	Pricing     *float64
}

type serviceUsecase struct {
	repo ServiceRepository
	now  func() time.Time
}

// NewServiceUsecase creates the service usecase.
func NewServiceUsecase(repo ServiceRepository) *serviceUsecase {
	return &serviceUsecase{repo: repo, now: time.Now}
}

// List returns one page of services.
func (u *serviceUsecase) List(ctx context.Context, params search.Params) ([]entity.Service, error) {
	return u.repo.Search(ctx, params)
}

// Get returns a service by id.
func (u *serviceUsecase) Get(ctx context.Context, id string) (*entity.Service, error) {
	s, err := u.repo.Get(ctx, id)
	return s, mapErr(err)
}

// Create stores a new service.
func (u *serviceUsecase) Create(ctx context.Context, in CreateServiceInput) (*entity.Service, error) {
	s := &entity.Service{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Pricing:     in.Pricing,
		CreatedAt:   u.now().UTC(),
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Update applies the supplied fields only.
func (u *serviceUsecase) Update(ctx context.Context, id string, changes patch.Patch) (*entity.Service, error) {
	if changes.Empty() {
		return nil, ErrNoUpdateFields
	}
	s, err := u.repo.Update(ctx, id, changes)
	return s, mapErr(err)
}

// Delete removes a service.
func (u *serviceUsecase) Delete(ctx context.Context, id string) error {
	return mapErr(u.repo.Delete(ctx, id))
}

func mapErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrServiceNotFound
	}
	return err
}
