// Package adapters provides the storage implementations for the auth feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"portfolio_backend/internal/feature/auth/domain/entity"
	"portfolio_backend/internal/feature/auth/usecase"
	"portfolio_backend/internal/platform/store"
)

// UserTable is the column metadata of the users table.
var UserTable = store.Table{
	ID:            "user_id",
	SearchColumns: []string{"name", "email"},
	SortColumns:   []string{"name", "created_at"},
}

// userGorm implements usecase.UserRepository on top of the shared store.
type userGorm struct {
	*store.Repository[entity.User]
}

var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository creates a gorm-backed user repository.
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{Repository: store.New[entity.User](db, UserTable)}
}

// FindByID retrieves the user with the given id.
func (r *userGorm) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.Get(ctx, id)
}

// FindByEmail retrieves the user registered with email. Callers pass the normalized address.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.FindBy(ctx, "email", email)
}

// EmailExists reports whether email is already registered.
func (r *userGorm) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.Exists(ctx, "email", email)
}
