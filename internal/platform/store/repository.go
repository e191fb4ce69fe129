// Package store provides the gorm-backed repository shared by every resource.
//
// A Repository is parameterized by its entity type and a Table describing which
// columns identify, search and sort records. Updates are applied from a patch.Patch
// so only explicitly supplied columns are written.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio_backend/internal/platform/patch"
	"portfolio_backend/internal/platform/search"
)

const pgUniqueViolation = "23505"

var (
	// ErrNotFound is returned when no record matches the key.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("duplicate key")

	// ErrUnsortable is returned when a search asks for a column outside the sort allow-list.
	ErrUnsortable = errors.New("column is not sortable")
)

// Table is the column metadata of a resource table.
type Table struct {
	// ID is the primary identifier column. Used to break ties when sorting.
	ID string
	// Key is the column used by Get, Update and Delete. Defaults to ID.
	Key string
	// SearchColumns are matched case-insensitively by the free-text query.
	SearchColumns []string
	// SortColumns is the allow-list for search ordering.
	SortColumns []string
}

func (t Table) key() string {
	if t.Key != "" {
		return t.Key
	}
	return t.ID
}

// Repository persists entities of type M.
type Repository[M any] struct {
	db    *gorm.DB
	table Table
}

// New creates a Repository over db.
func New[M any](db *gorm.DB, table Table) *Repository[M] {
	return &Repository[M]{db: db, table: table}
}

// Create inserts m.
func (r *Repository[M]) Create(ctx context.Context, m *M) error {
	if m == nil {
		return errors.New("record must not be nil")
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if IsDuplicate(err) {
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// Get returns the record whose key column equals key.
func (r *Repository[M]) Get(ctx context.Context, key any) (*M, error) {
	return r.FindBy(ctx, r.table.key(), key)
}

// FindBy returns the first record whose column equals value.
func (r *Repository[M]) FindBy(ctx context.Context, column string, value any) (*M, error) {
	var m M
	err := r.db.WithContext(ctx).Where(eq(column, value)).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find record: %w", err)
	}
	return &m, nil
}

// Exists reports whether any record has column equal to value.
func (r *Repository[M]) Exists(ctx context.Context, column string, value any) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(new(M)).Where(eq(column, value)).Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return n > 0, nil
}

// likeEscaper makes LIKE wildcards in a query match literally.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// Search returns one page of records filtered by p.Query and ordered by p.SortBy.
// Ties are broken by the ID column in the same direction so pages never overlap.
func (r *Repository[M]) Search(ctx context.Context, p search.Params) ([]M, error) {
	if !slices.Contains(r.table.SortColumns, p.SortBy) {
		return nil, fmt.Errorf("%w: %q", ErrUnsortable, p.SortBy)
	}

	tx := r.db.WithContext(ctx).Model(new(M))

	if p.Query != "" && len(r.table.SearchColumns) > 0 {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(p.Query)) + "%"
		conds := make([]string, 0, len(r.table.SearchColumns))
		args := make([]any, 0, len(r.table.SearchColumns))
		for _, col := range r.table.SearchColumns {
			conds = append(conds, fmt.Sprintf("LOWER(%s) LIKE ? ESCAPE '!'", col))
			args = append(args, pattern)
		}
		tx = tx.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: p.SortBy}, Desc: p.Desc()})
	if p.SortBy != r.table.ID {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: r.table.ID}, Desc: p.Desc()})
	}

	out := make([]M, 0)
	if err := tx.Limit(p.Limit).Offset(p.Offset).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to search records: %w", err)
	}
	return out, nil
}

// Update writes the columns in p to the record identified by key and returns
// the stored result. When p changes the key column the record is re-read by the new key.
func (r *Repository[M]) Update(ctx context.Context, key any, p patch.Patch) (*M, error) {
	if p.Empty() {
		return nil, errors.New("patch must not be empty")
	}

	var m M
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(new(M)).Where(eq(r.table.key(), key)).Updates(map[string]any(p))
		if res.Error != nil {
			if IsDuplicate(res.Error) {
				return fmt.Errorf("%w: %v", ErrDuplicate, res.Error)
			}
			return fmt.Errorf("failed to update record: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		current := key
		if v, ok := p[r.table.key()]; ok {
			current = v
		}
		return tx.Where(eq(r.table.key(), current)).Take(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete removes the record identified by key.
func (r *Repository[M]) Delete(ctx context.Context, key any) error {
	res := r.db.WithContext(ctx).Where(eq(r.table.key(), key)).Delete(new(M))
	if res.Error != nil {
		return fmt.Errorf("failed to delete record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsDuplicate reports whether err is a unique-constraint violation.
func IsDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// sqlite without TranslateError
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func eq(column string, value any) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: column}, Value: value}
}
