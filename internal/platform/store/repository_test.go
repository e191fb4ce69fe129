package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolio_backend/internal/platform/patch"
	"portfolio_backend/internal/platform/search"
)

type widget struct {
	ID        string    `gorm:"column:widget_id;primaryKey;size:36"`
	Slug      string    `gorm:"uniqueIndex;size:255;not null"`
	Name      string    `gorm:"size:255;not null"`
	Note      *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

func (widget) TableName() string { return "widgets" }

var widgetTable = Table{
	ID:            "widget_id",
	Key:           "slug",
	SearchColumns: []string{"name", "note"},
	SortColumns:   []string{"name", "created_at"},
}

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// :memory: databases are per connection
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&widget{}), "failed to migrate table")
	return db
}

func strPtr(s string) *string { return &s }

func seed(t *testing.T, repo *Repository[widget], n int) []widget {
	t.Helper()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]widget, 0, n)
	for i := 0; i < n; i++ {
		w := widget{
			ID:        fmt.Sprintf("id-%02d", i),
			Slug:      fmt.Sprintf("widget-%d", i),
			Name:      fmt.Sprintf("Widget %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.Create(context.Background(), &w))
		out = append(out, w)
	}
	return out
}

func TestRepository_CreateAndGet(t *testing.T) {
	t.Run("created record is readable by key", func(t *testing.T) {
		repo := New[widget](setupTestDB(t), widgetTable)
		w := widget{ID: "a", Slug: "alpha", Name: "Alpha", Note: strPtr("first"), CreatedAt: time.Now().UTC()}

		require.NoError(t, repo.Create(context.Background(), &w))

		got, err := repo.Get(context.Background(), "alpha")
		require.NoError(t, err)
		assert.Equal(t, "a", got.ID)
		assert.Equal(t, "Alpha", got.Name)
		assert.Equal(t, "first", *got.Note)
	})

	t.Run("duplicate unique column", func(t *testing.T) {
		repo := New[widget](setupTestDB(t), widgetTable)
		require.NoError(t, repo.Create(context.Background(), &widget{ID: "a", Slug: "same", Name: "A", CreatedAt: time.Now()}))

		err := repo.Create(context.Background(), &widget{ID: "b", Slug: "same", Name: "B", CreatedAt: time.Now()})

		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("nil record", func(t *testing.T) {
		repo := New[widget](setupTestDB(t), widgetTable)

		assert.Error(t, repo.Create(context.Background(), nil))
	})

	t.Run("missing key", func(t *testing.T) {
		repo := New[widget](setupTestDB(t), widgetTable)

		got, err := repo.Get(context.Background(), "nope")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepository_FindByAndExists(t *testing.T) {
	repo := New[widget](setupTestDB(t), widgetTable)
	seed(t, repo, 2)

	got, err := repo.FindBy(context.Background(), "widget_id", "id-01")
	require.NoError(t, err)
	assert.Equal(t, "widget-1", got.Slug)

	ok, err := repo.Exists(context.Background(), "slug", "widget-0")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(context.Background(), "slug", "widget-9")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_Search(t *testing.T) {
	t.Run("default order is newest first", func(t *testing.T) {
		repo := New[widget](setupTestDB(t), widgetTable)
		seed(t, repo, 3)

		got, err := repo.Search(context.Background(), search.Params{Limit: 10, SortBy: "created_at", SortOrder: "desc"})

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"id-02", "id-01", "id-00"}, ids(got))
	})

	t.Run("pages partition the sorted set", func(t *testing.T) {
		repo := New[widget](setupTestDB(t), widgetTable)
		seed(t, repo, 4)
		ctx := context.Background()
		p := search.Params{SortBy: "created_at", SortOrder: "desc"}

		p.Limit, p.Offset = 10, 0
		all, err := repo.Search(ctx, p)
		require.NoError(t, err)

		p.Limit, p.Offset = 2, 0
		first, err := repo.Search(ctx, p)
		require.NoError(t, err)

		p.Offset = 2
		second, err := repo.Search(ctx, p)
		require.NoError(t, err)

		assert.Equal(t, ids(all), append(ids(first), ids(second)...))
		assert.NotContains(t, ids(second), ids(first)[0])
	})

	t.Run("ties are broken by id", func(t *testing.T) {
		repo := New[widget](setupTestDB(t), widgetTable)
		ctx := context.Background()
		for _, id := range []string{"c", "a", "b"} {
			require.NoError(t, repo.Create(ctx, &widget{ID: id, Slug: id, Name: "Same", CreatedAt: time.Now()}))
		}

		got, err := repo.Search(ctx, search.Params{Limit: 10, SortBy: "name", SortOrder: "asc"})

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, ids(got))
	})

	t.Run("query matches any search column case-insensitively", func(t *testing.T) {
		repo := New[widget](setupTestDB(t), widgetTable)
		ctx := context.Background()
		require.NoError(t, repo.Create(ctx, &widget{ID: "1", Slug: "one", Name: "Golang Tips", CreatedAt: time.Now()}))
		require.NoError(t, repo.Create(ctx, &widget{ID: "2", Slug: "two", Name: "Rust", Note: strPtr("compared with GO"), CreatedAt: time.Now()}))
		require.NoError(t, repo.Create(ctx, &widget{ID: "3", Slug: "three", Name: "Python", CreatedAt: time.Now()}))

		got, err := repo.Search(ctx, search.Params{Query: "go", Limit: 10, SortBy: "name", SortOrder: "asc"})

		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, ids(got))
	})

	t.Run("wildcards in the query match literally", func(t *testing.T) {
		repo := New[widget](setupTestDB(t), widgetTable)
		ctx := context.Background()
		require.NoError(t, repo.Create(ctx, &widget{ID: "1", Slug: "one", Name: "100% Go", CreatedAt: time.Now()}))
		require.NoError(t, repo.Create(ctx, &widget{ID: "2", Slug: "two", Name: "snake_case", CreatedAt: time.Now()}))
		require.NoError(t, repo.Create(ctx, &widget{ID: "3", Slug: "three", Name: "Wow!", CreatedAt: time.Now()}))
		require.NoError(t, repo.Create(ctx, &widget{ID: "4", Slug: "four", Name: "plain", CreatedAt: time.Now()}))

		tests := []struct {
			query string
			want  []string
		}{
			{query: "%", want: []string{"1"}},
			{query: "_", want: []string{"2"}},
			{query: "!", want: []string{"3"}},
			{query: "e_c", want: []string{"2"}},
			{query: "p_ain", want: []string{}},
		}
		for _, tt := range tests {
			got, err := repo.Search(ctx, search.Params{Query: tt.query, Limit: 10, SortBy: "name", SortOrder: "asc"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got), "query %q", tt.query)
		}
	})

	t.Run("empty table returns empty slice", func(t *testing.T) {
		repo := New[widget](setupTestDB(t), widgetTable)

		got, err := repo.Search(context.Background(), search.Params{Limit: 10, SortBy: "created_at", SortOrder: "desc"})

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("column outside allow-list", func(t *testing.T) {
		repo := New[widget](setupTestDB(t), widgetTable)

		_, err := repo.Search(context.Background(), search.Params{Limit: 10, SortBy: "slug", SortOrder: "asc"})

		assert.ErrorIs(t, err, ErrUnsortable)
	})
}

func TestRepository_Update(t *testing.T) {
	t.Run("only supplied columns change", func(t *testing.T) {
		repo := New[widget](setupTestDB(t), widgetTable)
		ctx := context.Background()
		require.NoError(t, repo.Create(ctx, &widget{ID: "a", Slug: "alpha", Name: "Alpha", Note: strPtr("keep"), CreatedAt: time.Now()}))

		got, err := repo.Update(ctx, "alpha", patch.Patch{"name": "Renamed"})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		require.NotNil(t, got.Note)
		assert.Equal(t, "keep", *got.Note)
	})

	t.Run("explicit null clears a nullable column", func(t *testing.T) {
		repo := New[widget](setupTestDB(t), widgetTable)
		ctx := context.Background()
		require.NoError(t, repo.Create(ctx, &widget{ID: "a", Slug: "alpha", Name: "Alpha", Note: strPtr("drop"), CreatedAt: time.Now()}))

		got, err := repo.Update(ctx, "alpha", patch.Patch{"note": nil})

		require.NoError(t, err)
		assert.Nil(t, got.Note)
	})

	t.Run("changing the key column re-reads by the new key", func(t *testing.T) {
		repo := New[widget](setupTestDB(t), widgetTable)
		ctx := context.Background()
		require.NoError(t, repo.Create(ctx, &widget{ID: "a", Slug: "alpha", Name: "Alpha", CreatedAt: time.Now()}))

		got, err := repo.Update(ctx, "alpha", patch.Patch{"slug": "alpha-2"})

		require.NoError(t, err)
		assert.Equal(t, "alpha-2", got.Slug)
		_, err = repo.Get(ctx, "alpha")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unique violation", func(t *testing.T) {
		repo := New[widget](setupTestDB(t), widgetTable)
		seed(t, repo, 2)

		_, err := repo.Update(context.Background(), "widget-0", patch.Patch{"slug": "widget-1"})

		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("missing key", func(t *testing.T) {
		repo := New[widget](setupTestDB(t), widgetTable)

		_, err := repo.Update(context.Background(), "nope", patch.Patch{"name": "x"})

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty patch", func(t *testing.T) {
		repo := New[widget](setupTestDB(t), widgetTable)

		_, err := repo.Update(context.Background(), "alpha", patch.Patch{})

		assert.Error(t, err)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo := New[widget](setupTestDB(t), widgetTable)
	seed(t, repo, 1)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, "widget-0"))
	assert.ErrorIs(t, repo.Delete(ctx, "widget-0"), ErrNotFound)
}

func TestIsDuplicate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"gorm translated", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"postgres unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"postgres other", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite message", errors.New("UNIQUE constraint failed: widgets.slug"), true},
		{"unrelated", errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsDuplicate(tt.err))
		})
	}
}

func ids(ws []widget) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.ID)
	}
	return out
}
