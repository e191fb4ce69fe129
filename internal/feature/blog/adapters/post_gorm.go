// Package adapters provides the storage implementation for the blog feature.
package adapters

import (
	"gorm.io/gorm"

	"portfolio_backend/internal/feature/blog/domain/entity"
	"portfolio_backend/internal/feature/blog/usecase"
	"portfolio_backend/internal/platform/store"
)

// PostTable is the column metadata of the blog_posts table. Posts are addressed by slug.
var PostTable = store.Table{
	ID:            "post_id",
	Key:           usecase.SlugColumn,
	SearchColumns: []string{"title", "content", "category"},
	SortColumns:   usecase.SortColumns,
}

var _ usecase.PostRepository = (*store.Repository[entity.Post])(nil)

// NewPostRepository creates a gorm-backed blog post repository.
func NewPostRepository(db *gorm.DB) *store.Repository[entity.Post] {
	return store.New[entity.Post](db, PostTable)
}
