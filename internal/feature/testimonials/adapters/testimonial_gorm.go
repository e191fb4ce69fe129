// Package adapters provides the storage implementation for the testimonials feature.
package adapters

import (
	"gorm.io/gorm"

	"portfolio_backend/internal/feature/testimonials/domain/entity"
	"portfolio_backend/internal/feature/testimonials/usecase"
	"portfolio_backend/internal/platform/store"
)

// TestimonialTable is the column metadata of the testimonials table.
var TestimonialTable = store.Table{
	ID:            "testimonial_id",
	SearchColumns: []string{"content"},
	SortColumns:   usecase.SortColumns,
}

var _ usecase.TestimonialRepository = (*store.Repository[entity.Testimonial])(nil)

// NewTestimonialRepository creates a gorm-backed testimonial repository.
func NewTestimonialRepository(db *gorm.DB) *store.Repository[entity.Testimonial] {
	return store.New[entity.Testimonial](db, TestimonialTable)
}
