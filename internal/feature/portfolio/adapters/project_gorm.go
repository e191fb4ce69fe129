// Package adapters provides the storage implementation for the portfolio feature.
package adapters

import (
	"gorm.io/gorm"

	"portfolio_backend/internal/feature/portfolio/domain/entity"
	"portfolio_backend/internal/feature/portfolio/usecase"
	"portfolio_backend/internal/platform/store"
)

// ProjectTable is the column metadata of the projects table.
var ProjectTable = store.Table{
	ID:            "project_id",
	SearchColumns: []string{"title", "description", "category"},
	SortColumns:   usecase.SortColumns,
}

var _ usecase.ProjectRepository = (*store.Repository[entity.Project])(nil)

// NewProjectRepository creates a gorm-backed project repository.
func NewProjectRepository(db *gorm.DB) *store.Repository[entity.Project] {
	return store.New[entity.Project](db, ProjectTable)
}
