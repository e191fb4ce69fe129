// Package adapters provides the storage implementation for the services feature.
package adapters

import (
	"gorm.io/gorm"

	"portfolio_backend/internal/feature/services/domain/entity"
	"portfolio_backend/internal/feature/services/usecase"
	"portfolio_backend/internal/platform/store"
)

// ServiceTable is the column metadata of the services table.
var ServiceTable = store.Table{
	ID:            "service_id",
	SearchColumns: []string{"title", "description"},
	SortColumns:   usecase.SortColumns,
}

var _ usecase.ServiceRepository = (*store.Repository[entity.Service])(nil)

// NewServiceRepository creates a gorm-backed service repository.
func NewServiceRepository(db *gorm.DB) *store.Repository[entity.Service] {
	return store.New[entity.Service](db, ServiceTable)
}
