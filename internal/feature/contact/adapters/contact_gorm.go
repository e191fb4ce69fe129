// Package adapters provides storage and notification for the contact feature.
package adapters

import (
	"gorm.io/gorm"

	"portfolio_backend/internal/feature/contact/domain/entity"
	"portfolio_backend/internal/feature/contact/usecase"
	"portfolio_backend/internal/platform/store"
)

// ContactTable is the column metadata of the contact_requests table.
var ContactTable = store.Table{ID: "request_id"}

var _ usecase.ContactRepository = (*store.Repository[entity.ContactRequest])(nil)

// NewContactRepository creates a gorm-backed contact request repository.
func NewContactRepository(db *gorm.DB) *store.Repository[entity.ContactRequest] {
	return store.New[entity.ContactRequest](db, ContactTable)
}
