// Package usecase implements the business logic for the portfolio feature.
package usecase

import "portfolio_backend/internal/platform/apperror"

var (
	// ErrProjectNotFound is returned when no project has the requested id.
	ErrProjectNotFound = apperror.NotFound(apperror.CodeProjectNotFound, "Project not found")

	// ErrNoUpdateFields is returned when an update supplies no fields.
	ErrNoUpdateFields = apperror.ErrNoUpdateFields
)
