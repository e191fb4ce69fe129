// Package usecase implements the business logic for the services feature.
package usecase

import "portfolio_backend/internal/platform/apperror"

var (
	ErrServiceNotFound = apperror.NotFound(apperror.CodeServiceNotFound, "Service not found")
	ErrNoUpdateFields  = apperror.ErrNoUpdateFields
)
