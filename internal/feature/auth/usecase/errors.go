// Package usecase implements the business logic for the auth feature.
package usecase

import "portfolio_backend/internal/platform/apperror"

var (
	// ErrUserNotFound is returned when a user cannot be found by ID.
	ErrUserNotFound = apperror.NotFound(apperror.CodeUserNotFound, "User not found")

	// ErrEmailAlreadyExists is returned when registering an email that is already taken.
	ErrEmailAlreadyExists = apperror.Duplicate(apperror.CodeUserExists, "User with this email already exists")

	// ErrInvalidCredentials is returned for an unknown email or a wrong password.
	ErrInvalidCredentials = apperror.ErrInvalidCredentials
)
