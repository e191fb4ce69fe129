// Package usecase implements the business logic for the blog feature.
package usecase

import "portfolio_backend/internal/platform/apperror"

var (
	// ErrPostNotFound is returned when no post has the requested slug.
	ErrPostNotFound = apperror.NotFound(apperror.CodeBlogPostNotFound, "Blog post not found")

	// ErrSlugAlreadyExists is returned when another post already uses the slug.
	ErrSlugAlreadyExists = apperror.Duplicate(apperror.CodeSlugExists, "A blog post with this slug already exists")

	ErrNoUpdateFields = apperror.ErrNoUpdateFields
)
