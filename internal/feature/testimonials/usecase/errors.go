// Package usecase implements the business logic for the testimonials feature.
package usecase

import "portfolio_backend/internal/platform/apperror"

var (
	// ErrTestimonialNotFound is returned when no testimonial has the requested id.
	ErrTestimonialNotFound = apperror.NotFound(apperror.CodeTestimonialNotFound, "Testimonial not found")

	// ErrNoUpdateFields is returned when an update supplies no fields.
	ErrNoUpdateFields = apperror.ErrNoUpdateFields
)
