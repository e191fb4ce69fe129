// Package dto defines the request and response shapes of the testimonial endpoints.
package dto

import (
	"time"

	"portfolio_backend/internal/feature/testimonials/domain/entity"
	"portfolio_backend/internal/feature/testimonials/usecase"
	"portfolio_backend/internal/platform/patch"
	"portfolio_backend/internal/platform/validation"
)

// CreateTestimonialRequest is the body of POST /api/testimonials.
type CreateTestimonialRequest struct {
	ProjectID string   `json:"project_id" binding:"required,max=36"`
	UserID    string   `json:"user_id" binding:"required,max=36"`
	Content   string   `json:"content" binding:"required,min=1"`
	Rating    *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
}

func (r CreateTestimonialRequest) Input() usecase.CreateTestimonialInput {
	return usecase.CreateTestimonialInput{
		ProjectID: r.ProjectID,
		UserID:    r.UserID,
		Content:   r.Content,
		Rating:    r.Rating,
	}
}

// UpdateTestimonialRequest is the body of PATCH /api/testimonials/:testimonial_id.
type UpdateTestimonialRequest struct {
	ProjectID patch.Field[string]  `json:"project_id" binding:"omitempty,min=1,max=36"`
	UserID    patch.Field[string]  `json:"user_id" binding:"omitempty,min=1,max=36"`
	Content   patch.Field[string]  `json:"content" binding:"omitempty,min=1"`
	Rating    patch.Field[float64] `json:"rating" binding:"omitempty,gte=0,lte=5"`
}

// NullViolations implements validation.NullChecker.
func (r *UpdateTestimonialRequest) NullViolations() []validation.FieldError {
	return validation.RejectNull(
		validation.Named{Name: "project_id", Field: r.ProjectID},
		validation.Named{Name: "user_id", Field: r.UserID},
		validation.Named{Name: "content", Field: r.Content},
	)
}

func (r UpdateTestimonialRequest) Patch() patch.Patch {
	p := patch.Patch{}
	patch.Put(p, "project_id", r.ProjectID)
	patch.Put(p, "user_id", r.UserID)
	patch.Put(p, "content", r.Content)
	patch.Put(p, "rating", r.Rating)
	return p
}

// TestimonialResponse is the public shape of a testimonial.
type TestimonialResponse struct {
	TestimonialID string    `json:"testimonial_id"`
	ProjectID     string    `json:"project_id"`
	UserID        string    `json:"user_id"`
	Content       string    `json:"content"`
	Rating        *float64  `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromEntity(t *entity.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		TestimonialID: t.ID,
		ProjectID:     t.ProjectID,
		UserID:        t.UserID,
		Content:       t.Content,
		Rating:        t.Rating,
		CreatedAt:     t.CreatedAt,
	}
}

func FromEntities(ts []entity.Testimonial) []TestimonialResponse {
	out := make([]TestimonialResponse, 0, len(ts))
	for i := range ts {
		out = append(out, FromEntity(&ts[i]))
	}
	return out
}
