// Package dto defines the request and response shapes of the service endpoints.
package dto

import (
	"time"

	"portfolio_backend/internal/feature/services/domain/entity"
	"portfolio_backend/internal/feature/services/usecase"
	"portfolio_backend/internal/platform/patch"
	"portfolio_backend/internal/platform/validation"
)

// CreateServiceRequest is the body of POST /api/services.
type CreateServiceRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=255"`
	Description *string  `json:"description"`
	Pricing     *float64 `json:"pricing" binding:"omitempty,gte=0"`
}

// Input converts the request for the usecase.
func (r CreateServiceRequest) Input() usecase.CreateServiceInput {
	return usecase.CreateServiceInput{
		Title:       r.Title,
		Description: r.Description,
		Pricing:     r.Pricing,
	}
}

// UpdateServiceRequest is the body of PATCH /api/services/:service_id.
type UpdateServiceRequest struct {
	Title       patch.Field[string]  `json:"title" binding:"omitempty,min=1,max=255"`
	Description patch.Field[string]  `json:"description"`
	Pricing     patch.Field[float64] `json:"pricing" binding:"omitempty,gte=0"`
}

// NullViolations implements validation.NullChecker.
func (r *UpdateServiceRequest) NullViolations() []validation.FieldError {
	return validation.RejectNull(validation.Named{Name: "title", Field: r.Title})
}

// Patch returns the columns the request writes.
func (r UpdateServiceRequest) Patch() patch.Patch {
	p := patch.Patch{}
	patch.Put(p, "title", r.Title)
	patch.Put(p, "description", r.Description)
	patch.Put(p, "pricing", r.Pricing)
	return p
}

// ServiceResponse is the public shape of a service.
type ServiceResponse struct {
	ServiceID   string    `json:"service_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Pricing     *float64  `json:"pricing"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromEntity shapes a service.
func FromEntity(s *entity.Service) ServiceResponse {
	return ServiceResponse{
		ServiceID:   s.ID,
		Title:       s.Title,
		Description: s.Description,
		Pricing:     s.Pricing,
		CreatedAt:   s.CreatedAt,
	}
}

// FromEntities shapes a list of services.
func FromEntities(ss []entity.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(ss))
	for i := range ss {
		out = append(out, FromEntity(&ss[i]))
	}
	return out
}
