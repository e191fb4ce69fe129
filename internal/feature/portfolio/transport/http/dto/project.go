// Package dto defines the request and response shapes of the portfolio endpoints.
package dto

import (
	"time"

	"portfolio_backend/internal/feature/portfolio/domain/entity"
	"portfolio_backend/internal/feature/portfolio/usecase"
	"portfolio_backend/internal/platform/patch"
	"portfolio_backend/internal/platform/validation"
)

// CreateProjectRequest is the body of POST /api/portfolio.
type CreateProjectRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Description *string `json:"description"`
	MediaURLs   *string `json:"media_urls"`
	Category    *string `json:"category" binding:"omitempty,max=255"`
}

// Input converts the request for the usecase.
func (r CreateProjectRequest) Input() usecase.CreateProjectInput {
	return usecase.CreateProjectInput{
		Title:       r.Title,
		Description: r.Description,
		MediaURLs:   r.MediaURLs,
		Category:    r.Category,
	}
}

// UpdateProjectRequest is the body of PATCH /api/portfolio/:project_id.
type UpdateProjectRequest struct {
	Title       patch.Field[string] `json:"title" binding:"omitempty,min=1,max=255"`
	Description patch.Field[string] `json:"description"`
	MediaURLs   patch.Field[string] `json:"media_urls"`
	Category    patch.Field[string] `json:"category" binding:"omitempty,max=255"`
}

// NullViolations implements validation.NullChecker.
func (r *UpdateProjectRequest) NullViolations() []validation.FieldError {
	return validation.RejectNull(validation.Named{Name: "title", Field: r.Title})
}

// Patch returns the columns the request writes.
func (r UpdateProjectRequest) Patch() patch.Patch {
	p := patch.Patch{}
	patch.Put(p, "title", r.Title)
	patch.Put(p, "description", r.Description)
	patch.Put(p, "media_urls", r.MediaURLs)
	patch.Put(p, "category", r.Category)
	return p
}

// ProjectResponse is the public shape of a project.
type ProjectResponse struct {
	ProjectID   string    `json:"project_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	MediaURLs   *string   `json:"media_urls"`
	Category    *string   `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromEntity shapes a project.
func FromEntity(p *entity.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:   p.ID,
		Title:       p.Title,
		Description: p.Description,
		MediaURLs:   p.MediaURLs,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
	}
}

// FromEntities shapes a list of projects.
func FromEntities(ps []entity.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for i := range ps {
		out = append(out, FromEntity(&ps[i]))
	}
	return out
}
