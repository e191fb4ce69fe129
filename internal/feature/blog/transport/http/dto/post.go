// Package dto defines the request and response shapes of the blog endpoints.
package dto

import (
	"time"

	"portfolio_backend/internal/feature/blog/domain/entity"
	"portfolio_backend/internal/feature/blog/usecase"
	"portfolio_backend/internal/platform/patch"
	"portfolio_backend/internal/platform/validation"
)

// CreatePostRequest is the body of POST /api/blog.
type CreatePostRequest struct {
	PostSlug string  `json:"post_slug" binding:"required,min=1,max=255,slug"`
	Title    string  `json:"title" binding:"required,min=1,max=255"`
	Content  string  `json:"content" binding:"required,min=1"`
	Category *string `json:"category" binding:"omitempty,max=255"`
}

// Input converts the request for the usecase.
func (r CreatePostRequest) Input() usecase.CreatePostInput {
	return usecase.CreatePostInput{
		Slug:     r.PostSlug,
		Title:    r.Title,
		Content:  r.Content,
		Category: r.Category,
	}
}

// UpdatePostRequest is the body of PATCH /api/blog/:post_slug.
type UpdatePostRequest struct {
	PostSlug patch.Field[string] `json:"post_slug" binding:"omitempty,min=1,max=255,slug"`
	Title    patch.Field[string] `json:"title" binding:"omitempty,min=1,max=255"`
	Content  patch.Field[string] `json:"content" binding:"omitempty,min=1"`
	Category patch.Field[string] `json:"category" binding:"omitempty,max=255"`
}

// NullViolations implements validation.NullChecker.
func (r *UpdatePostRequest) NullViolations() []validation.FieldError {
	return validation.RejectNull(
		validation.Named{Name: "post_slug", Field: r.PostSlug},
		validation.Named{Name: "title", Field: r.Title},
		validation.Named{Name: "content", Field: r.Content},
	)
}

// Patch returns the columns the request writes.
func (r UpdatePostRequest) Patch() patch.Patch {
	p := patch.Patch{}
	patch.Put(p, usecase.SlugColumn, r.PostSlug)
	patch.Put(p, "title", r.Title)
	patch.Put(p, "content", r.Content)
	patch.Put(p, "category", r.Category)
	return p
}

// PostResponse is the public shape of a blog post.
type PostResponse struct {
	PostID    string    `json:"post_id"`
	PostSlug  string    `json:"post_slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// FromEntity shapes a post.
func FromEntity(p *entity.Post) PostResponse {
	return PostResponse{
		PostID:    p.ID,
		PostSlug:  p.Slug,
		Title:     p.Title,
		Content:   p.Content,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
	}
}

// FromEntities shapes a list of posts.
func FromEntities(ps []entity.Post) []PostResponse {
	out := make([]PostResponse, 0, len(ps))
	for i := range ps {
		out = append(out, FromEntity(&ps[i]))
	}
	return out
}
