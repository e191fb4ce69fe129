// Package handler provides the HTTP handlers of the blog feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/feature/blog/domain/entity"
	"portfolio_backend/internal/feature/blog/transport/http/dto"
	"portfolio_backend/internal/feature/blog/usecase"
	"portfolio_backend/internal/platform/http/response"
	"portfolio_backend/internal/platform/patch"
	"portfolio_backend/internal/platform/search"
	"portfolio_backend/internal/platform/validation"
)

// PostUsecase defines the blog operations the handler needs.
type PostUsecase interface {
	List(ctx context.Context, params search.Params) ([]entity.Post, error)
	Get(ctx context.Context, slug string) (*entity.Post, error)
	Create(ctx context.Context, in usecase.CreatePostInput) (*entity.Post, error)
	Update(ctx context.Context, slug string, changes patch.Patch) (*entity.Post, error)
	Delete(ctx context.Context, slug string) error
}

// PostHandler serves /api/blog.
type PostHandler struct {
	posts PostUsecase
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(posts PostUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

// List handles GET /api/blog.
func (h *PostHandler) List(c *gin.Context) {
	params, err := search.Bind(c.Request.URL.Query(), usecase.SortColumns)
	if err != nil {
		slog.Warn("blog search validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}

	posts, err := h.posts.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(posts))
}

// Get handles GET /api/blog/:post_slug.
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.posts.Get(c.Request.Context(), c.Param("post_slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(post))
}

// Create handles POST /api/blog.
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := validation.BindJSON(c, &req); err != nil {
		slog.Warn("blog post validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}

	post, err := h.posts.Create(c.Request.Context(), req.Input())
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("blog post created", "post_id", post.ID, "post_slug", post.Slug)
	c.JSON(http.StatusCreated, dto.FromEntity(post))
}

// Update handles PATCH /api/blog/:post_slug.
func (h *PostHandler) Update(c *gin.Context) {
	var req dto.UpdatePostRequest
	if err := validation.BindJSON(c, &req); err != nil {
		slog.Warn("blog post validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}

	post, err := h.posts.Update(c.Request.Context(), c.Param("post_slug"), req.Patch())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(post))
}

// Delete handles DELETE /api/blog/:post_slug.
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.posts.Delete(c.Request.Context(), c.Param("post_slug")); err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("blog post deleted", "post_slug", c.Param("post_slug"))
	c.Status(http.StatusNoContent)
}
