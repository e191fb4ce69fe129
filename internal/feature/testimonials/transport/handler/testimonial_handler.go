// Package handler provides the HTTP handlers of the testimonials feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/feature/testimonials/domain/entity"
	"portfolio_backend/internal/feature/testimonials/transport/http/dto"
	"portfolio_backend/internal/feature/testimonials/usecase"
	"portfolio_backend/internal/platform/http/response"
	"portfolio_backend/internal/platform/patch"
	"portfolio_backend/internal/platform/search"
	"portfolio_backend/internal/platform/validation"
)

// TestimonialUsecase defines the testimonial operations the handler needs.
type TestimonialUsecase interface {
	List(ctx context.Context, params search.Params) ([]entity.Testimonial, error)
	Get(ctx context.Context, id string) (*entity.Testimonial, error)
	Create(ctx context.Context, in usecase.CreateTestimonialInput) (*entity.Testimonial, error)
	Update(ctx context.Context, id string, changes patch.Patch) (*entity.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

// TestimonialHandler serves /api/testimonials.
type TestimonialHandler struct {
	testimonials TestimonialUsecase
}

func NewTestimonialHandler(testimonials TestimonialUsecase) *TestimonialHandler {
	return &TestimonialHandler{testimonials: testimonials}
}

// List handles GET /api/testimonials.
func (h *TestimonialHandler) List(c *gin.Context) {
	params, err := search.Bind(c.Request.URL.Query(), usecase.SortColumns)
	if err != nil {
		slog.Warn("testimonial search validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}

	testimonials, err := h.testimonials.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(testimonials))
}

// Get handles GET /api/testimonials/:testimonial_id.
func (h *TestimonialHandler) Get(c *gin.Context) {
	t, err := h.testimonials.Get(c.Request.Context(), c.Param("testimonial_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(t))
}

// Create handles POST /api/testimonials.
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req dto.CreateTestimonialRequest
	if err := validation.BindJSON(c, &req); err != nil {
		slog.Warn("testimonial validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}

	t, err := h.testimonials.Create(c.Request.Context(), req.Input())
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("testimonial created", "testimonial_id", t.ID, "project_id", t.ProjectID)
	c.JSON(http.StatusCreated, dto.FromEntity(t))
}

// Update handles PATCH /api/testimonials/:testimonial_id.
func (h *TestimonialHandler) Update(c *gin.Context) {
	var req dto.UpdateTestimonialRequest
	if err := validation.BindJSON(c, &req); err != nil {
		slog.Warn("testimonial validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}

	t, err := h.testimonials.Update(c.Request.Context(), c.Param("testimonial_id"), req.Patch())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(t))
}

// Delete handles DELETE /api/testimonials/:testimonial_id.
func (h *TestimonialHandler) Delete(c *gin.Context) {
	if err := h.testimonials.Delete(c.Request.Context(), c.Param("testimonial_id")); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
