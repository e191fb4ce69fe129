// Package handler provides the HTTP handlers of the portfolio feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/feature/portfolio/domain/entity"
	"portfolio_backend/internal/feature/portfolio/transport/http/dto"
	"portfolio_backend/internal/feature/portfolio/usecase"
	"portfolio_backend/internal/platform/http/response"
	"portfolio_backend/internal/platform/patch"
	"portfolio_backend/internal/platform/search"
	"portfolio_backend/internal/platform/validation"
)

// ProjectUsecase defines the project operations the handler needs.
type ProjectUsecase interface {
	List(ctx context.Context, params search.Params) ([]entity.Project, error)
	Get(ctx context.Context, id string) (*entity.Project, error)
	Create(ctx context.Context, in usecase.CreateProjectInput) (*entity.Project, error)
	Update(ctx context.Context, id string, changes patch.Patch) (*entity.Project, error)
	Delete(ctx context.Context, id string) error
}

// ProjectHandler serves /api/portfolio.
type ProjectHandler struct {
	projects ProjectUsecase
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(projects ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List handles GET /api/portfolio.
func (h *ProjectHandler) List(c *gin.Context) {
	params, err := search.Bind(c.Request.URL.Query(), usecase.SortColumns)
	if err != nil {
		slog.Warn("project search validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}

	projects, err := h.projects.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(projects))
}

// Get handles GET /api/portfolio/:project_id.
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projects.Get(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(project))
}

// Create handles POST /api/portfolio.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := validation.BindJSON(c, &req); err != nil {
		slog.Warn("project validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}

	project, err := h.projects.Create(c.Request.Context(), req.Input())
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("project created", "project_id", project.ID)
	c.JSON(http.StatusCreated, dto.FromEntity(project))
}

// Update handles PATCH /api/portfolio/:project_id.
func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := validation.BindJSON(c, &req); err != nil {
		slog.Warn("project validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}

	project, err := h.projects.Update(c.Request.Context(), c.Param("project_id"), req.Patch())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(project))
}

// Delete handles DELETE /api/portfolio/:project_id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), c.Param("project_id")); err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("project deleted", "project_id", c.Param("project_id"))
	c.Status(http.StatusNoContent)
}
