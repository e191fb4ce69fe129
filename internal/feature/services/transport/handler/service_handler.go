// Package handler provides the HTTP handlers of the services feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/feature/services/domain/entity"
	"portfolio_backend/internal/feature/services/transport/http/dto"
	"portfolio_backend/internal/feature/services/usecase"
	"portfolio_backend/internal/platform/http/response"
	"portfolio_backend/internal/platform/patch"
	"portfolio_backend/internal/platform/search"
	"portfolio_backend/internal/platform/validation"
)

// ServiceUsecase defines the service operations the handler needs.
type ServiceUsecase interface {
	List(ctx context.Context, params search.Params) ([]entity.Service, error)
	Get(ctx context.Context, id string) (*entity.Service, error)
	Create(ctx context.Context, in usecase.CreateServiceInput) (*entity.Service, error)
	Update(ctx context.Context, id string, changes patch.Patch) (*entity.Service, error)
	Delete(ctx context.Context, id string) error
}

// ServiceHandler serves /api/services.
type ServiceHandler struct {
	services ServiceUsecase
}

// NewServiceHandler creates a ServiceHandler.
func NewServiceHandler(services ServiceUsecase) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// List handles GET /api/services.
func (h *ServiceHandler) List(c *gin.Context) {
	params, err := search.Bind(c.Request.URL.Query(), usecase.SortColumns)
	if err != nil {
		slog.Warn("service search validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}

	services, err := h.services.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntities(services))
}

// Get handles GET /api/services/:service_id.
func (h *ServiceHandler) Get(c *gin.Context) {
	service, err := h.services.Get(c.Request.Context(), c.Param("service_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(service))
}

// Create handles POST /api/services.
func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := validation.BindJSON(c, &req); err != nil {
		slog.Warn("service validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}

	service, err := h.services.Create(c.Request.Context(), req.Input())
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("service created", "service_id", service.ID)
	c.JSON(http.StatusCreated, dto.FromEntity(service))
}

// Update handles PATCH /api/services/:service_id.
func (h *ServiceHandler) Update(c *gin.Context) {
	var req dto.UpdateServiceRequest
	if err := validation.BindJSON(c, &req); err != nil {
		slog.Warn("service validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}

	service, err := h.services.Update(c.Request.Context(), c.Param("service_id"), req.Patch())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(service))
}

// Delete handles DELETE /api/services/:service_id.
func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.services.Delete(c.Request.Context(), c.Param("service_id")); err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("service deleted", "service_id", c.Param("service_id"))
	c.Status(http.StatusNoContent)
}
