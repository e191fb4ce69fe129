// Package handler provides the HTTP handler of the contact feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/feature/contact/domain/entity"
	"portfolio_backend/internal/feature/contact/transport/http/dto"
	"portfolio_backend/internal/feature/contact/usecase"
	"portfolio_backend/internal/platform/http/response"
	"portfolio_backend/internal/platform/validation"
)

// ContactUsecase defines the contact operations the handler needs.
type ContactUsecase interface {
	Submit(ctx context.Context, in usecase.SubmitInput) (*entity.ContactRequest, error)
}

// ContactHandler serves /api/contact.
type ContactHandler struct {
	contact ContactUsecase
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(contact ContactUsecase) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := validation.BindJSON(c, &req); err != nil {
		slog.Warn("contact validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}

	r, err := h.contact.Submit(c.Request.Context(), req.Input())
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("contact request stored", "request_id", r.ID)
	c.JSON(http.StatusCreated, dto.FromEntity(r))
}
