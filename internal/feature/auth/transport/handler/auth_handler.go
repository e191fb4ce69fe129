// Package handler provides the HTTP handlers of the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/feature/auth/domain/entity"
	"portfolio_backend/internal/feature/auth/transport/http/dto"
	"portfolio_backend/internal/feature/auth/usecase"
	"portfolio_backend/internal/platform/apperror"
	"portfolio_backend/internal/platform/http/response"
	"portfolio_backend/internal/platform/validation"
)

// AuthUsecase is the auth business logic the handler depends on.
type AuthUsecase interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error)
	Login(ctx context.Context, email, password string) (*usecase.AuthResult, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
}

// AuthHandler serves registration, login and user lookup.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/auth/register.
// - 400 on validation errors or a taken email
// - 201 with the user and a token on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := validation.BindJSON(c, &req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}

	res, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.PasswordHash,
	})
	if err != nil {
		slog.Warn("register failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}

	slog.Info("user registered", "user_id", res.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthFromResult(res))
}

// Login handles POST /api/auth/login.
// - 400 MISSING_REQUIRED_FIELDS when email or password is absent
// - 400 INVALID_CREDENTIALS on a failed login
// - 200 with the user and a token on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := validation.BindJSON(c, &req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, missingFields(err))
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// unknown email and wrong password look the same
		slog.Warn("login failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}

	slog.Info("user login successful", "user_id", res.User.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthFromResult(res))
}

// GetUser handles GET /api/users/:user_id.
func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.auth.GetUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserFromEntity(user))
}

func missingFields(err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Code == apperror.CodeValidation {
		return apperror.New(http.StatusBadRequest, apperror.CodeMissingFields, "Email and password are required").
			WithDetails(appErr.Details)
	}
	return err
}
