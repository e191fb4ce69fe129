// Package dto defines the request and response shapes of the auth endpoints.
package dto

import (
	"time"

	"portfolio_backend/internal/feature/auth/domain/entity"
	"portfolio_backend/internal/feature/auth/usecase"
)

// RegisterRequest is the body of POST /api/auth/register.
// password_hash carries the plaintext secret; it is hashed before storage.
type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email,max=255"`
	Name         string `json:"name" binding:"required,min=1,max=255"`
	PasswordHash string `json:"password_hash" binding:"required,min=8,max=72"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public shape of a user. The password hash is never exposed.
type UserResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// UserFromEntity shapes a user for the API.
func UserFromEntity(u *entity.User) UserResponse {
	return UserResponse{
		UserID:    u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// AuthFromResult shapes a register/login result.
func AuthFromResult(r *usecase.AuthResult) AuthResponse {
	return AuthResponse{User: UserFromEntity(r.User), Token: r.Token}
}
