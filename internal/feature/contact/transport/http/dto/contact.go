// Package dto defines the request and response shapes of the contact endpoint.
package dto

import (
	"time"

	"portfolio_backend/internal/feature/contact/domain/entity"
	"portfolio_backend/internal/feature/contact/usecase"
)

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Message string `json:"message" binding:"required,min=1"`
}

// Input converts the request for the usecase.
func (r ContactRequest) Input() usecase.SubmitInput {
	return usecase.SubmitInput{Name: r.Name, Email: r.Email, Message: r.Message}
}

// ContactResponse is the public shape of a stored contact request.
type ContactResponse struct {
	RequestID string    `json:"request_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// FromEntity shapes a contact request.
func FromEntity(r *entity.ContactRequest) ContactResponse {
	return ContactResponse{
		RequestID: r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}
}
