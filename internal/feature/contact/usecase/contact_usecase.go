// Package usecase implements the business logic for the contact feature.
package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio_backend/internal/feature/contact/domain/entity"
	"portfolio_backend/internal/platform/validation"
)

// ContactRepository stores contact requests. They are write-only from the API.
type ContactRepository interface {
	Create(ctx context.Context, r *entity.ContactRequest) error
}

// Notifier tells the site owner about a stored request.
type Notifier interface {
	Notify(ctx context.Context, r *entity.ContactRequest) error
}

// SubmitInput is a validated contact form.
type SubmitInput struct {
	Name    string
	Email   string
	Message string
}

type contactUsecase struct {
	repo     ContactRepository
	notifier Notifier
	now      func() time.Time
}

// NewContactUsecase creates the contact usecase.
func NewContactUsecase(repo ContactRepository, notifier Notifier) *contactUsecase {
	return &contactUsecase{repo: repo, notifier: notifier, now: time.Now}
}

// Submit stores a contact request and then notifies. A failed notification
// does not fail the submission; the stored row is the source of truth.
func (u *contactUsecase) Submit(ctx context.Context, in SubmitInput) (*entity.ContactRequest, error) {
	r := &entity.ContactRequest{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Message:   strings.TrimSpace(in.Message),
		CreatedAt: u.now().UTC(),
	}

	var blank []validation.FieldError
	for _, f := range []struct{ name, value string }{
		{"name", r.Name},
		{"email", r.Email},
		{"message", r.Message},
	} {
		if f.value == "" {
			blank = append(blank, validation.FieldError{Field: f.name, Reason: "is required"})
		}
	}
	if len(blank) > 0 {
		return nil, validation.New(blank)
	}

	if err := u.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	if u.notifier != nil {
		if err := u.notifier.Notify(ctx, r); err != nil {
			slog.Warn("contact notification failed", "request_id", r.ID, "error", err)
		}
	}
	return r, nil
}
