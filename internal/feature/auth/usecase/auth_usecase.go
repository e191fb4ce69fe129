package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"portfolio_backend/internal/feature/auth/domain/entity"
	jwtmw "portfolio_backend/internal/platform/jwt"
	"portfolio_backend/internal/platform/store"
	"portfolio_backend/internal/platform/validation"
)

// dummyHash keeps login timing the same whether or not the email exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository persists users.
type UserRepository interface {
	// Create persists a new user. A taken email yields store.ErrDuplicate.
	Create(ctx context.Context, user *entity.User) error

	// FindByID returns store.ErrNotFound when no user has the id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail returns store.ErrNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// EmailExists reports whether the email is registered.
	EmailExists(ctx context.Context, email string) (bool, error)
}

// TokenIssuer issues identity tokens.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

// RegisterInput is a validated registration request.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// AuthResult is the user together with a freshly issued token.
type AuthResult struct {
	User  *entity.User
	Token string
}

type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
	now    func() time.Time
}

// NewAuthUsecase creates the auth usecase.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
		now:    time.Now,
	}
}

// NormalizeEmail trims and lowercases an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and signs them in.
// The email pre-check gives the common case a clean error; the unique index
// catches concurrent registrations that pass it together.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email := NormalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)

	var blank []validation.FieldError
	if email == "" {
		blank = append(blank, validation.FieldError{Field: "email", Reason: "is required"})
	}
	if name == "" {
		blank = append(blank, validation.FieldError{Field: "name", Reason: "is required"})
	}
	if len(blank) > 0 {
		return nil, validation.New(blank)
	}

	exists, err := u.users.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hashed),
		CreatedAt:    u.now().UTC(),
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists.WithCause(err)
		}
		return nil, err
	}

	token, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies the credentials and issues a token. The bcrypt comparison
// runs even for an unknown email.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := u.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	passwordHash := dummyHash
	if user != nil {
		passwordHash = user.PasswordHash
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if user == nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

// GetUser returns the user with the given id.
func (u *authUsecase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ResolveIdentity implements jwtmw.IdentityResolver.
func (u *authUsecase) ResolveIdentity(ctx context.Context, userID string) (*jwtmw.Identity, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &jwtmw.Identity{UserID: user.ID, Email: user.Email, Name: user.Name}, nil
}
