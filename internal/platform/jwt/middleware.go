// Package jwtmw contains the token service and the gin authentication gate.
package jwtmw

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/platform/apperror"
	"portfolio_backend/internal/platform/http/response"
)

// ContextIdentity is the gin context key holding the authenticated Identity.
const ContextIdentity = "identity"

// Identity is the authenticated caller.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// Verifier validates a raw token.
type Verifier interface {
	Verify(token string) (*Claims, error)
}

// IdentityResolver looks the token subject up in storage.
type IdentityResolver interface {
	// ResolveIdentity returns nil, nil when the user does not exist.
	ResolveIdentity(ctx context.Context, userID string) (*Identity, error)
}

// Gate admits requests carrying a valid token for an existing user.
type Gate struct {
	tokens Verifier
	users  IdentityResolver
}

// NewGate creates a Gate.
func NewGate(tokens Verifier, users IdentityResolver) *Gate {
	return &Gate{tokens: tokens, users: users}
}

// Authenticate decides admission for an Authorization header value.
// The signature is checked first, then the subject must still exist.
func (g *Gate) Authenticate(ctx context.Context, authorization string) (*Identity, error) {
	token, ok := bearerToken(authorization)
	if !ok {
		return nil, apperror.ErrTokenMissing
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		return nil, apperror.ErrTokenInvalid.WithCause(err)
	}

	identity, err := g.users.ResolveIdentity(ctx, claims.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if identity == nil {
		return nil, apperror.ErrAuthUserNotFound
	}
	return identity, nil
}

// Required returns middleware that rejects unauthenticated requests and
// stores the Identity under ContextIdentity.
func (g *Gate) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := g.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			slog.Warn("authentication rejected", "error", err, "path", c.Request.URL.Path, "remote_addr", c.ClientIP())
			response.Error(c, err)
			return
		}
		c.Set(ContextIdentity, *identity)
		c.Next()
	}
}

// IdentityFrom returns the Identity stored by Required.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
