package jwtmw

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/platform/apperror"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type mockResolver struct {
	ResolveIdentityFunc func(ctx context.Context, userID string) (*Identity, error)
}

func (m *mockResolver) ResolveIdentity(ctx context.Context, userID string) (*Identity, error) {
	return m.ResolveIdentityFunc(ctx, userID)
}

func knownUser(ids ...string) *mockResolver {
	return &mockResolver{ResolveIdentityFunc: func(_ context.Context, userID string) (*Identity, error) {
		for _, id := range ids {
			if id == userID {
				return &Identity{UserID: id, Email: id + "@example.com", Name: "User " + id}, nil
			}
		}
		return nil, nil
	}}
}

func issue(t *testing.T, svc *TokenService, userID string) string {
	t.Helper()
	token, err := svc.Issue(userID, userID+"@example.com")
	require.NoError(t, err)
	return token
}

// TestGate_Authenticate covers missing (401), invalid (403), unknown user (401) and valid tokens.
func TestGate_Authenticate(t *testing.T) {
	t.Parallel()

	svc := NewTokenService(testSecret, time.Hour)
	other := NewTokenService("other-secret", time.Hour)

	tests := []struct {
		name       string
		header     string
		resolver   *mockResolver
		wantErr    error
		wantUserID string
	}{
		{name: "no header", header: "", resolver: knownUser("u1"), wantErr: apperror.ErrTokenMissing},
		{name: "scheme only", header: "Bearer", resolver: knownUser("u1"), wantErr: apperror.ErrTokenMissing},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz", resolver: knownUser("u1"), wantErr: apperror.ErrTokenMissing},
		{name: "forged signature", header: "Bearer " + issue(t, other, "u1"), resolver: knownUser("u1"), wantErr: apperror.ErrTokenInvalid},
		{name: "garbage token", header: "Bearer abc.def.ghi", resolver: knownUser("u1"), wantErr: apperror.ErrTokenInvalid},
		{name: "deleted user", header: "Bearer " + issue(t, svc, "gone"), resolver: knownUser("u1"), wantErr: apperror.ErrAuthUserNotFound},
		{
			name:   "lookup failure",
			header: "Bearer " + issue(t, svc, "u1"),
			resolver: &mockResolver{ResolveIdentityFunc: func(context.Context, string) (*Identity, error) {
				return nil, errors.New("db down")
			}},
			wantErr: apperror.Internal(nil),
		},
		{name: "admitted", header: "Bearer " + issue(t, svc, "u1"), resolver: knownUser("u1"), wantUserID: "u1"},
		{name: "lowercase scheme admitted", header: "bearer " + issue(t, svc, "u1"), resolver: knownUser("u1"), wantUserID: "u1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gate := NewGate(svc, tt.resolver)
			id, err := gate.Authenticate(context.Background(), tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUserID, id.UserID)
		})
	}
}

func TestGate_Required(t *testing.T) {
	t.Parallel()

	svc := NewTokenService(testSecret, time.Hour)
	gate := NewGate(svc, knownUser("u1"))

	r := gin.New()
	r.GET("/private", gate.Required(), func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id.UserID})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{"missing", "", http.StatusUnauthorized, "AUTH_TOKEN_MISSING"},
		{"invalid", "Bearer nope", http.StatusForbidden, "AUTH_TOKEN_INVALID"},
		{"unknown user", "Bearer " + issue(t, svc, "u2"), http.StatusUnauthorized, "AUTH_USER_NOT_FOUND"},
		{"ok", "Bearer " + issue(t, svc, "u1"), http.StatusOK, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.wantCode == "" {
				assert.Equal(t, "u1", body["user_id"])
				return
			}
			assert.Equal(t, tt.wantCode, body["error_code"])
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestIdentityFrom_Missing(t *testing.T) {
	t.Parallel()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := IdentityFrom(c)

	assert.False(t, ok)
}
