package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/platform/apperror"
	"portfolio_backend/internal/platform/patch"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type createReq struct {
	Title   string   `json:"title" binding:"required,min=1,max=255"`
	Email   string   `json:"email" binding:"required,email"`
	Slug    string   `json:"post_slug" binding:"required,slug"`
	Pricing *float64 `json:"pricing" binding:"omitempty,gte=0"`
}

type updateReq struct {
	Title  patch.Field[string]  `json:"title" binding:"omitempty,min=1,max=255"`
	Rating patch.Field[float64] `json:"rating" binding:"omitempty,gte=0,lte=5"`
}

func (r *updateReq) NullViolations() []FieldError {
	return RejectNull(Named{Name: "title", Field: r.Title})
}

func bind(t *testing.T, dst any, body string) error {
	t.Helper()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return BindJSON(c, dst)
}

func fieldsOf(t *testing.T, err error) []FieldError {
	t.Helper()

	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr), "expected *apperror.Error, got %v", err)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)

	details, ok := appErr.Details.(Details)
	require.True(t, ok)
	return details.Fields
}

func TestBindJSON_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantFields []FieldError
	}{
		{
			name: "valid",
			body: `{"title":"Site","email":"a@example.com","post_slug":"hello-world","pricing":0}`,
		},
		{
			name: "every violation is reported",
			body: `{"title":"","email":"nope","post_slug":"Hello World","pricing":-1}`,
			wantFields: []FieldError{
				{Field: "title", Reason: "is required"},
				{Field: "email", Reason: "must be a valid email address"},
				{Field: "post_slug", Reason: "must be a lowercase slug (letters, digits and hyphens)"},
				{Field: "pricing", Reason: "must be greater than or equal to 0"},
			},
		},
		{
			name: "title too long",
			body: `{"title":"` + strings.Repeat("x", 256) + `","email":"a@example.com","post_slug":"a"}`,
			wantFields: []FieldError{
				{Field: "title", Reason: "must be at most 255 characters"},
			},
		},
		{
			name: "type mismatch does not hide the other rules",
			body: `{"title":42}`,
			wantFields: []FieldError{
				{Field: "title", Reason: "must be a string"},
				{Field: "email", Reason: "is required"},
				{Field: "post_slug", Reason: "is required"},
			},
		},
		{
			name: "every type mismatch is reported",
			body: `{"title":5,"email":"a@example.com","post_slug":"a","pricing":"abc"}`,
			wantFields: []FieldError{
				{Field: "title", Reason: "must be a string"},
				{Field: "pricing", Reason: "must be a number"},
			},
		},
		{
			name:       "body is not an object",
			body:       `["title"]`,
			wantFields: []FieldError{{Field: "body", Reason: "must be a JSON object"}},
		},
		{
			name:       "malformed json",
			body:       `{"title":`,
			wantFields: []FieldError{{Field: "body", Reason: "must be valid JSON"}},
		},
		{
			name:       "empty body",
			body:       ``,
			wantFields: []FieldError{{Field: "body", Reason: "is required"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req createReq
			err := bind(t, &req, tt.body)

			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantFields, fieldsOf(t, err))
		})
	}
}

func TestBindJSON_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantFields []FieldError
	}{
		{name: "absent fields are skipped", body: `{}`},
		{name: "present values pass", body: `{"title":"New","rating":4.5}`},
		{
			name: "present empty string is checked",
			body: `{"title":""}`,
			wantFields: []FieldError{
				{Field: "title", Reason: "must be at least 1 characters"},
			},
		},
		{
			name: "range and null violations together",
			body: `{"title":null,"rating":7}`,
			wantFields: []FieldError{
				{Field: "rating", Reason: "must be less than or equal to 5"},
				{Field: "title", Reason: "must not be null"},
			},
		},
		{name: "nullable field accepts null", body: `{"rating":null}`},
		{
			name: "every type mismatch is reported",
			body: `{"rating":"abc","title":5}`,
			wantFields: []FieldError{
				{Field: "title", Reason: "must be a string"},
				{Field: "rating", Reason: "must be a number"},
			},
		},
		{
			name: "type mismatch alongside a failed rule",
			body: `{"title":"","rating":true}`,
			wantFields: []FieldError{
				{Field: "title", Reason: "must be at least 1 characters"},
				{Field: "rating", Reason: "must be a number"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req updateReq
			err := bind(t, &req, tt.body)

			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantFields, fieldsOf(t, err))
		})
	}
}

func TestBindJSON_PayloadTooLarge(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"`+strings.Repeat("x", 64)+`"}`))
	c.Request.Body = http.MaxBytesReader(w, c.Request.Body, 16)

	var req createReq
	err := BindJSON(c, &req)

	assert.ErrorIs(t, err, apperror.ErrPayloadTooLarge)
}

func TestStruct(t *testing.T) {
	t.Parallel()

	type params struct {
		Limit  int    `form:"limit" binding:"min=1,max=100"`
		SortBy string `form:"sort_by" binding:"oneof=title created_at"`
	}

	assert.Empty(t, Struct(&params{Limit: 10, SortBy: "title"}))
	assert.Equal(t, []FieldError{
		{Field: "limit", Reason: "must be greater than or equal to 1"},
		{Field: "sort_by", Reason: "must be one of: title, created_at"},
	}, Struct(&params{Limit: 0, SortBy: "password"}))
}
