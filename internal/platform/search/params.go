// Package search binds and normalizes the list-endpoint query parameters.
package search

import (
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/oapi-codegen/runtime"

	"portfolio_backend/internal/platform/apperror"
	"portfolio_backend/internal/platform/validation"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	DefaultSort  = "created_at"
	SortAsc      = "asc"
	SortDesc     = "desc"
)

// Params is a validated list request.
type Params struct {
	Query     string `form:"query"`
	Limit     int    `form:"limit" binding:"min=1,max=100"`
	Offset    int    `form:"offset" binding:"min=0"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order" binding:"oneof=asc desc"`
}

// Desc reports whether results are sorted descending.
func (p Params) Desc() bool { return p.SortOrder == SortDesc }

// Bind reads the list parameters from q, applying defaults, and rejects any
// sort_by outside sortable. Every invalid parameter is reported.
func Bind(q url.Values, sortable []string) (Params, error) {
	var (
		query, sortBy, sortOrder *string
		limit, offset            *int
		fields                   []validation.FieldError
	)

	bindings := []struct {
		name   string
		dest   any
		reason string
	}{
		{"query", &query, "must be a string"},
		{"limit", &limit, "must be an integer"},
		{"offset", &offset, "must be an integer"},
		{"sort_by", &sortBy, "must be a string"},
		{"sort_order", &sortOrder, "must be a string"},
	}
	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, b.name, q, b.dest); err != nil {
			fields = append(fields, validation.FieldError{Field: b.name, Reason: b.reason})
		}
	}

	p := Params{
		Limit:     DefaultLimit,
		SortBy:    DefaultSort,
		SortOrder: SortDesc,
	}
	if query != nil {
		p.Query = strings.TrimSpace(*query)
	}
	if limit != nil {
		p.Limit = *limit
	}
	if offset != nil {
		p.Offset = *offset
	}
	if sortBy != nil {
		p.SortBy = *sortBy
	}
	if sortOrder != nil {
		p.SortOrder = strings.ToLower(*sortOrder)
	}

	for _, fe := range validation.Struct(&p) {
		if !slices.ContainsFunc(fields, func(f validation.FieldError) bool { return f.Field == fe.Field }) {
			fields = append(fields, fe)
		}
	}
	if !slices.Contains(sortable, p.SortBy) {
		fields = append(fields, validation.FieldError{
			Field:  "sort_by",
			Reason: "must be one of: " + strings.Join(sortable, ", "),
		})
	}

	if len(fields) > 0 {
		return Params{}, apperror.New(http.StatusBadRequest, apperror.CodeValidation, "Invalid query parameters").
			WithDetails(validation.Details{Fields: fields})
	}
	return p, nil
}
