// Package validation plugs the request shape rules into gin's validator and turns
// binding failures into a single error that lists every violated field.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"

	"portfolio_backend/internal/platform/apperror"
	"portfolio_backend/internal/platform/patch"
)

// FieldError describes one violated rule.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Details is the details payload of a validation error response.
type Details struct {
	Fields []FieldError `json:"fields"`
}

// NullChecker is implemented by update requests whose non-nullable fields
// must reject an explicit null.
type NullChecker interface {
	NullViolations() []FieldError
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register installs the json field names, the patch field extractors and the slug rule on v.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if fv, ok := field.Interface().(interface{ Validatable() any }); ok {
			return fv.Validatable()
		}
		return nil
	}, patch.Field[string]{}, patch.Field[float64]{})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slug.IsSlug(fl.Field().String())
	})
}

// New returns the 400 VALIDATION_ERROR for fields.
func New(fields []FieldError) *apperror.Error {
	return apperror.New(http.StatusBadRequest, apperror.CodeValidation, "Invalid input data").
		WithDetails(Details{Fields: fields})
}

// BindJSON decodes the request body into dst and validates it. Every violation
// is reported: each key holding the wrong JSON type, each failed rule on the keys
// that decoded, and explicit nulls on fields that do not accept them.
func BindJSON(c *gin.Context, dst any) error {
	raw, err := c.GetRawData()
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperror.ErrPayloadTooLarge.WithCause(err)
		}
		return New([]FieldError{{Field: "body", Reason: "could not be read"}}).WithCause(err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return New([]FieldError{{Field: "body", Reason: "is required"}})
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return New([]FieldError{{Field: "body", Reason: "must be a JSON object"}}).WithCause(err)
		}
		return New([]FieldError{{Field: "body", Reason: "must be valid JSON"}}).WithCause(err)
	}

	names, typeErrs := decodeFields(doc, dst)
	violations, _ := FromError(binding.Validator.ValidateStruct(dst))

	fields := make([]FieldError, 0, len(typeErrs)+len(violations))
	for _, name := range names {
		if fe, ok := typeErrs[name]; ok {
			fields = append(fields, fe)
			continue
		}
		for _, v := range violations {
			if v.Field == name {
				fields = append(fields, v)
			}
		}
	}
	for _, v := range violations {
		if !slices.Contains(names, v.Field) {
			fields = append(fields, v)
		}
	}
	if nc, ok := dst.(NullChecker); ok {
		fields = append(fields, nc.NullViolations()...)
	}
	if len(fields) > 0 {
		return New(fields)
	}
	return nil
}

// decodeFields fills the top-level fields of the struct dst points to, one key
// at a time. names lists the JSON names in declaration order; a key whose value
// does not fit its field is left at the zero value and reported in typeErrs.
func decodeFields(doc map[string]json.RawMessage, dst any) (names []string, typeErrs map[string]FieldError) {
	typeErrs = map[string]FieldError{}
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, typeErrs
	}
	v = v.Elem()

	for i := 0; i < v.NumField(); i++ {
		sf := v.Type().Field(i)
		if !sf.IsExported() {
			continue
		}
		name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		names = append(names, name)

		msg, ok := lookup(doc, name)
		if !ok {
			continue
		}
		field := v.Field(i)
		if err := json.Unmarshal(msg, field.Addr().Interface()); err != nil {
			field.Set(reflect.Zero(field.Type()))
			typeErrs[name] = FieldError{Field: name, Reason: decodeReason(err)}
		}
	}
	return names, typeErrs
}

// lookup finds key in doc, falling back to a case-insensitive match as
// encoding/json does.
func lookup(doc map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	if msg, ok := doc[key]; ok {
		return msg, true
	}
	for k, msg := range doc {
		if strings.EqualFold(k, key) {
			return msg, true
		}
	}
	return nil, false
}

func decodeReason(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return "must be a " + jsonKind(typeErr.Type)
	}
	return "is invalid"
}

// Struct validates an already populated value, such as bound query parameters.
func Struct(obj any) []FieldError {
	fields, _ := FromError(binding.Validator.ValidateStruct(obj))
	return fields
}

// FromError converts a validator error into field errors. ok is false for
// errors that do not come from the validator.
func FromError(err error) (fields []FieldError, ok bool) {
	if err == nil {
		return nil, true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fieldName(fe), Reason: reason(fe)})
		}
		return fields, true
	}
	return []FieldError{{Field: "body", Reason: err.Error()}}, false
}

// RejectNull reports each named field that was supplied as an explicit null.
func RejectNull(fields ...Named) []FieldError {
	var out []FieldError
	for _, f := range fields {
		if f.Field.IsNull() {
			out = append(out, FieldError{Field: f.Name, Reason: "must not be null"})
		}
	}
	return out
}

// Named pairs a request field with its JSON name.
type Named struct {
	Name  string
	Field interface{ IsNull() bool }
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func reason(fe validator.FieldError) string {
	numeric := isNumeric(fe.Kind())
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if numeric {
			return "must be greater than or equal to " + fe.Param()
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		if numeric {
			return "must be less than or equal to " + fe.Param()
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "slug":
		return "must be a lowercase slug (letters, digits and hyphens)"
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value of the expected type"
	}
	switch {
	case isNumeric(t.Kind()):
		return "number"
	case t.Kind() == reflect.String:
		return "string"
	case t.Kind() == reflect.Bool:
		return "boolean"
	}
	return "value of the expected type"
}
