package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/newsboard/newsboard-api/internal/domain"
)

// Global validator instance for reuse
var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into v. An empty body leaves v at its
// zero value. Syntax errors, values of the wrong JSON type and anything
// after the first JSON value are reported as domain.ErrInvalidRequest;
// unknown fields are ignored.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err == nil {
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return domain.NewValidationError("", "unexpected data after JSON body", domain.ErrInvalidRequest)
		}
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return domain.NewValidationError(typeErr.Field, "has the wrong type", domain.ErrInvalidRequest)
	}
	return domain.NewValidationError("", "malformed JSON body", domain.ErrInvalidRequest)
}

// ValidateRequest checks the struct tags of v. A missing required field is
// reported as domain.ErrIncompleteBody.
func ValidateRequest(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return domain.NewValidationError(fieldErrs[0].Field(), "is required", domain.ErrIncompleteBody)
	}
	return domain.NewValidationError("", "invalid body", domain.ErrInvalidRequest)
}
