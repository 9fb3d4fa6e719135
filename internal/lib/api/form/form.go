// Package form decodes and validates admin form submissions.
package form

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxBodyBytes caps the size of a form body.
const MaxBodyBytes = 1 << 20

var (
	// ErrMalformed indicates that the body could not be decoded as a form
	ErrMalformed = errors.New("malformed form body")
	// ErrInvalid indicates that a decoded form failed validation
	ErrInvalid = errors.New("invalid form")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Parse decodes an application/x-www-form-urlencoded or multipart/form-data
// body. Only body fields are returned; the query string is ignored.
func Parse(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	err := r.ParseMultipartForm(MaxBodyBytes)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return r.PostForm, nil
}

// Validate checks v against its `validate` struct tags.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validateErrs validator.ValidationErrors
	if errors.As(err, &validateErrs) {
		return fmt.Errorf("%w: %s", ErrInvalid, ValidationError(validateErrs))
	}

	return fmt.Errorf("%w: %v", ErrInvalid, err)
}

// ValidationError renders validation failures as one human readable line.
func ValidationError(errs validator.ValidationErrors) string {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return strings.Join(errMsgs, ", ")
}
