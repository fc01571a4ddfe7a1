// Package server provides the HTTP surface of the advert generator: the form
// page, the JSON API, health and metrics.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/advert-generator/internal/schemas"
	"github.com/jonathan/advert-generator/internal/session"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrBodyTooLarge indicates the request body exceeded maxBodyBytes
type ErrBodyTooLarge struct {
	Limit int64
}

func (e *ErrBodyTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		schemaErr     *schemas.ValidationError
		schemaLoadErr *schemas.SchemaLoadError
		fieldErrs     validator.ValidationErrors
		tooLarge      *ErrBodyTooLarge
	)

	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &schemaErr),
		errors.As(err, &schemaLoadErr),
		errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, session.ErrPending):
		return http.StatusConflict
	case errors.Is(err, session.ErrIncomplete):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// userNotice is the text shown on the form page for a rejected request.
func userNotice(err error) string {
	var validationErr *ErrValidation
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.Is(err, session.ErrPending):
		return "A generation is already in progress."
	case errors.Is(err, session.ErrIncomplete):
		return "Job title and requirements are required."
	default:
		return session.UnexpectedErrorMessage
	}
}

// fieldLabels names form fields the way the page labels them.
var fieldLabels = map[string]string{
	"job_title": "Job title",
	"raw_notes": "Requirements",
}

// validationFromValidator converts validator errors to the first ErrValidation.
func validationFromValidator(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		message := fmt.Sprintf("%s failed on '%s' rule", fe.Field(), fe.Tag())
		if fe.Tag() == "max" {
			message = fmt.Sprintf("%s must be at most %s characters.", fieldLabels[fe.Field()], fe.Param())
		}
		return &ErrValidation{Field: fe.Field(), Message: message}
	}
	return err
}
