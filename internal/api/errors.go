package api

import (
	"errors"
	"net/http"
)

// Domain-level errors surfaced by the client. Callers branch on these with
// errors.Is instead of inspecting HTTP status codes.
var (
	// ErrNotFound covers 404s and absent records.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized means the session cookie is missing or expired.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the backend (or a client-side check) refused the
	// acting player the operation, e.g. a non-captain managing a team.
	ErrForbidden = errors.New("forbidden")
	// ErrRejected is a well-formed {success:false} response.
	ErrRejected = errors.New("request rejected")
	// ErrTransport is any failure to complete the HTTP exchange: network
	// down, malformed response body, unexpected status.
	ErrTransport = errors.New("transport failure")
)

// ErrInvalidInput is the marker error for aggregated client-side validation
// failures. No request is made when a form fails validation; field details
// are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to
// ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field
// errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// rejectedError keeps the backend's message while unwrapping to ErrRejected.
type rejectedError struct {
	message string
}

func (e *rejectedError) Error() string {
	if e.message == "" {
		return ErrRejected.Error()
	}
	return e.message
}
func (e *rejectedError) Unwrap() error { return ErrRejected }

// MapStatus translates HTTP statuses to domain errors. Only statuses the
// higher layers handle explicitly are mapped; everything else collapses to
// ErrTransport, matching the presentation policy of one generic toast.
func MapStatus(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	default:
		return ErrTransport
	}
}

// Message returns the user-facing message for an error: the backend's own
// message for rejections, a category message otherwise. Transport failures
// deliberately all read the same.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "Some fields are invalid"
	case errors.Is(err, ErrRejected):
		return err.Error()
	case errors.Is(err, ErrUnauthorized):
		return "You need to log in first"
	case errors.Is(err, ErrForbidden):
		return "You are not allowed to do that"
	case errors.Is(err, ErrNotFound):
		return "Record not found"
	default:
		return "Something went wrong, Please try again later!"
	}
}
