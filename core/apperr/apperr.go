package apperr

import (
	"errors"
	"net/http"
)

// Category classifies an error for client-facing presentation.
type Category string

const (
	// Validation means the caller supplied malformed or missing input.
	Validation Category = "validation"
	// NotFound means a referenced record is absent.
	NotFound Category = "not_found"
	// Conflict means a uniqueness or versioning constraint was violated.
	Conflict Category = "conflict"
	// Persistence means an underlying store operation failed.
	Persistence Category = "persistence"
)

// Error is a categorized application error. The cause, if any, is always
// preserved and reachable through errors.Unwrap.
type Error struct {
	Category Category
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an error with a category and message and no cause.
func New(cat Category, msg string) *Error {
	return &Error{Category: cat, Message: msg}
}

// Wrap creates an error with a category and message around a cause.
// A nil cause returns nil so call sites can wrap unconditionally.
func Wrap(cat Category, msg string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Category: cat, Message: msg, Cause: cause}
}

// CategoryOf returns the category of err, or Persistence if err is not
// a tagged application error. Untagged errors at the service boundary
// are store failures by construction.
func CategoryOf(err error) Category {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Category
	}
	return Persistence
}

// IsCategory reports whether err carries the given category.
func IsCategory(err error, cat Category) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Category == cat
}

// HTTPStatus maps an error's category to a transport status code.
func HTTPStatus(err error) int {
	switch CategoryOf(err) {
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
