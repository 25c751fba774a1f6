package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the caller does not own the resource
	ErrForbidden = errors.New("you are not allowed to do this action")
)

// ContentValidationError reports a malformed or incomplete payload detected at
// entity construction. Code is a stable identifier the rest layer translates
// into a user-facing message.
type ContentValidationError struct {
	Code string
}

func (e ContentValidationError) Error() string {
	return e.Code
}

// InvariantError reports a write that should have affected exactly one row but
// affected zero. It signals a race or a violated prior-state assumption and is
// never shown to clients verbatim.
type InvariantError struct {
	Message string
}

func (e InvariantError) Error() string {
	return e.Message
}
