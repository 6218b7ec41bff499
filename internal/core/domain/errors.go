package domain

import "errors"

// Error kinds are stable, machine-readable identifiers rendered alongside the
// human-readable message in every error response.
const (
	KindUnauthenticated = "unauthenticated"
	KindForbidden       = "forbidden"
	KindConflict        = "conflict"
	KindNotFound        = "not_found"
	KindInvalidID       = "invalid_id"
	KindInvalidPayload  = "invalid_payload"
	KindInternal        = "internal"
)

// Error is a domain error carrying a kind next to its message.
type Error struct {
	kind string
	msg  string
}

func newError(kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

// Kind returns the machine-readable error kind.
func (e *Error) Kind() string { return e.kind }

var (
	ErrMissingToken        = newError(KindUnauthenticated, "Unauthorized Access")
	ErrInvalidToken        = newError(KindUnauthenticated, "unauthorized access")
	ErrForbidden           = newError(KindForbidden, "forbidden access")
	ErrAccountDisabled     = newError(KindForbidden, "account disabled")
	ErrUserNotFound        = newError(KindNotFound, "user not found")
	ErrUserExists          = newError(KindConflict, "User already exists")
	ErrSalaryDecrease      = newError(KindConflict, "You can't reduce salary")
	ErrAlreadyPaid         = newError(KindConflict, "already paid for selected month")
	ErrDuplicateSubmission = newError(KindConflict, "duplicate submission")
	ErrInvalidID           = newError(KindInvalidID, "invalid id")
	ErrInvalidPayload      = newError(KindInvalidPayload, "invalid payload")
	ErrInvalidRole         = newError(KindInvalidPayload, "role must be employee or HR")
)

// AsError unwraps err to the first *Error in its chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// KindOf returns the kind of err, or KindInternal for errors outside the domain.
func KindOf(err error) string {
	if de, ok := AsError(err); ok {
		return de.kind
	}
	return KindInternal
}
