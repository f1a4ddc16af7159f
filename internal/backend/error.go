package backend

import (
	"errors"
	"fmt"
)

// Kind classifies a failed backend call. The backend reports mutation
// outcomes as bare integer codes; the transport layer folds those codes,
// HTTP statuses and transport faults into this closed set so callers can
// branch without ever comparing raw integers.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindServerError
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindServerError:
		return "server error"
	case KindValidation:
		return "validation failed"
	default:
		return "unknown"
	}
}

// Error is the only error type returned by API clients.
type Error struct {
	Kind Kind
	Op   string // e.g. "orders.updateStatus"
	Err  error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound builds a KindNotFound error for the given operation.
func NotFound(op string) *Error { return &Error{Kind: KindNotFound, Op: op} }

// ServerError builds a KindServerError error for the given operation.
func ServerError(op string) *Error { return &Error{Kind: KindServerError, Op: op} }

// Validation builds a KindValidation error; used for client-side checks
// that reject a request before any network call is issued.
func Validation(op string, cause error) *Error {
	return &Error{Kind: KindValidation, Op: op, Err: cause}
}

// Unknownf builds a KindUnknown error wrapping a formatted cause.
func Unknownf(op, format string, args ...any) *Error {
	return &Error{Kind: KindUnknown, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf reports the kind carried by err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsValidation(err error) bool { return KindOf(err) == KindValidation }
