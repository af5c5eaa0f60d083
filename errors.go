package napi

import (
	"errors"
	"fmt"
)

// Kind classifies a ServiceError. The set is closed: transports map
// each kind to their own error representation and must not see
// anything else cross the service boundary.
type Kind uint8

const (
	// KindInvalidParams: the request was well-formed on the wire but
	// semantically invalid (e.g. an empty hash).
	KindInvalidParams Kind = iota + 1
	// KindNotFound: the operation defines absence as an error and the
	// requested entity does not exist.
	KindNotFound
	// KindInternal: the underlying node call failed, including
	// cancellation and deadline expiry propagated from its context.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindInvalidParams:
		return "invalid params"
	case KindNotFound:
		return "not found"
	case KindInternal:
		return "internal"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// ServiceError is the only error type service operations return.
// It is a value passed back to the caller, never thrown as a panic
// across the service boundary.
type ServiceError struct {
	Kind Kind
	// Op is the operation that failed, e.g. "transactions_by_bundle".
	Op  string
	Msg string
	// Err is the underlying cause, if any.
	Err error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// InvalidParams creates a ServiceError for a semantically invalid request.
func InvalidParams(op, msg string) *ServiceError {
	return &ServiceError{Kind: KindInvalidParams, Op: op, Msg: msg}
}

// NotFound creates a ServiceError for an operation that defines absence
// as an error.
func NotFound(op, msg string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Op: op, Msg: msg}
}

// Internal creates a ServiceError wrapping a failed node call.
func Internal(op string, err error) *ServiceError {
	return &ServiceError{Kind: KindInternal, Op: op, Msg: "node call failed", Err: err}
}

// AsServiceError checks whether an error is (or wraps) a ServiceError
// and returns it.
func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsNotFound reports whether err is a ServiceError of kind NotFound.
func IsNotFound(err error) bool {
	se, ok := AsServiceError(err)
	return ok && se.Kind == KindNotFound
}
