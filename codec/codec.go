// Package codec implements the wire-format conversion layer of the
// node API.
//
// A [Format] is a bidirectional mapping between typed values and one
// wire encoding. Formats register themselves in a package-level
// registry (the grpc encoding.RegisterCodec pattern), so transports
// can be added without touching the service contract or the schema.
//
// Conversion rules for reusable inner types (hashes, addresses) are
// not duplicated here: they live on the types themselves as their
// single canonical text rule, and every format composes them
// field-by-field.
package codec

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tanglekit/napi/types"
)

// Format is a concrete wire encoding.
//
// Encode is total: every valid schema value must encode without error.
// Decode is the inverse over well-formed payloads (the round-trip law
// decode(encode(x)) == x) and fails with a *ConversionError — never a
// panic — on malformed ones.
type Format interface {
	// Name identifies the format, e.g. "json".
	Name() string
	// Encode converts a typed value into a raw payload.
	Encode(v any) ([]byte, error)
	// Decode converts a raw payload into the typed value pointed to by v.
	Decode(data []byte, v any) error
}

var (
	regMu   sync.RWMutex
	formats = map[string]Format{}
)

// Register makes a Format available by its name. It is intended to be
// called from init functions and panics on a duplicate name.
func Register(f Format) {
	regMu.Lock()
	defer regMu.Unlock()
	if _, dup := formats[f.Name()]; dup {
		panic("codec: duplicate format " + f.Name())
	}
	formats[f.Name()] = f
}

// Lookup returns the Format registered under name, or nil.
func Lookup(name string) Format {
	regMu.RLock()
	defer regMu.RUnlock()
	return formats[name]
}

// ConversionError describes a wire payload that could not be converted
// into a typed value. It is detected at the format boundary and never
// reaches a service operation.
type ConversionError struct {
	// Format that rejected the payload.
	Format string
	// Field is the offending field, empty if the payload as a whole
	// was malformed.
	Field  string
	Reason string
	// Err is the underlying parse error, if any.
	Err error
}

func (e *ConversionError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field %q: %s", e.Format, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Format, e.Reason)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// AsConversionError checks whether an error is (or wraps) a
// ConversionError and returns it.
func AsConversionError(err error) (*ConversionError, bool) {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// checker is implemented by request types that have required fields.
type checker interface {
	Check() error
}

// runCheck applies a decoded value's required-field check, translating
// a MissingFieldError into a field-attributed ConversionError.
func runCheck(format string, v any) error {
	c, ok := v.(checker)
	if !ok {
		return nil
	}
	err := c.Check()
	if err == nil {
		return nil
	}
	var mf *types.MissingFieldError
	if errors.As(err, &mf) {
		return &ConversionError{
			Format: format,
			Field:  mf.Field,
			Reason: "missing required field",
			Err:    err,
		}
	}
	return &ConversionError{Format: format, Reason: err.Error(), Err: err}
}
