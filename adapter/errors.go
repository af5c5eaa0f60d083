package adapter

import (
	"errors"

	"github.com/tanglekit/napi"
	"github.com/tanglekit/napi/codec"
)

var errNoSubmitter = errors.New("service does not expose a submitter")

// Error codes shared by every wire format's error object.
const (
	CodeInvalidRequest = "invalid_request" // malformed wire payload
	CodeInvalidParams  = "invalid_params"  // semantically invalid request
	CodeNotFound       = "not_found"
	CodeInternal       = "internal_error"
)

// ErrorObject is the wire representation of a failed operation, shared
// across formats.
type ErrorObject struct {
	Code    string `json:"code" cramberry:"1"`
	Message string `json:"message" cramberry:"2"`
}

// ErrorCode classifies an error from an adapter call into a wire error
// code. ConversionErrors are client errors distinct from service
// failures.
func ErrorCode(err error) string {
	if _, ok := codec.AsConversionError(err); ok {
		return CodeInvalidRequest
	}
	if se, ok := napi.AsServiceError(err); ok {
		switch se.Kind {
		case napi.KindInvalidParams:
			return CodeInvalidParams
		case napi.KindNotFound:
			return CodeNotFound
		}
	}
	return CodeInternal
}

// EncodeError renders err as the format's error object. Encoding a
// two-string struct cannot fail in any registered format.
func (a *Adapter) EncodeError(err error) []byte {
	obj := ErrorObject{
		Code:    ErrorCode(err),
		Message: errorMessage(err),
	}
	data, encErr := a.format.Encode(obj)
	if encErr != nil {
		return []byte(obj.Code)
	}
	return data
}

// errorMessage picks the client-facing message for an error. Internal
// causes are not leaked beyond the classified message.
func errorMessage(err error) string {
	if ce, ok := codec.AsConversionError(err); ok {
		return ce.Error()
	}
	if se, ok := napi.AsServiceError(err); ok {
		if se.Kind == napi.KindInternal {
			return "internal node error"
		}
		return se.Error()
	}
	return "internal node error"
}
