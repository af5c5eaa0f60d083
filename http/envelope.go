package napihttp

import (
	"encoding/json"
	"net/http"

	"github.com/tanglekit/napi"
	"github.com/tanglekit/napi/codec"
)

// Response envelopes. Success payloads are wrapped in a data field,
// failures in an error field holding the format's error object.
type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	Error json.RawMessage `json:"error"`
}

func writeData(w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(dataEnvelope{Data: payload})
}

func writeError(w http.ResponseWriter, status int, errObj []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Error: errObj})
}

// statusFor maps the error taxonomy onto HTTP status classes:
// malformed input and invalid parameters are client errors, absence
// (where the operation defines it as an error) is 404, everything
// else is a server error.
func statusFor(err error) int {
	if _, ok := codec.AsConversionError(err); ok {
		return http.StatusBadRequest
	}
	if se, ok := napi.AsServiceError(err); ok {
		switch se.Kind {
		case napi.KindInvalidParams:
			return http.StatusBadRequest
		case napi.KindNotFound:
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}
