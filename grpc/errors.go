package napigrpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tanglekit/napi"
	"github.com/tanglekit/napi/codec"
)

// errNotExposed marks operations this binding chooses not to carry.
var errNotExposed = errors.New("operation not exposed by the grpc binding")

// toStatusErr translates a ServiceError into the transport's native
// error representation.
func toStatusErr(err error) error {
	se, ok := napi.AsServiceError(err)
	if !ok {
		return status.Error(codes.Internal, err.Error())
	}
	switch se.Kind {
	case napi.KindInvalidParams:
		return status.Error(codes.InvalidArgument, se.Error())
	case napi.KindNotFound:
		return status.Error(codes.NotFound, se.Error())
	default:
		return status.Error(codes.Internal, se.Error())
	}
}

// fromDecodeErr translates a request decode failure into the
// transport's error representation. Structurally invalid requests are
// client errors, so every transport reports them with the same kind.
func fromDecodeErr(err error) error {
	if _, ok := codec.AsConversionError(err); ok {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// fromStatusErr rebuilds a ServiceError on the client side, so callers
// of a remote connection see the same closed error set as local ones.
func fromStatusErr(op string, err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return napi.Internal(op, err)
	}
	switch st.Code() {
	case codes.InvalidArgument:
		return &napi.ServiceError{Kind: napi.KindInvalidParams, Op: op, Msg: st.Message()}
	case codes.NotFound:
		return &napi.ServiceError{Kind: napi.KindNotFound, Op: op, Msg: st.Message()}
	default:
		return napi.Internal(op, err)
	}
}
