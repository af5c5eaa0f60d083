// Package napigrpc provides the gRPC transport binding for the node
// API, using cramberry for deterministic binary serialization.
//
// No protobuf code generation is required. Schema types are
// serialized directly via their cramberry struct tags, through the
// same conversion registry every other transport uses.
package napigrpc

import (
	"google.golang.org/grpc/encoding"

	"github.com/tanglekit/napi/codec"
)

const codecName = "cramberry"

// CramberryCodec implements grpc/encoding.Codec on top of the binary
// Format from the conversion registry, so the gRPC boundary shares
// the schema's conversion rules and required-field checks.
type CramberryCodec struct{}

func (CramberryCodec) Marshal(v any) ([]byte, error) {
	return codec.Lookup("binary").Encode(v)
}

func (CramberryCodec) Unmarshal(data []byte, v any) error {
	return codec.Lookup("binary").Decode(data, v)
}

func (CramberryCodec) Name() string { return codecName }

func init() {
	encoding.RegisterCodec(CramberryCodec{})
}
