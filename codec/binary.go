package codec

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/blockberries/cramberry/pkg/cramberry"

	"github.com/tanglekit/napi/types"
)

// Binary is a deterministic binary Format backed by cramberry struct
// tags. It shares the schema's required-field checks with JSON, but a
// binary payload carries no field names, so attribution of malformed
// values is limited to what Check reports.
type Binary struct{}

// Name implements Format.
func (Binary) Name() string { return "binary" }

// Encode implements Format.
func (Binary) Encode(v any) ([]byte, error) {
	if resp, ok := bundleValue(v); ok {
		v = bundleToWire(resp)
	}
	data, err := cramberry.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("binary encode: %w", err)
	}
	return data, nil
}

// Decode implements Format.
func (f Binary) Decode(data []byte, v any) error {
	if resp, ok := v.(*types.TransactionsByBundleResponse); ok {
		return f.decodeBundle(data, resp)
	}
	if err := cramberry.Unmarshal(data, v); err != nil {
		return &ConversionError{Format: f.Name(), Reason: "malformed payload", Err: err}
	}
	return runCheck(f.Name(), v)
}

// bundleWire is the binary form of types.TransactionsByBundleResponse.
// cramberry has no encoding for hash-keyed maps, so the references
// travel as a hash-sorted list; each reference carries its own hash,
// so the mapping is rebuilt losslessly on decode.
type bundleWire struct {
	Transactions []types.TransactionRef `cramberry:"1"`
}

func bundleValue(v any) (types.TransactionsByBundleResponse, bool) {
	switch r := v.(type) {
	case types.TransactionsByBundleResponse:
		return r, true
	case *types.TransactionsByBundleResponse:
		return *r, true
	}
	return types.TransactionsByBundleResponse{}, false
}

func bundleToWire(resp types.TransactionsByBundleResponse) *bundleWire {
	refs := make([]types.TransactionRef, 0, len(resp.Transactions))
	for _, ref := range resp.Transactions {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		return bytes.Compare(refs[i].Hash[:], refs[j].Hash[:]) < 0
	})
	return &bundleWire{Transactions: refs}
}

func (f Binary) decodeBundle(data []byte, resp *types.TransactionsByBundleResponse) error {
	var wire bundleWire
	if err := cramberry.Unmarshal(data, &wire); err != nil {
		return &ConversionError{Format: f.Name(), Reason: "malformed payload", Err: err}
	}
	resp.Transactions = nil
	if len(wire.Transactions) > 0 {
		resp.Transactions = make(map[types.Hash]types.TransactionRef, len(wire.Transactions))
		for _, ref := range wire.Transactions {
			resp.Transactions[ref.Hash] = ref
		}
	}
	return runCheck(f.Name(), resp)
}
