// Package types defines the domain and schema types for the node API.
//
// Domain types are plain values owned by the node internals; the API
// layer only borrows them per request. Each type has exactly one
// canonical wire rule: hashes and addresses are base58 strings in text
// formats, and every composite type reuses that rule instead of
// redefining it. Struct tags carry the JSON field names (camelCase) and
// cramberry field numbers for deterministic binary serialization.
package types

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// HashSize is the byte length of transaction, bundle and milestone hashes.
const HashSize = 32

// Hash is a 32-byte hash of a transaction, bundle or milestone.
// The zero value is never a valid hash and means "absent".
type Hash [HashSize]byte

// IsZero reports whether h is the zero (absent) hash.
func (h Hash) IsZero() bool { return h == Hash{} }

// String returns the canonical base58 form.
func (h Hash) String() string { return base58.Encode(h[:]) }

// MarshalText implements encoding.TextMarshaler. This is the single
// conversion rule for hashes; every text format and every composite
// type goes through it.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(h[:])), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash) UnmarshalText(text []byte) error {
	return decodeBase58(h[:], "hash", string(text))
}

// ParseHash parses the canonical base58 form of a hash.
func ParseHash(s string) (Hash, error) {
	var h Hash
	if err := decodeBase58(h[:], "hash", s); err != nil {
		return Hash{}, err
	}
	return h, nil
}

// Address is a 32-byte account address in the tangle.
// The zero value is never a valid address and means "absent".
type Address [HashSize]byte

// IsZero reports whether a is the zero (absent) address.
func (a Address) IsZero() bool { return a == Address{} }

// String returns the canonical base58 form.
func (a Address) String() string { return base58.Encode(a[:]) }

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(a[:])), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	return decodeBase58(a[:], "address", string(text))
}

// ParseAddress parses the canonical base58 form of an address.
func ParseAddress(s string) (Address, error) {
	var a Address
	if err := decodeBase58(a[:], "address", s); err != nil {
		return Address{}, err
	}
	return a, nil
}

// decodeBase58 is the shared decode rule behind Hash and Address.
func decodeBase58(dst []byte, what, s string) error {
	raw, err := base58.Decode(s)
	if err != nil {
		return fmt.Errorf("decode %s: %w", what, err)
	}
	if len(raw) != len(dst) {
		return fmt.Errorf("decode %s: got %d bytes, want %d", what, len(raw), len(dst))
	}
	copy(dst, raw)
	return nil
}

// MilestoneIndex is the sequence number of a milestone in the chain.
type MilestoneIndex uint32

// Tx is an opaque raw transaction payload. The API layer never
// inspects its contents.
type Tx []byte
