// Package napi defines the Node API, a presentation-agnostic service
// boundary for a tangle node.
//
// The core [Service] interface is the protocol-neutral contract every
// transport binding routes through. [Submitter] is an optional mutation
// capability discovered via Go type assertion on the underlying node.
package napi

import (
	"context"

	"github.com/tanglekit/napi/types"
)

// Service is the protocol-neutral set of node operations exposed to any
// presentation layer. Every transport binding (REST, gRPC, in-process)
// routes through the same implementation so all transports observe
// identical semantics.
//
// All operations are read-only, safe for concurrent use, and pure:
// calling one twice with the same request and unchanged node state
// yields identical responses. Failures are reported as *ServiceError,
// never as a panic across this boundary.
type Service interface {
	// NodeInfo reports the node's identity and sync state.
	NodeInfo(ctx context.Context) (types.NodeInfoResponse, error)

	// TransactionByHash looks up a single transaction. A hash unknown to
	// the node is not an error: the response carries a nil reference.
	TransactionByHash(ctx context.Context, req types.TransactionByHashRequest) (types.TransactionByHashResponse, error)

	// TransactionsByBundle resolves the transactions of a bundle,
	// starting from an entry transaction. An unknown entry, or an entry
	// that is not part of the bundle, yields a NotFound ServiceError.
	TransactionsByBundle(ctx context.Context, req types.TransactionsByBundleRequest) (types.TransactionsByBundleResponse, error)

	// TransactionsByAddress lists the hashes of transactions touching an
	// address. An address with no transactions yields an empty list.
	TransactionsByAddress(ctx context.Context, req types.TransactionsByAddressRequest) (types.TransactionsByAddressResponse, error)
}

// Submitter is the optional submission capability. Submission is the
// only mutating operation on the boundary: it either attaches the
// transaction as a unit or rejects it with a ServiceError. Partial
// application is not possible.
type Submitter interface {
	SubmitTransaction(ctx context.Context, req types.SubmitTransactionRequest) (types.SubmitTransactionResponse, error)
}

// Connection represents a transport-agnostic connection to a node's
// service boundary. Both gRPC clients and in-process adapters implement
// this.
type Connection interface {
	Service

	// AsSubmitter returns the Submitter interface if the node accepts
	// transaction submissions, or nil if it does not.
	AsSubmitter() Submitter

	// Close terminates the connection.
	Close() error
}

// Node is the interface the node's internals implement for this layer.
// Tangle storage and consensus live behind it; the service boundary
// only borrows their values for the duration of a request.
//
// Lookup methods must honor context cancellation by returning ctx.Err()
// (possibly wrapped). They must not block past the node's own deadline
// contract.
type Node interface {
	// Status returns a point-in-time snapshot of the node's state.
	Status() types.NodeStatus

	// TransactionByHash returns the referenced transaction, or nil if
	// the hash is not known to the node.
	TransactionByHash(ctx context.Context, hash types.Hash) (*types.TransactionRef, error)

	// TransactionsByBundle returns the transactions of the given bundle
	// reachable from the entry transaction. An empty result means the
	// entry is unknown or not part of the bundle.
	TransactionsByBundle(ctx context.Context, entry, bundle types.Hash) ([]types.TransactionRef, error)

	// TransactionsByAddress returns the hashes of transactions touching
	// the given address, in tangle order.
	TransactionsByAddress(ctx context.Context, addr types.Address) ([]types.Hash, error)
}

// TxSubmitter is the optional submission capability of a Node.
// Implementations must attach the transaction atomically: on error no
// state change may be visible.
type TxSubmitter interface {
	SubmitTransaction(ctx context.Context, tx types.Tx, trunk, branch types.Hash) (types.Hash, error)
}
