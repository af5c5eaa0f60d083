// Package server provides the node-side implementation of the service
// contract. Every transport binding routes through a single Server so
// all transports observe identical semantics.
//
// The Server owns no durable state: it validates requests
// semantically, delegates to the node internals, and maps their
// failures into the closed ServiceError set. Structural validation
// (required fields, parse errors) happens earlier, at the codec
// boundary.
package server

import (
	"context"

	"github.com/tanglekit/napi"
	"github.com/tanglekit/napi/types"
)

// Compile-time interface checks.
var (
	_ napi.Service   = (*Server)(nil)
	_ napi.Submitter = (*Server)(nil)
)

// Server implements the service contract over a Node. Safe for
// concurrent use: it holds no mutable state of its own, so its
// concurrency guarantees are exactly those of the underlying Node.
type Server struct {
	node napi.Node

	// Submission capability, discovered at construction.
	// Nil if the node does not accept submissions.
	submitter napi.TxSubmitter
}

// New creates a Server wrapping the given node. The submission
// capability is discovered via type assertion.
func New(node napi.Node) *Server {
	s := &Server{node: node}
	s.submitter, _ = node.(napi.TxSubmitter)
	return s
}

// NodeInfo reports the node's identity and sync state.
func (s *Server) NodeInfo(_ context.Context) (types.NodeInfoResponse, error) {
	st := s.node.Status()
	return types.NodeInfoResponse{
		Name:               st.Name,
		Version:            st.Version,
		IsSynced:           st.IsSynced,
		LastMilestoneIndex: st.LastMilestoneIndex,
		LastMilestoneHash:  st.LastMilestoneHash,
		ConnectedPeers:     st.ConnectedPeers,
		Features:           st.Features,
	}, nil
}

// TransactionByHash looks up a single transaction. Absence is success:
// the response carries a nil reference.
func (s *Server) TransactionByHash(ctx context.Context, req types.TransactionByHashRequest) (types.TransactionByHashResponse, error) {
	const op = "transaction_by_hash"
	if req.Hash.IsZero() {
		return types.TransactionByHashResponse{}, napi.InvalidParams(op, "hash must not be empty")
	}
	ref, err := s.node.TransactionByHash(ctx, req.Hash)
	if err != nil {
		return types.TransactionByHashResponse{}, napi.Internal(op, err)
	}
	return types.TransactionByHashResponse{Transaction: ref}, nil
}

// TransactionsByBundle resolves the transactions of a bundle starting
// from an entry transaction. Absence is an error here: an unknown
// entry, or one outside the bundle, yields KindNotFound.
func (s *Server) TransactionsByBundle(ctx context.Context, req types.TransactionsByBundleRequest) (types.TransactionsByBundleResponse, error) {
	const op = "transactions_by_bundle"
	if req.Entry.IsZero() {
		return types.TransactionsByBundleResponse{}, napi.InvalidParams(op, "entry must not be empty")
	}
	if req.Bundle.IsZero() {
		return types.TransactionsByBundleResponse{}, napi.InvalidParams(op, "bundle must not be empty")
	}

	refs, err := s.node.TransactionsByBundle(ctx, req.Entry, req.Bundle)
	if err != nil {
		return types.TransactionsByBundleResponse{}, napi.Internal(op, err)
	}
	if len(refs) == 0 {
		return types.TransactionsByBundleResponse{}, napi.NotFound(op, "entry transaction is not part of the bundle")
	}

	txs := make(map[types.Hash]types.TransactionRef, len(refs))
	for _, ref := range refs {
		txs[ref.Hash] = ref
	}
	return types.TransactionsByBundleResponse{Transactions: txs}, nil
}

// TransactionsByAddress lists transaction hashes touching an address.
// No matches is success: the response carries an empty list.
func (s *Server) TransactionsByAddress(ctx context.Context, req types.TransactionsByAddressRequest) (types.TransactionsByAddressResponse, error) {
	const op = "transactions_by_address"
	if req.Address.IsZero() {
		return types.TransactionsByAddressResponse{}, napi.InvalidParams(op, "address must not be empty")
	}
	hashes, err := s.node.TransactionsByAddress(ctx, req.Address)
	if err != nil {
		return types.TransactionsByAddressResponse{}, napi.Internal(op, err)
	}
	if hashes == nil {
		hashes = []types.Hash{}
	}
	return types.TransactionsByAddressResponse{Hashes: hashes}, nil
}

// SubmitTransaction attaches a transaction to the tangle. The node's
// own atomicity guarantee carries through: either the transaction is
// accepted as a unit, or the returned ServiceError means no state
// changed.
func (s *Server) SubmitTransaction(ctx context.Context, req types.SubmitTransactionRequest) (types.SubmitTransactionResponse, error) {
	const op = "submit_transaction"
	if s.submitter == nil {
		return types.SubmitTransactionResponse{}, napi.Internal(op, errSubmitUnsupported)
	}
	if len(req.Tx) == 0 {
		return types.SubmitTransactionResponse{}, napi.InvalidParams(op, "tx must not be empty")
	}
	if req.Trunk.IsZero() || req.Branch.IsZero() {
		return types.SubmitTransactionResponse{}, napi.InvalidParams(op, "trunk and branch must not be empty")
	}

	hash, err := s.submitter.SubmitTransaction(ctx, req.Tx, req.Trunk, req.Branch)
	if err != nil {
		return types.SubmitTransactionResponse{}, napi.Internal(op, err)
	}
	return types.SubmitTransactionResponse{Hash: hash}, nil
}

// AsSubmitter returns the Submitter interface if the node accepts
// submissions, or nil.
func (s *Server) AsSubmitter() napi.Submitter {
	if s.submitter == nil {
		return nil
	}
	return s
}
