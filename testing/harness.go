package napitest

import (
	"context"
	"testing"

	"github.com/tanglekit/napi"
	"github.com/tanglekit/napi/server"
	"github.com/tanglekit/napi/types"
)

// Harness wraps a node with the service contract implementation and
// fails the test on unexpected operation errors.
type Harness struct {
	t   *testing.T
	srv *server.Server
}

// NewHarness creates a test harness over the given node.
func NewHarness(t *testing.T, node napi.Node) *Harness {
	t.Helper()
	return &Harness{t: t, srv: server.New(node)}
}

// Server returns the underlying server for direct access.
func (h *Harness) Server() *server.Server {
	return h.srv
}

// NodeInfo fetches the node info.
func (h *Harness) NodeInfo() types.NodeInfoResponse {
	h.t.Helper()
	resp, err := h.srv.NodeInfo(context.Background())
	if err != nil {
		h.t.Fatalf("NodeInfo failed: %v", err)
	}
	return resp
}

// TransactionByHash looks up a transaction.
func (h *Harness) TransactionByHash(hash types.Hash) types.TransactionByHashResponse {
	h.t.Helper()
	resp, err := h.srv.TransactionByHash(context.Background(), types.TransactionByHashRequest{Hash: hash})
	if err != nil {
		h.t.Fatalf("TransactionByHash(%s) failed: %v", hash, err)
	}
	return resp
}

// TransactionsByBundle resolves a bundle from an entry transaction.
func (h *Harness) TransactionsByBundle(entry, bundle types.Hash) types.TransactionsByBundleResponse {
	h.t.Helper()
	resp, err := h.srv.TransactionsByBundle(context.Background(), types.TransactionsByBundleRequest{
		Entry:  entry,
		Bundle: bundle,
	})
	if err != nil {
		h.t.Fatalf("TransactionsByBundle(%s, %s) failed: %v", entry, bundle, err)
	}
	return resp
}

// TransactionsByAddress lists transaction hashes for an address.
func (h *Harness) TransactionsByAddress(addr types.Address) types.TransactionsByAddressResponse {
	h.t.Helper()
	resp, err := h.srv.TransactionsByAddress(context.Background(), types.TransactionsByAddressRequest{Address: addr})
	if err != nil {
		h.t.Fatalf("TransactionsByAddress(%s) failed: %v", addr, err)
	}
	return resp
}

// SubmitTransaction attaches a transaction and returns its hash.
func (h *Harness) SubmitTransaction(tx types.Tx, trunk, branch types.Hash) types.SubmitTransactionResponse {
	h.t.Helper()
	resp, err := h.srv.SubmitTransaction(context.Background(), types.SubmitTransactionRequest{
		Tx:     tx,
		Trunk:  trunk,
		Branch: branch,
	})
	if err != nil {
		h.t.Fatalf("SubmitTransaction failed: %v", err)
	}
	return resp
}
