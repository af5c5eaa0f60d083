// Package local provides a zero-copy, in-process connection to a
// node's service boundary.
//
// For clients compiled into the same binary as the node, this adapter
// routes through the shared service implementation with no
// serialization overhead, so callers see exactly the same semantics
// as with the remote bindings.
package local

import (
	"context"

	"github.com/tanglekit/napi"
	"github.com/tanglekit/napi/server"
	"github.com/tanglekit/napi/types"
)

// Compile-time interface check.
var _ napi.Connection = (*Connection)(nil)

// Connection wraps a node with the service implementation.
type Connection struct {
	srv *server.Server
}

// NewConnection creates an in-process connection to the given node.
func NewConnection(node napi.Node) *Connection {
	return &Connection{srv: server.New(node)}
}

func (c *Connection) NodeInfo(ctx context.Context) (types.NodeInfoResponse, error) {
	return c.srv.NodeInfo(ctx)
}

func (c *Connection) TransactionByHash(ctx context.Context, req types.TransactionByHashRequest) (types.TransactionByHashResponse, error) {
	return c.srv.TransactionByHash(ctx, req)
}

func (c *Connection) TransactionsByBundle(ctx context.Context, req types.TransactionsByBundleRequest) (types.TransactionsByBundleResponse, error) {
	return c.srv.TransactionsByBundle(ctx, req)
}

func (c *Connection) TransactionsByAddress(ctx context.Context, req types.TransactionsByAddressRequest) (types.TransactionsByAddressResponse, error) {
	return c.srv.TransactionsByAddress(ctx, req)
}

func (c *Connection) AsSubmitter() napi.Submitter {
	return c.srv.AsSubmitter()
}

func (c *Connection) Close() error { return nil }

// Server returns the underlying service implementation for advanced
// use cases.
func (c *Connection) Server() *server.Server {
	return c.srv
}
