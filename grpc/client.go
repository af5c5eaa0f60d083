package napigrpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/tanglekit/napi"
	"github.com/tanglekit/napi/types"
)

// Compile-time interface check.
var _ napi.Connection = (*Client)(nil)

// Client implements napi.Connection for a remote node over gRPC with
// cramberry serialization. Remote callers see the same closed
// ServiceError set as local ones.
type Client struct {
	cc *grpc.ClientConn
}

// Dial connects to a remote node service.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(
		grpc.ForceCodec(CramberryCodec{}),
	))
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("napi grpc: dial %s: %w", addr, err)
	}
	return &Client{cc: cc}, nil
}

// Close terminates the connection.
func (c *Client) Close() error {
	return c.cc.Close()
}

func (c *Client) NodeInfo(ctx context.Context) (types.NodeInfoResponse, error) {
	resp := new(types.NodeInfoResponse)
	err := c.cc.Invoke(ctx, fullMethod("NodeInfo"), &NodeInfoRequest{}, resp)
	if err != nil {
		return types.NodeInfoResponse{}, fromStatusErr("node_info", err)
	}
	return *resp, nil
}

func (c *Client) TransactionByHash(ctx context.Context, req types.TransactionByHashRequest) (types.TransactionByHashResponse, error) {
	resp := new(types.TransactionByHashResponse)
	err := c.cc.Invoke(ctx, fullMethod("TransactionByHash"), &req, resp)
	if err != nil {
		return types.TransactionByHashResponse{}, fromStatusErr("transaction_by_hash", err)
	}
	return *resp, nil
}

func (c *Client) TransactionsByBundle(ctx context.Context, req types.TransactionsByBundleRequest) (types.TransactionsByBundleResponse, error) {
	resp := new(types.TransactionsByBundleResponse)
	err := c.cc.Invoke(ctx, fullMethod("TransactionsByBundle"), &req, resp)
	if err != nil {
		return types.TransactionsByBundleResponse{}, fromStatusErr("transactions_by_bundle", err)
	}
	return *resp, nil
}

// TransactionsByAddress is not exposed by this binding.
func (c *Client) TransactionsByAddress(_ context.Context, _ types.TransactionsByAddressRequest) (types.TransactionsByAddressResponse, error) {
	return types.TransactionsByAddressResponse{},
		napi.Internal("transactions_by_address", errNotExposed)
}

// SubmitTransaction implements napi.Submitter.
func (c *Client) SubmitTransaction(ctx context.Context, req types.SubmitTransactionRequest) (types.SubmitTransactionResponse, error) {
	resp := new(types.SubmitTransactionResponse)
	err := c.cc.Invoke(ctx, fullMethod("SubmitTransaction"), &req, resp)
	if err != nil {
		return types.SubmitTransactionResponse{}, fromStatusErr("submit_transaction", err)
	}
	return *resp, nil
}

// AsSubmitter returns the submission interface. Whether the node
// actually accepts submissions surfaces as a ServiceError from the
// remote side.
func (c *Client) AsSubmitter() napi.Submitter { return c }
