package napigrpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/tanglekit/napi"
	"github.com/tanglekit/napi/server"
	"github.com/tanglekit/napi/types"
)

// Compile-time interface check.
var _ NodeServiceServer = (*GRPCServer)(nil)

// GRPCServer exposes a node's service boundary over gRPC. No type
// conversion layer is needed — schema types are serialized directly
// via cramberry.
type GRPCServer struct {
	srv *server.Server
}

// NewGRPCServer creates a gRPC binding over the given node.
func NewGRPCServer(node napi.Node) *GRPCServer {
	return &GRPCServer{srv: server.New(node)}
}

// Register adds the node service to a gRPC server.
func (s *GRPCServer) Register(gs *grpc.Server) {
	RegisterNodeServiceServer(gs, s)
}

// Serve starts a gRPC server on the given listener.
func (s *GRPCServer) Serve(lis net.Listener, opts ...grpc.ServerOption) error {
	gs := grpc.NewServer(opts...)
	s.Register(gs)
	return gs.Serve(lis)
}

// Server returns the underlying service implementation for advanced
// use.
func (s *GRPCServer) Server() *server.Server {
	return s.srv
}

func (s *GRPCServer) NodeInfo(ctx context.Context, _ *NodeInfoRequest) (*types.NodeInfoResponse, error) {
	resp, err := s.srv.NodeInfo(ctx)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &resp, nil
}

func (s *GRPCServer) TransactionByHash(ctx context.Context, req *types.TransactionByHashRequest) (*types.TransactionByHashResponse, error) {
	resp, err := s.srv.TransactionByHash(ctx, *req)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &resp, nil
}

func (s *GRPCServer) TransactionsByBundle(ctx context.Context, req *types.TransactionsByBundleRequest) (*types.TransactionsByBundleResponse, error) {
	resp, err := s.srv.TransactionsByBundle(ctx, *req)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &resp, nil
}

func (s *GRPCServer) SubmitTransaction(ctx context.Context, req *types.SubmitTransactionRequest) (*types.SubmitTransactionResponse, error) {
	resp, err := s.srv.SubmitTransaction(ctx, *req)
	if err != nil {
		return nil, toStatusErr(err)
	}
	return &resp, nil
}
