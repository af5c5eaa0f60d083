package napigrpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/tanglekit/napi/types"
)

const serviceName = "napi.v1.NodeService"

// NodeServiceServer is the server-side interface for the node API
// gRPC service. This binding exposes a subset of the service
// contract; the address lookup stays REST-only.
type NodeServiceServer interface {
	NodeInfo(context.Context, *NodeInfoRequest) (*types.NodeInfoResponse, error)
	TransactionByHash(context.Context, *types.TransactionByHashRequest) (*types.TransactionByHashResponse, error)
	TransactionsByBundle(context.Context, *types.TransactionsByBundleRequest) (*types.TransactionsByBundleResponse, error)
	SubmitTransaction(context.Context, *types.SubmitTransactionRequest) (*types.SubmitTransactionResponse, error)
}

// RegisterNodeServiceServer registers the NodeServiceServer on a gRPC
// server.
func RegisterNodeServiceServer(s *grpc.Server, srv NodeServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

// --- Handler functions ---

func handlerNodeInfo(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(NodeInfoRequest)
	if err := dec(req); err != nil {
		return nil, fromDecodeErr(err)
	}
	return srv.(NodeServiceServer).NodeInfo(ctx, req)
}

func handlerTransactionByHash(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(types.TransactionByHashRequest)
	if err := dec(req); err != nil {
		return nil, fromDecodeErr(err)
	}
	return srv.(NodeServiceServer).TransactionByHash(ctx, req)
}

func handlerTransactionsByBundle(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(types.TransactionsByBundleRequest)
	if err := dec(req); err != nil {
		return nil, fromDecodeErr(err)
	}
	return srv.(NodeServiceServer).TransactionsByBundle(ctx, req)
}

func handlerSubmitTransaction(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(types.SubmitTransactionRequest)
	if err := dec(req); err != nil {
		return nil, fromDecodeErr(err)
	}
	return srv.(NodeServiceServer).SubmitTransaction(ctx, req)
}

// fullMethod builds the full gRPC method path.
func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}

// serviceDesc is the manual gRPC service descriptor for the node API.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*NodeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "NodeInfo", Handler: handlerNodeInfo},
		{MethodName: "TransactionByHash", Handler: handlerTransactionByHash},
		{MethodName: "TransactionsByBundle", Handler: handlerTransactionsByBundle},
		{MethodName: "SubmitTransaction", Handler: handlerSubmitTransaction},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "napi/v1/service.cram",
}
