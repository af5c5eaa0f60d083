package napigrpc

// Transport-specific wrapper types for RPC methods whose contract
// signatures don't map to a single request struct. These exist only at
// the gRPC serialization boundary.

// NodeInfoRequest is the (empty) request for Service.NodeInfo.
type NodeInfoRequest struct{}
