// Package adapter bridges raw wire payloads and the typed service
// contract.
//
// An Adapter pairs one Service with one Format: inbound payloads are
// decoded into typed requests (a ConversionError short-circuits before
// any service call), the matching operation is invoked, and the typed
// response is encoded back. Failures are never hidden — they are
// translated into the format's own error object via EncodeError.
package adapter

import (
	"context"

	"github.com/tanglekit/napi"
	"github.com/tanglekit/napi/codec"
)

// Adapter converts between raw payloads of one wire format and the
// typed operations of a Service.
type Adapter struct {
	svc    napi.Service
	format codec.Format
}

// New creates an Adapter for the given service and format.
func New(svc napi.Service, format codec.Format) *Adapter {
	return &Adapter{svc: svc, format: format}
}

// Format returns the adapter's wire format.
func (a *Adapter) Format() codec.Format { return a.format }

// Service returns the underlying service, for bindings whose input
// arrives as transport-native parameters rather than a payload.
func (a *Adapter) Service() napi.Service { return a.svc }

// Encode converts a typed value into the adapter's wire format.
func (a *Adapter) Encode(v any) ([]byte, error) {
	return a.format.Encode(v)
}

// handle decodes raw into a typed request, invokes call, and encodes
// the typed response.
func handle[Req, Resp any](a *Adapter, ctx context.Context, raw []byte, call func(context.Context, Req) (Resp, error)) ([]byte, error) {
	var req Req
	if err := a.format.Decode(raw, &req); err != nil {
		return nil, err
	}
	resp, err := call(ctx, req)
	if err != nil {
		return nil, err
	}
	return a.format.Encode(resp)
}

// NodeInfo handles the node-info operation. It takes no inbound
// payload.
func (a *Adapter) NodeInfo(ctx context.Context) ([]byte, error) {
	resp, err := a.svc.NodeInfo(ctx)
	if err != nil {
		return nil, err
	}
	return a.format.Encode(resp)
}

// TransactionByHash handles a transaction lookup payload.
func (a *Adapter) TransactionByHash(ctx context.Context, raw []byte) ([]byte, error) {
	return handle(a, ctx, raw, a.svc.TransactionByHash)
}

// TransactionsByBundle handles a bundle resolution payload.
func (a *Adapter) TransactionsByBundle(ctx context.Context, raw []byte) ([]byte, error) {
	return handle(a, ctx, raw, a.svc.TransactionsByBundle)
}

// TransactionsByAddress handles an address lookup payload.
func (a *Adapter) TransactionsByAddress(ctx context.Context, raw []byte) ([]byte, error) {
	return handle(a, ctx, raw, a.svc.TransactionsByAddress)
}

// SubmitTransaction handles a submission payload. The service must
// carry the submission capability.
func (a *Adapter) SubmitTransaction(ctx context.Context, raw []byte) ([]byte, error) {
	sub, ok := a.svc.(napi.Submitter)
	if !ok {
		return nil, napi.Internal("submit_transaction", errNoSubmitter)
	}
	return handle(a, ctx, raw, sub.SubmitTransaction)
}
