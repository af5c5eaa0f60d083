package napitest

import (
	"context"
	"reflect"
	"testing"

	"github.com/tanglekit/napi"
	"github.com/tanglekit/napi/types"
)

// TxSampler is implemented by nodes whose transaction format is not
// free-form. The compliance suite asks it for a payload the node will
// accept; nodes without it get an arbitrary byte string.
type TxSampler interface {
	SampleTx() types.Tx
}

// RunComplianceSuite runs a standard compliance suite against a node
// implementation, verifying the per-operation absence and error
// contracts of the service boundary.
//
// The factory function should return a fresh node instance for each
// test.
func RunComplianceSuite(t *testing.T, factory func() napi.Node) {
	t.Helper()

	t.Run("node_info_populated", func(t *testing.T) {
		h := NewHarness(t, factory())
		info := h.NodeInfo()
		if info.Name == "" {
			t.Error("node info should report a name")
		}
		if info.Version == "" {
			t.Error("node info should report a version")
		}
	})

	t.Run("node_info_pure", func(t *testing.T) {
		h := NewHarness(t, factory())
		first := h.NodeInfo()
		second := h.NodeInfo()
		if !reflect.DeepEqual(first, second) {
			t.Errorf("node info changed between identical calls:\nfirst  %+v\nsecond %+v", first, second)
		}
	})

	t.Run("absent_transaction_is_not_an_error", func(t *testing.T) {
		h := NewHarness(t, factory())
		resp := h.TransactionByHash(types.Hash{0xde, 0xad})
		if resp.Found() {
			t.Error("lookup of an unknown hash reported a transaction")
		}
	})

	t.Run("lookup_pure", func(t *testing.T) {
		h := NewHarness(t, factory())
		hash := types.Hash{0xbe, 0xef}
		first := h.TransactionByHash(hash)
		second := h.TransactionByHash(hash)
		if !reflect.DeepEqual(first, second) {
			t.Error("transaction lookup changed between identical calls")
		}
	})

	t.Run("unknown_bundle_is_not_found", func(t *testing.T) {
		srv := NewHarness(t, factory()).Server()
		_, err := srv.TransactionsByBundle(context.Background(), types.TransactionsByBundleRequest{
			Entry:  types.Hash{1},
			Bundle: types.Hash{2},
		})
		if !napi.IsNotFound(err) {
			t.Errorf("expected NotFound ServiceError, got %v", err)
		}
	})

	t.Run("empty_request_is_invalid", func(t *testing.T) {
		srv := NewHarness(t, factory()).Server()
		_, err := srv.TransactionByHash(context.Background(), types.TransactionByHashRequest{})
		se, ok := napi.AsServiceError(err)
		if !ok || se.Kind != napi.KindInvalidParams {
			t.Errorf("expected InvalidParams ServiceError, got %v", err)
		}
	})

	t.Run("submit_then_lookup", func(t *testing.T) {
		node := factory()
		h := NewHarness(t, node)
		if h.Server().AsSubmitter() == nil {
			t.Skip("node does not accept submissions")
		}

		payload := types.Tx("compliance payload")
		if s, ok := node.(TxSampler); ok {
			payload = s.SampleTx()
		}

		tip := node.Status().LastMilestoneHash
		submitted := h.SubmitTransaction(payload, tip, tip)
		if submitted.Hash.IsZero() {
			t.Fatal("submission returned a zero hash")
		}

		looked := h.TransactionByHash(submitted.Hash)
		if !looked.Found() {
			t.Fatal("submitted transaction not found by hash")
		}

		bundle := h.TransactionsByBundle(submitted.Hash, looked.Transaction.Bundle)
		if _, ok := bundle.Transactions[submitted.Hash]; !ok {
			t.Error("submitted transaction missing from its bundle")
		}
	})
}
