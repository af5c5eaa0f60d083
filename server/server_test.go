package server_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/tanglekit/napi"
	"github.com/tanglekit/napi/server"
	napitest "github.com/tanglekit/napi/testing"
	"github.com/tanglekit/napi/types"
)

func seededNode() (*napitest.MockNode, types.TransactionRef, types.TransactionRef) {
	node := napitest.NewMockNode()
	bundle := types.Hash{0xb0}
	a := types.TransactionRef{
		Hash:    types.Hash{1},
		Bundle:  bundle,
		Address: types.Address{0xaa},
		Value:   -5,
	}
	b := types.TransactionRef{
		Hash:    types.Hash{2},
		Trunk:   a.Hash,
		Bundle:  bundle,
		Address: types.Address{0xbb},
		Value:   5,
	}
	node.AddTransaction(a)
	node.AddTransaction(b)
	return node, a, b
}

func TestMockNodeCompliance(t *testing.T) {
	napitest.RunComplianceSuite(t, func() napi.Node {
		return napitest.NewMockNode()
	})
}

func TestNodeInfoReflectsStatus(t *testing.T) {
	node := napitest.NewMockNode()
	srv := server.New(node)

	info, err := srv.NodeInfo(context.Background())
	if err != nil {
		t.Fatalf("NodeInfo failed: %v", err)
	}
	st := node.Status()
	if info.Name != st.Name || info.IsSynced != st.IsSynced ||
		info.LastMilestoneIndex != st.LastMilestoneIndex ||
		info.LastMilestoneHash != st.LastMilestoneHash {
		t.Errorf("NodeInfo does not reflect node status:\ninfo   %+v\nstatus %+v", info, st)
	}
}

func TestTransactionsByBundleMapping(t *testing.T) {
	node, a, b := seededNode()
	srv := server.New(node)

	resp, err := srv.TransactionsByBundle(context.Background(), types.TransactionsByBundleRequest{
		Entry:  a.Hash,
		Bundle: a.Bundle,
	})
	if err != nil {
		t.Fatalf("TransactionsByBundle failed: %v", err)
	}
	if len(resp.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(resp.Transactions))
	}
	if got := resp.Transactions[b.Hash]; !reflect.DeepEqual(got, b) {
		t.Errorf("bundle mapping returned wrong reference:\n got %+v\nwant %+v", got, b)
	}
}

func TestTransactionsByBundleEntryOutsideBundle(t *testing.T) {
	node, a, _ := seededNode()
	srv := server.New(node)

	// The entry exists but belongs to a different bundle.
	_, err := srv.TransactionsByBundle(context.Background(), types.TransactionsByBundleRequest{
		Entry:  a.Hash,
		Bundle: types.Hash{0xff},
	})
	if !napi.IsNotFound(err) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestTransactionsByAddressEmptyIsSuccess(t *testing.T) {
	srv := server.New(napitest.NewMockNode())

	resp, err := srv.TransactionsByAddress(context.Background(), types.TransactionsByAddressRequest{
		Address: types.Address{0x11},
	})
	if err != nil {
		t.Fatalf("TransactionsByAddress failed: %v", err)
	}
	if resp.Hashes == nil || len(resp.Hashes) != 0 {
		t.Errorf("expected empty (non-nil) hash list, got %#v", resp.Hashes)
	}
}

func TestNodeFailureBecomesInternal(t *testing.T) {
	node, a, _ := seededNode()
	srv := server.New(node)

	cause := errors.New("storage unavailable")
	node.FailWith(cause)

	_, err := srv.TransactionByHash(context.Background(), types.TransactionByHashRequest{Hash: a.Hash})
	se, ok := napi.AsServiceError(err)
	if !ok || se.Kind != napi.KindInternal {
		t.Fatalf("expected Internal ServiceError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("underlying node error not preserved in chain")
	}
}

func TestCancellationIsPropagated(t *testing.T) {
	node, a, _ := seededNode()
	srv := server.New(node)

	// The mock surfaces injected failures the way a real node surfaces
	// ctx.Err(); the server must wrap, not swallow, cancellation.
	node.FailWith(context.Canceled)

	_, err := srv.TransactionByHash(context.Background(), types.TransactionByHashRequest{Hash: a.Hash})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
	if _, ok := napi.AsServiceError(err); !ok {
		t.Error("cancellation must still surface as a ServiceError")
	}
}

func TestSubmitWithoutCapability(t *testing.T) {
	// A node without TxSubmitter: wrap the mock to hide the method.
	node := struct{ napi.Node }{napitest.NewMockNode()}
	srv := server.New(node)

	if srv.AsSubmitter() != nil {
		t.Fatal("AsSubmitter should be nil for a read-only node")
	}
	_, err := srv.SubmitTransaction(context.Background(), types.SubmitTransactionRequest{
		Tx:     types.Tx{1},
		Trunk:  types.Hash{1},
		Branch: types.Hash{1},
	})
	se, ok := napi.AsServiceError(err)
	if !ok || se.Kind != napi.KindInternal {
		t.Fatalf("expected Internal ServiceError, got %v", err)
	}
}

func TestSubmitValidation(t *testing.T) {
	srv := server.New(napitest.NewMockNode())

	cases := []struct {
		name string
		req  types.SubmitTransactionRequest
	}{
		{"empty_tx", types.SubmitTransactionRequest{Trunk: types.Hash{1}, Branch: types.Hash{1}}},
		{"zero_trunk", types.SubmitTransactionRequest{Tx: types.Tx{1}, Branch: types.Hash{1}}},
		{"zero_branch", types.SubmitTransactionRequest{Tx: types.Tx{1}, Trunk: types.Hash{1}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := srv.SubmitTransaction(context.Background(), c.req)
			se, ok := napi.AsServiceError(err)
			if !ok || se.Kind != napi.KindInvalidParams {
				t.Errorf("expected InvalidParams, got %v", err)
			}
		})
	}
}
