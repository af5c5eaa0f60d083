package types_test

import (
	"testing"
	"time"

	"github.com/tanglekit/napi/types"

	"github.com/blockberries/cramberry/pkg/cramberry"
)

// roundTrip marshals v, unmarshals into a new T, and returns it.
func roundTrip[T any](t *testing.T, v T) T {
	t.Helper()
	data, err := cramberry.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var out T
	if err := cramberry.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	return out
}

func TestTransactionRef_RoundTrip(t *testing.T) {
	idx := types.MilestoneIndex(42)
	ref := types.TransactionRef{
		Hash:    types.Hash{1},
		Trunk:   types.Hash{2},
		Branch:  types.Hash{3},
		Bundle:  types.Hash{4},
		Address: types.Address{5},
		Value:   -1000,
		Time:    types.TimeToTimestamp(time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC)),
		Confirmed: &idx,
	}
	got := roundTrip(t, ref)
	if got.Hash != ref.Hash || got.Bundle != ref.Bundle || got.Value != ref.Value {
		t.Fatalf("TransactionRef round-trip failed: got %+v, want %+v", got, ref)
	}
	if got.Confirmed == nil || *got.Confirmed != idx {
		t.Fatalf("Confirmed pointer round-trip failed: got %v", got.Confirmed)
	}
}

func TestTransactionRef_UnconfirmedRoundTrip(t *testing.T) {
	ref := types.TransactionRef{Hash: types.Hash{9}}
	got := roundTrip(t, ref)
	if got.Confirmed != nil {
		t.Fatalf("nil Confirmed became %v", *got.Confirmed)
	}
}

func TestNodeInfoResponse_RoundTrip(t *testing.T) {
	resp := types.NodeInfoResponse{
		Name:               "memtangle",
		Version:            "0.3.0",
		IsSynced:           true,
		LastMilestoneIndex: 42,
		LastMilestoneHash:  types.Hash{0xab, 0xcd},
		ConnectedPeers:     7,
		Features:           []string{"submit"},
	}
	got := roundTrip(t, resp)
	if got.Name != resp.Name || got.LastMilestoneIndex != resp.LastMilestoneIndex ||
		got.LastMilestoneHash != resp.LastMilestoneHash || !got.IsSynced {
		t.Fatalf("NodeInfoResponse round-trip failed: got %+v, want %+v", got, resp)
	}
	if len(got.Features) != 1 || got.Features[0] != "submit" {
		t.Fatalf("Features round-trip failed: %v", got.Features)
	}
}

func TestSubmitTransactionRequest_RoundTrip(t *testing.T) {
	req := types.SubmitTransactionRequest{
		Tx:     types.Tx{1, 2, 3},
		Trunk:  types.Hash{4},
		Branch: types.Hash{5},
	}
	got := roundTrip(t, req)
	if string(got.Tx) != string(req.Tx) || got.Trunk != req.Trunk || got.Branch != req.Branch {
		t.Fatalf("SubmitTransactionRequest round-trip failed: got %+v, want %+v", got, req)
	}
}
