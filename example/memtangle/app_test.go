package memtangle

import (
	"context"
	"testing"

	"github.com/tanglekit/napi"
	napitest "github.com/tanglekit/napi/testing"
	"github.com/tanglekit/napi/types"
)

func TestMemtangle_Compliance(t *testing.T) {
	napitest.RunComplianceSuite(t, func() napi.Node {
		return New()
	})
}

func TestMemtangle_SubmitAndLookup(t *testing.T) {
	app := New()
	h := napitest.NewHarness(t, app)

	addr := types.Address{0x11}
	tip := app.Status().LastMilestoneHash
	submitted := h.SubmitTransaction(PaymentTx(addr, 1000), tip, tip)

	resp := h.TransactionByHash(submitted.Hash)
	if !resp.Found() {
		t.Fatal("submitted transaction not found")
	}
	tx := resp.Transaction
	if tx.Address != addr || tx.Value != 1000 {
		t.Errorf("payload fields lost: address=%s value=%d", tx.Address, tx.Value)
	}
	if tx.Trunk != tip || tx.Branch != tip {
		t.Error("attachment tips not recorded")
	}
	if tx.Confirmed != nil {
		t.Error("fresh transaction should be unconfirmed")
	}
}

func TestMemtangle_RejectsMalformedPayload(t *testing.T) {
	app := New()
	tip := app.Status().LastMilestoneHash
	if _, err := app.SubmitTransaction(context.Background(), types.Tx("too short"), tip, tip); err == nil {
		t.Fatal("expected payload size error")
	}
}

func TestMemtangle_RejectsUnknownTips(t *testing.T) {
	app := New()
	tx := PaymentTx(types.Address{0x22}, 1)
	if _, err := app.SubmitTransaction(context.Background(), tx, types.Hash{0xff}, types.Hash{0xff}); err == nil {
		t.Fatal("expected unknown tip error")
	}
}

func TestMemtangle_BundleResolution(t *testing.T) {
	app := New()
	h := napitest.NewHarness(t, app)
	tip := app.Status().LastMilestoneHash

	txs := []types.Tx{
		PaymentTx(types.Address{0x31}, 10),
		PaymentTx(types.Address{0x32}, -10),
		PaymentTx(types.Address{0x33}, 0),
	}
	bundle, err := app.SubmitBundle(context.Background(), txs, tip, tip)
	if err != nil {
		t.Fatalf("SubmitBundle failed: %v", err)
	}

	hashes := h.TransactionsByAddress(types.Address{0x31}).Hashes
	if len(hashes) != 1 {
		t.Fatalf("expected 1 hash for first recipient, got %d", len(hashes))
	}

	resolved := h.TransactionsByBundle(hashes[0], bundle)
	if len(resolved.Transactions) != len(txs) {
		t.Fatalf("bundle resolved to %d transactions, want %d", len(resolved.Transactions), len(txs))
	}
	for hash, ref := range resolved.Transactions {
		if ref.Bundle != bundle {
			t.Errorf("transaction %s carries bundle %s, want %s", hash, ref.Bundle, bundle)
		}
	}
}

func TestMemtangle_EntryOutsideBundle(t *testing.T) {
	app := New()
	srv := napitest.NewHarness(t, app).Server()
	tip := app.Status().LastMilestoneHash

	hash, err := app.SubmitTransaction(context.Background(), PaymentTx(types.Address{0x41}, 5), tip, tip)
	if err != nil {
		t.Fatalf("SubmitTransaction failed: %v", err)
	}

	_, err = srv.TransactionsByBundle(context.Background(), types.TransactionsByBundleRequest{
		Entry:  hash,
		Bundle: types.Hash{0x99},
	})
	if !napi.IsNotFound(err) {
		t.Fatalf("expected NotFound for entry outside bundle, got %v", err)
	}
}

func TestMemtangle_MilestoneConfirms(t *testing.T) {
	app := New()
	h := napitest.NewHarness(t, app)
	tip := app.Status().LastMilestoneHash

	submitted := h.SubmitTransaction(PaymentTx(types.Address{0x51}, 7), tip, tip)

	before := app.Status()
	app.IssueMilestone()
	after := app.Status()

	if after.LastMilestoneIndex != before.LastMilestoneIndex+1 {
		t.Errorf("milestone index did not advance: %d -> %d", before.LastMilestoneIndex, after.LastMilestoneIndex)
	}
	if after.LastMilestoneHash == before.LastMilestoneHash {
		t.Error("milestone hash did not change")
	}

	resp := h.TransactionByHash(submitted.Hash)
	if resp.Transaction.Confirmed == nil {
		t.Fatal("transaction still unconfirmed after milestone")
	}
	if *resp.Transaction.Confirmed != after.LastMilestoneIndex {
		t.Errorf("confirmed at index %d, want %d", *resp.Transaction.Confirmed, after.LastMilestoneIndex)
	}
}

func TestMemtangle_MilestoneIsLookupable(t *testing.T) {
	app := New()
	h := napitest.NewHarness(t, app)

	resp := h.TransactionByHash(app.Status().LastMilestoneHash)
	if !resp.Found() {
		t.Fatal("genesis milestone not found by hash")
	}
	if resp.Transaction.Confirmed == nil {
		t.Error("milestone should confirm itself")
	}
}

func TestMemtangle_AddressIndexAccumulates(t *testing.T) {
	app := New()
	h := napitest.NewHarness(t, app)
	addr := types.Address{0x61}

	tip := app.Status().LastMilestoneHash
	first := h.SubmitTransaction(PaymentTx(addr, 1), tip, tip)
	second := h.SubmitTransaction(PaymentTx(addr, 2), first.Hash, tip)

	hashes := h.TransactionsByAddress(addr).Hashes
	if len(hashes) != 2 {
		t.Fatalf("expected 2 hashes, got %d", len(hashes))
	}
	if hashes[0] != first.Hash || hashes[1] != second.Hash {
		t.Error("address index lost attachment order")
	}
}
