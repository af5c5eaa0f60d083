package types_test

import (
	"errors"
	"testing"
	"time"

	"github.com/tanglekit/napi/types"
)

// missingField asserts err is a MissingFieldError naming field.
func missingField(t *testing.T, err error, field string) {
	t.Helper()
	var mf *types.MissingFieldError
	if !errors.As(err, &mf) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if mf.Field != field {
		t.Fatalf("expected field %q, got %q", field, mf.Field)
	}
}

func TestTransactionsByBundleRequestCheck(t *testing.T) {
	h := types.Hash{1}

	if err := (types.TransactionsByBundleRequest{Entry: h, Bundle: h}).Check(); err != nil {
		t.Errorf("complete request failed Check: %v", err)
	}
	missingField(t, types.TransactionsByBundleRequest{Bundle: h}.Check(), "entry")
	missingField(t, types.TransactionsByBundleRequest{Entry: h}.Check(), "bundle")
}

func TestTransactionByHashRequestCheck(t *testing.T) {
	if err := (types.TransactionByHashRequest{Hash: types.Hash{1}}).Check(); err != nil {
		t.Errorf("complete request failed Check: %v", err)
	}
	missingField(t, types.TransactionByHashRequest{}.Check(), "hash")
}

func TestTransactionsByAddressRequestCheck(t *testing.T) {
	missingField(t, types.TransactionsByAddressRequest{}.Check(), "address")
}

func TestSubmitTransactionRequestCheck(t *testing.T) {
	h := types.Hash{1}
	ok := types.SubmitTransactionRequest{Tx: types.Tx{0x01}, Trunk: h, Branch: h}
	if err := ok.Check(); err != nil {
		t.Errorf("complete request failed Check: %v", err)
	}
	missingField(t, types.SubmitTransactionRequest{Trunk: h, Branch: h}.Check(), "tx")
	missingField(t, types.SubmitTransactionRequest{Tx: types.Tx{1}, Branch: h}.Check(), "trunk")
	missingField(t, types.SubmitTransactionRequest{Tx: types.Tx{1}, Trunk: h}.Check(), "branch")
}

func TestTransactionByHashResponseFound(t *testing.T) {
	if (types.TransactionByHashResponse{}).Found() {
		t.Error("empty response reported Found")
	}
	resp := types.TransactionByHashResponse{Transaction: &types.TransactionRef{Hash: types.Hash{1}}}
	if !resp.Found() {
		t.Error("populated response not Found")
	}
}

func TestTimestampConversion(t *testing.T) {
	at := time.Date(2026, 3, 9, 8, 15, 0, 123456789, time.UTC)
	ts := types.TimeToTimestamp(at)
	if got := ts.ToTime(); !got.Equal(at) {
		t.Fatalf("Timestamp conversion drifted: got %v, want %v", got, at)
	}
}
