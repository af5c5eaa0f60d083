// Package memtangle implements a small in-memory tangle node. It
// demonstrates the full node surface, including the optional
// submission capability, milestone tracking, and the bundle and
// address indexes the lookup operations rely on.
//
// Transaction format: 32 bytes recipient address followed by 8 bytes
// big-endian two's-complement value.
package memtangle

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/tanglekit/napi"
	"github.com/tanglekit/napi/types"
)

// Compile-time interface checks.
var (
	_ napi.Node        = (*App)(nil)
	_ napi.TxSubmitter = (*App)(nil)
)

const payloadSize = types.HashSize + 8

// App is an in-memory tangle node.
type App struct {
	mu    sync.RWMutex
	txs   map[types.Hash]types.TransactionRef
	order []types.Hash

	bundles   map[types.Hash][]types.Hash
	addrIndex map[types.Address][]types.Hash

	milestoneIndex types.MilestoneIndex
	milestoneHash  types.Hash
}

// New creates a memtangle node with a genesis milestone already
// issued, so the latest milestone is always a valid tip.
func New() *App {
	app := &App{
		txs:       make(map[types.Hash]types.TransactionRef),
		bundles:   make(map[types.Hash][]types.Hash),
		addrIndex: make(map[types.Address][]types.Hash),
	}
	app.issueMilestoneLocked()
	return app
}

func (app *App) Status() types.NodeStatus {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return types.NodeStatus{
		Name:               "memtangle",
		Version:            "0.1.0",
		IsSynced:           true,
		LastMilestoneIndex: app.milestoneIndex,
		LastMilestoneHash:  app.milestoneHash,
		ConnectedPeers:     0,
		Features:           []string{"submit"},
	}
}

func (app *App) TransactionByHash(_ context.Context, hash types.Hash) (*types.TransactionRef, error) {
	app.mu.RLock()
	defer app.mu.RUnlock()
	ref, ok := app.txs[hash]
	if !ok {
		return nil, nil
	}
	return &ref, nil
}

func (app *App) TransactionsByBundle(_ context.Context, entry, bundle types.Hash) ([]types.TransactionRef, error) {
	app.mu.RLock()
	defer app.mu.RUnlock()

	// The entry transaction anchors the traversal: if it is not part
	// of the requested bundle, the bundle is unreachable from it.
	ref, ok := app.txs[entry]
	if !ok || ref.Bundle != bundle {
		return nil, nil
	}

	hashes := app.bundles[bundle]
	refs := make([]types.TransactionRef, 0, len(hashes))
	for _, h := range hashes {
		refs = append(refs, app.txs[h])
	}
	return refs, nil
}

func (app *App) TransactionsByAddress(_ context.Context, addr types.Address) ([]types.Hash, error) {
	app.mu.RLock()
	defer app.mu.RUnlock()
	hashes := app.addrIndex[addr]
	out := make([]types.Hash, len(hashes))
	copy(out, hashes)
	return out, nil
}

func (app *App) SubmitTransaction(_ context.Context, tx types.Tx, trunk, branch types.Hash) (types.Hash, error) {
	addr, value, err := decodePayload(tx)
	if err != nil {
		return types.Hash{}, err
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	if _, ok := app.txs[trunk]; !ok {
		return types.Hash{}, fmt.Errorf("unknown trunk transaction %s", trunk)
	}
	if _, ok := app.txs[branch]; !ok {
		return types.Hash{}, fmt.Errorf("unknown branch transaction %s", branch)
	}

	hash := types.Hash(sha256.Sum256(tx))
	app.attachLocked(types.TransactionRef{
		Hash:    hash,
		Trunk:   trunk,
		Branch:  branch,
		Bundle:  hash,
		Address: addr,
		Value:   value,
		Time:    types.TimeToTimestamp(time.Now()),
	})
	return hash, nil
}

// SubmitBundle attaches a group of transactions as one bundle. The
// transactions are chained through their trunk references, with the
// first one attached at the given tips. Returns the bundle hash.
func (app *App) SubmitBundle(_ context.Context, txs []types.Tx, trunk, branch types.Hash) (types.Hash, error) {
	if len(txs) == 0 {
		return types.Hash{}, fmt.Errorf("empty bundle")
	}

	hashes := make([]types.Hash, len(txs))
	for i, tx := range txs {
		hashes[i] = types.Hash(sha256.Sum256(tx))
	}
	bundle := bundleHash(hashes)

	app.mu.Lock()
	defer app.mu.Unlock()

	if _, ok := app.txs[trunk]; !ok {
		return types.Hash{}, fmt.Errorf("unknown trunk transaction %s", trunk)
	}
	if _, ok := app.txs[branch]; !ok {
		return types.Hash{}, fmt.Errorf("unknown branch transaction %s", branch)
	}

	prev := trunk
	for i, tx := range txs {
		addr, value, err := decodePayload(tx)
		if err != nil {
			return types.Hash{}, fmt.Errorf("transaction %d: %w", i, err)
		}
		app.attachLocked(types.TransactionRef{
			Hash:    hashes[i],
			Trunk:   prev,
			Branch:  branch,
			Bundle:  bundle,
			Address: addr,
			Value:   value,
			Time:    types.TimeToTimestamp(time.Now()),
		})
		prev = hashes[i]
	}
	return bundle, nil
}

// IssueMilestone issues the next milestone and confirms every
// transaction that is not confirmed yet.
func (app *App) IssueMilestone() types.Hash {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.issueMilestoneLocked()
}

func (app *App) issueMilestoneLocked() types.Hash {
	next := app.milestoneIndex + 1

	marker := make([]byte, 4)
	binary.BigEndian.PutUint32(marker, uint32(next))
	hash := types.Hash(sha256.Sum256(marker))

	idx := next
	app.attachLocked(types.TransactionRef{
		Hash:      hash,
		Trunk:     app.milestoneHash,
		Branch:    app.milestoneHash,
		Bundle:    hash,
		Time:      types.TimeToTimestamp(time.Now()),
		Confirmed: &idx,
	})

	for h, ref := range app.txs {
		if ref.Confirmed == nil {
			i := idx
			ref.Confirmed = &i
			app.txs[h] = ref
		}
	}

	app.milestoneIndex = next
	app.milestoneHash = hash
	return hash
}

func (app *App) attachLocked(ref types.TransactionRef) {
	app.txs[ref.Hash] = ref
	app.order = append(app.order, ref.Hash)
	app.bundles[ref.Bundle] = append(app.bundles[ref.Bundle], ref.Hash)
	if !ref.Address.IsZero() {
		app.addrIndex[ref.Address] = append(app.addrIndex[ref.Address], ref.Hash)
	}
}

func decodePayload(tx types.Tx) (types.Address, int64, error) {
	if len(tx) != payloadSize {
		return types.Address{}, 0, fmt.Errorf("tx must be %d bytes, got %d", payloadSize, len(tx))
	}
	var addr types.Address
	copy(addr[:], tx[:types.HashSize])
	value := int64(binary.BigEndian.Uint64(tx[types.HashSize:]))
	return addr, value, nil
}

func bundleHash(hashes []types.Hash) types.Hash {
	h := sha256.New()
	for _, th := range hashes {
		h.Write(th[:])
	}
	var out types.Hash
	copy(out[:], h.Sum(nil))
	return out
}

// SampleTx returns a payload the node accepts, for use by generic
// test suites that do not know the transaction format.
func (app *App) SampleTx() types.Tx {
	return PaymentTx(types.Address{0xaa}, 1)
}

// PaymentTx creates a transaction that moves the given value to the
// given address.
func PaymentTx(addr types.Address, value int64) types.Tx {
	buf := make([]byte, payloadSize)
	copy(buf, addr[:])
	binary.BigEndian.PutUint64(buf[types.HashSize:], uint64(value))
	return buf
}
