// Package napitest provides test doubles and a compliance suite for
// node API implementations and bindings.
package napitest

import (
	"context"
	"crypto/sha256"
	"sync"
	"time"

	"github.com/tanglekit/napi"
	"github.com/tanglekit/napi/types"
)

// Compile-time interface checks.
var (
	_ napi.Node        = (*MockNode)(nil)
	_ napi.TxSubmitter = (*MockNode)(nil)
)

// MockNode is an in-memory Node with a submission capability and
// error injection. Safe for concurrent use.
type MockNode struct {
	mu     sync.RWMutex
	status types.NodeStatus
	txs    map[types.Hash]types.TransactionRef
	order  []types.Hash

	// failure, when set, makes every node call fail with it.
	failure error
}

// NewMockNode creates a mock node that reports itself synced at
// milestone 42.
func NewMockNode() *MockNode {
	return &MockNode{
		status: types.NodeStatus{
			Name:               "mocknode",
			Version:            "0.0.1",
			IsSynced:           true,
			LastMilestoneIndex: 42,
			LastMilestoneHash:  types.Hash{0x42},
			ConnectedPeers:     2,
			Features:           []string{"submit"},
		},
		txs: map[types.Hash]types.TransactionRef{},
	}
}

// SetStatus replaces the reported node status.
func (m *MockNode) SetStatus(st types.NodeStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = st
}

// AddTransaction seeds a transaction into the mock tangle.
func (m *MockNode) AddTransaction(ref types.TransactionRef) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(ref)
}

// FailWith makes every subsequent node call fail with err.
// Pass nil to restore normal behavior.
func (m *MockNode) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failure = err
}

func (m *MockNode) put(ref types.TransactionRef) {
	if _, known := m.txs[ref.Hash]; !known {
		m.order = append(m.order, ref.Hash)
	}
	m.txs[ref.Hash] = ref
}

// Status implements napi.Node.
func (m *MockNode) Status() types.NodeStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// TransactionByHash implements napi.Node.
func (m *MockNode) TransactionByHash(_ context.Context, hash types.Hash) (*types.TransactionRef, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failure != nil {
		return nil, m.failure
	}
	ref, ok := m.txs[hash]
	if !ok {
		return nil, nil
	}
	return &ref, nil
}

// TransactionsByBundle implements napi.Node.
func (m *MockNode) TransactionsByBundle(_ context.Context, entry, bundle types.Hash) ([]types.TransactionRef, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failure != nil {
		return nil, m.failure
	}
	head, ok := m.txs[entry]
	if !ok || head.Bundle != bundle {
		return nil, nil
	}
	var refs []types.TransactionRef
	for _, h := range m.order {
		if ref := m.txs[h]; ref.Bundle == bundle {
			refs = append(refs, ref)
		}
	}
	return refs, nil
}

// TransactionsByAddress implements napi.Node.
func (m *MockNode) TransactionsByAddress(_ context.Context, addr types.Address) ([]types.Hash, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failure != nil {
		return nil, m.failure
	}
	var hashes []types.Hash
	for _, h := range m.order {
		if m.txs[h].Address == addr {
			hashes = append(hashes, h)
		}
	}
	return hashes, nil
}

// SubmitTransaction implements napi.TxSubmitter. The transaction hash
// is the sha256 of the raw payload; each submission forms its own
// single-transaction bundle.
func (m *MockNode) SubmitTransaction(_ context.Context, tx types.Tx, trunk, branch types.Hash) (types.Hash, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failure != nil {
		return types.Hash{}, m.failure
	}
	hash := types.Hash(sha256.Sum256(tx))
	m.put(types.TransactionRef{
		Hash:   hash,
		Trunk:  trunk,
		Branch: branch,
		Bundle: hash,
		Time:   types.TimeToTimestamp(time.Now()),
	})
	return hash, nil
}
