package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/hance08/tankhah/internal/model"
)

// Memory keeps the transactions of one session. Every mutation publishes a new slice
// instead of editing the current one, so a snapshot taken before a mutation never changes.
type Memory struct {
	mu  sync.RWMutex
	txs []model.Transaction
}

func NewMemory(seed []model.Transaction) *Memory {
	return &Memory{txs: slices.Clone(seed)}
}

func (m *Memory) Create(tx model.Transaction) (model.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tx.ID == "" {
		tx.ID = uuid.NewString()
	} else if m.indexOf(tx.ID) >= 0 {
		return model.Transaction{}, fmt.Errorf("%w: %s", ErrTransactionExists, tx.ID)
	}

	next := make([]model.Transaction, 0, len(m.txs)+1)
	next = append(next, tx)
	next = append(next, m.txs...)
	m.txs = next

	return tx, nil
}

func (m *Memory) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return false
	}

	next := make([]model.Transaction, 0, len(m.txs)-1)
	next = append(next, m.txs[:i]...)
	next = append(next, m.txs[i+1:]...)
	m.txs = next

	return true
}

func (m *Memory) Get(id string) (model.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return model.Transaction{}, fmt.Errorf("transaction %s: %w", id, ErrRecordNotFound)
	}
	return m.txs[i], nil
}

func (m *Memory) Snapshot() []model.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.txs)
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.txs)
}

func (m *Memory) indexOf(id string) int {
	return slices.IndexFunc(m.txs, func(tx model.Transaction) bool { return tx.ID == id })
}
