// Package store provides the caller-owned transaction collection. The engine
// never touches storage: the importer returns new records and the aggregator
// reads whatever collection it is handed. The store serializes concurrent
// mutations so two simultaneous imports cannot interleave badly.
package store

import (
	"sync"

	"pocketledger/internal/models"
)

// TransactionStore is the collection interface handed to the HTTP layer and
// the CLI commands.
type TransactionStore interface {
	// Add appends a single transaction.
	Add(tx models.Transaction)

	// AddAll appends a batch of transactions in order.
	AddAll(txs []models.Transaction)

	// List returns a copy of the full collection.
	List() []models.Transaction

	// Reset destroys the collection. The only way a transaction is ever
	// removed.
	Reset()

	// Count returns the number of stored transactions.
	Count() int
}

// MemoryStore is the in-memory TransactionStore implementation.
type MemoryStore struct {
	mu           sync.RWMutex
	transactions []models.Transaction
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Add(tx models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, tx)
}

func (s *MemoryStore) AddAll(txs []models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, txs...)
}

func (s *MemoryStore) List() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = nil
}

func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions)
}
