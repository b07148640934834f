// Package memory implements the storage interfaces with in-process maps. It
// backs local development and tests where a Redis instance is not available;
// the semantics mirror the Redis implementation exactly, including exact-case
// user matching.
package memory

import (
	"context"
	"sync"

	"github.com/crosslane/bridgewatch/internal/bridgetx"
	"github.com/crosslane/bridgewatch/internal/txstore"
)

type storage struct {
	mu  sync.RWMutex
	txs map[string]bridgetx.Transaction
}

var _ txstore.TransactionStorage = (*storage)(nil)

// NewTransactionStorage creates an empty in-memory transaction storage.
func NewTransactionStorage() *storage {
	return &storage{
		txs: make(map[string]bridgetx.Transaction),
	}
}

// clone deep-copies a record so callers never alias stored state through the
// steps slice or the completion pointer.
func clone(tx bridgetx.Transaction) bridgetx.Transaction {
	copied := tx

	if tx.Steps != nil {
		copied.Steps = make([]bridgetx.Step, len(tx.Steps))
		copy(copied.Steps, tx.Steps)
	}

	if tx.CompletedAt != nil {
		completedAt := *tx.CompletedAt
		copied.CompletedAt = &completedAt
	}

	if tx.Fees != nil {
		fees := *tx.Fees
		copied.Fees = &fees
	}

	return copied
}

func (s *storage) SaveTransaction(ctx context.Context, tx bridgetx.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txs[tx.ID] = clone(tx)
	return nil
}

func (s *storage) GetTransaction(ctx context.Context, id string) (bridgetx.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.txs[id]
	if !ok {
		return bridgetx.Transaction{}, txstore.ErrTransactionNotFound
	}

	return clone(tx), nil
}

func (s *storage) ListTransactionsByUser(ctx context.Context, userAddress string) ([]bridgetx.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txs := make([]bridgetx.Transaction, 0)
	for _, tx := range s.txs {
		if tx.UserAddress == userAddress {
			txs = append(txs, clone(tx))
		}
	}

	return txs, nil
}

func (s *storage) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.txs, id)
	return nil
}

func (s *storage) DeleteTransactionsByUser(ctx context.Context, userAddress string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, tx := range s.txs {
		if tx.UserAddress == userAddress {
			delete(s.txs, id)
		}
	}

	return nil
}
