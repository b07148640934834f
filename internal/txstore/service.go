// Package txstore implements the durable, queryable transaction store: upserts
// keyed by id, per-user and per-status queries, recency-ordered listings, and
// partial status/step updates that never lose concurrent step-level writes.
//
// The store owns persisted records exclusively. It layers query and update
// semantics on top of a pluggable TransactionStorage substrate and assumes
// multiple logical flows (event tracker, orchestration, UI queries) access it
// concurrently: it never caches records in memory.
package txstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/crosslane/bridgewatch/internal/bridgetx"
	"github.com/crosslane/bridgewatch/internal/pkg/validator"
)

// defaultRecentLimit bounds GetRecentTransactions when the caller passes no
// explicit limit. It matches the history drawer size of the consuming UI.
const defaultRecentLimit = 10

// StepPatch is a partial update applied to exactly one step of a record.
// Nil fields are left untouched.
type StepPatch struct {
	Status *bridgetx.StepStatus
	TxHash *string
	Error  *string
}

// Service is the transaction store surface consumed by the tracker, the
// orchestration layer and the UI.
type Service interface {
	// SaveTransaction upserts the record wholesale by id. Callers needing
	// partial updates use UpdateTransactionStatus or UpdateTransactionStep
	// to avoid lost-update races between concurrent partial writes.
	SaveTransaction(ctx context.Context, tx bridgetx.Transaction) error

	// GetTransaction returns the record with the given id, or
	// ErrTransactionNotFound.
	GetTransaction(ctx context.Context, id string) (bridgetx.Transaction, error)

	// GetTransactionsByUser returns all records for the user address,
	// matched byte-for-byte on casing.
	GetTransactionsByUser(ctx context.Context, userAddress string) ([]bridgetx.Transaction, error)

	// GetTransactionsByUserAndStatus filters the user's records by status.
	GetTransactionsByUserAndStatus(ctx context.Context, userAddress string, status bridgetx.Status) ([]bridgetx.Transaction, error)

	// GetRecentTransactions returns the user's records sorted by creation
	// time descending, truncated to limit. A non-positive limit uses the
	// default of 10.
	GetRecentTransactions(ctx context.Context, userAddress string, limit int) ([]bridgetx.Transaction, error)

	// GetInFlightTransactions returns the user's records that are still
	// progressing (pending or bridging). The orchestration layer uses it to
	// re-establish event tracking after a restart.
	GetInFlightTransactions(ctx context.Context, userAddress string) ([]bridgetx.Transaction, error)

	// GetRetryableTransactions returns the user's failed records that have
	// at least one completed step to resume from.
	GetRetryableTransactions(ctx context.Context, userAddress string) ([]bridgetx.Transaction, error)

	// UpdateTransactionStatus sets the status, bumps updatedAt strictly
	// forward, stamps completedAt on transition to completed, and records
	// errMsg on transition to failed. It returns the updated record.
	UpdateTransactionStatus(ctx context.Context, id string, status bridgetx.Status, errMsg string) (bridgetx.Transaction, error)

	// UpdateTransactionStep merges the patch into exactly the named step,
	// leaving all other steps and top-level fields untouched apart from the
	// updatedAt bump. It returns the updated record.
	UpdateTransactionStep(ctx context.Context, id string, stepID bridgetx.StepID, patch StepPatch) (bridgetx.Transaction, error)

	// DeleteTransaction removes a single record.
	DeleteTransaction(ctx context.Context, id string) error

	// ClearUserTransactions removes every record of the given user (exact
	// casing) without touching other users' records.
	ClearUserTransactions(ctx context.Context, userAddress string) error
}

// record is the validated shape a transaction must have before persistence.
type record struct {
	ID          string `validate:"required"`
	UserAddress string `validate:"required"`
	Amount      string `validate:"required"`
}

// service is the concrete Service implementation over a TransactionStorage.
type service struct {
	storage TransactionStorage
	now     func() time.Time
}

var _ Service = (*service)(nil)

// Option configures the store service.
type Option func(*service)

// WithClock overrides the time source, used by tests to pin timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// New creates a transaction store service backed by the given storage.
func New(storage TransactionStorage, opts ...Option) *service {
	s := &service{
		storage: storage,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) SaveTransaction(ctx context.Context, tx bridgetx.Transaction) error {
	if err := validator.Validate(record{
		ID:          tx.ID,
		UserAddress: tx.UserAddress,
		Amount:      tx.Amount.String(),
	}); err != nil {
		return err
	}

	return s.storage.SaveTransaction(ctx, tx)
}

func (s *service) GetTransaction(ctx context.Context, id string) (bridgetx.Transaction, error) {
	return s.storage.GetTransaction(ctx, id)
}

func (s *service) GetTransactionsByUser(ctx context.Context, userAddress string) ([]bridgetx.Transaction, error) {
	return s.storage.ListTransactionsByUser(ctx, userAddress)
}

func (s *service) GetTransactionsByUserAndStatus(ctx context.Context, userAddress string, status bridgetx.Status) ([]bridgetx.Transaction, error) {
	return s.filterByUser(ctx, userAddress, func(tx bridgetx.Transaction) bool {
		return tx.Status == status
	})
}

func (s *service) GetRecentTransactions(ctx context.Context, userAddress string, limit int) ([]bridgetx.Transaction, error) {
	txs, err := s.storage.ListTransactionsByUser(ctx, userAddress)
	if err != nil {
		return nil, err
	}

	sort.Slice(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})

	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if len(txs) > limit {
		txs = txs[:limit]
	}

	return txs, nil
}

func (s *service) GetInFlightTransactions(ctx context.Context, userAddress string) ([]bridgetx.Transaction, error) {
	return s.filterByUser(ctx, userAddress, func(tx bridgetx.Transaction) bool {
		return tx.IsInFlight()
	})
}

func (s *service) GetRetryableTransactions(ctx context.Context, userAddress string) ([]bridgetx.Transaction, error) {
	return s.filterByUser(ctx, userAddress, func(tx bridgetx.Transaction) bool {
		return tx.IsRetryable()
	})
}

// filterByUser lists the user's records and keeps those matching the predicate.
func (s *service) filterByUser(ctx context.Context, userAddress string, keep func(bridgetx.Transaction) bool) ([]bridgetx.Transaction, error) {
	txs, err := s.storage.ListTransactionsByUser(ctx, userAddress)
	if err != nil {
		return nil, err
	}

	matched := make([]bridgetx.Transaction, 0, len(txs))
	for _, tx := range txs {
		if keep(tx) {
			matched = append(matched, tx)
		}
	}

	return matched, nil
}

func (s *service) UpdateTransactionStatus(ctx context.Context, id string, status bridgetx.Status, errMsg string) (bridgetx.Transaction, error) {
	tx, err := s.storage.GetTransaction(ctx, id)
	if err != nil {
		return bridgetx.Transaction{}, err
	}

	now := s.now()

	tx.Status = status
	switch status {
	case bridgetx.StatusCompleted:
		completedAt := now
		tx.CompletedAt = &completedAt
	case bridgetx.StatusFailed:
		tx.Error = errMsg
	}
	tx.Touch(now)

	if err := s.storage.SaveTransaction(ctx, tx); err != nil {
		return bridgetx.Transaction{}, err
	}

	return tx, nil
}

func (s *service) UpdateTransactionStep(ctx context.Context, id string, stepID bridgetx.StepID, patch StepPatch) (bridgetx.Transaction, error) {
	tx, err := s.storage.GetTransaction(ctx, id)
	if err != nil {
		return bridgetx.Transaction{}, err
	}

	step := tx.Step(stepID)
	if step == nil {
		return bridgetx.Transaction{}, fmt.Errorf("transaction %q has no step %q", id, stepID)
	}

	now := s.now()

	if patch.Status != nil {
		step.Status = *patch.Status
		step.Timestamp = now
	}
	if patch.TxHash != nil {
		step.TxHash = *patch.TxHash
	}
	if patch.Error != nil {
		step.Error = *patch.Error
	}
	tx.Touch(now)

	if err := s.storage.SaveTransaction(ctx, tx); err != nil {
		return bridgetx.Transaction{}, err
	}

	return tx, nil
}

func (s *service) DeleteTransaction(ctx context.Context, id string) error {
	return s.storage.DeleteTransaction(ctx, id)
}

func (s *service) ClearUserTransactions(ctx context.Context, userAddress string) error {
	return s.storage.DeleteTransactionsByUser(ctx, userAddress)
}
