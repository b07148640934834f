package txstore

import (
	"context"
	"errors"

	"github.com/crosslane/bridgewatch/internal/bridgetx"
)

// ErrTransactionNotFound is returned when no record exists for the given id.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionStorage is the durable keyed substrate behind the store service.
//
// Implementations persist whole records keyed by id and maintain a per-user
// index. User addresses are opaque byte strings: lookups must match casing
// byte-for-byte and must never normalize (Base58 Solana addresses are
// case-sensitive, so lowercasing corrupts them).
type TransactionStorage interface {
	// SaveTransaction upserts the record wholesale, keyed by its id.
	SaveTransaction(ctx context.Context, tx bridgetx.Transaction) error

	// GetTransaction returns the record with the given id, or
	// ErrTransactionNotFound when it does not exist.
	GetTransaction(ctx context.Context, id string) (bridgetx.Transaction, error)

	// ListTransactionsByUser returns every record whose user address matches
	// exactly. Order is unspecified; callers sort as needed.
	ListTransactionsByUser(ctx context.Context, userAddress string) ([]bridgetx.Transaction, error)

	// DeleteTransaction removes the record with the given id. Deleting a
	// missing record is not an error.
	DeleteTransaction(ctx context.Context, id string) error

	// DeleteTransactionsByUser removes every record whose user address
	// matches exactly, leaving other users' records untouched.
	DeleteTransactionsByUser(ctx context.Context, userAddress string) error
}
