package txtracker

import (
	"context"

	"github.com/crosslane/bridgewatch/internal/bridgetx"
)

// TransactionStore is the slice of the transaction store the tracker needs:
// the store stays the source of truth, the tracker never caches records.
type TransactionStore interface {
	// GetTransaction returns the record with the given id or an error when it
	// does not exist.
	GetTransaction(ctx context.Context, id string) (bridgetx.Transaction, error)

	// SaveTransaction upserts the record wholesale.
	SaveTransaction(ctx context.Context, tx bridgetx.Transaction) error
}
