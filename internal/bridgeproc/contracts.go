package bridgeproc

import (
	"context"

	"github.com/crosslane/bridgewatch/internal/bridgetx"
	"github.com/crosslane/bridgewatch/internal/chainadapter"
	"github.com/crosslane/bridgewatch/internal/txtracker"
	"github.com/crosslane/bridgewatch/internal/xreserve"
)

// TransactionStore is the slice of the transaction store the orchestration
// layer consumes.
type TransactionStore interface {
	// SaveTransaction upserts the record wholesale.
	SaveTransaction(ctx context.Context, tx bridgetx.Transaction) error

	// GetTransaction returns the record with the given id.
	GetTransaction(ctx context.Context, id string) (bridgetx.Transaction, error)

	// GetInFlightTransactions returns the user's records still progressing,
	// used to re-establish tracking after a restart.
	GetInFlightTransactions(ctx context.Context, userAddress string) ([]bridgetx.Transaction, error)
}

// Tracker registers transaction ids against the lifecycle event stream.
type Tracker interface {
	Track(id string, onUpdate txtracker.OnUpdateFunc)
	Untrack(id string)
}

// Engine drives the CCTP protocol steps through the chain adapter. It signs
// and submits approve, burn and mint, emitting lifecycle events as it goes;
// step bookkeeping happens in the tracker, not here.
type Engine interface {
	Execute(ctx context.Context, adapter chainadapter.Adapter, tx bridgetx.Transaction) error
}

// Depositor runs the xReserve deposit protocol for Canton-bound transfers.
type Depositor interface {
	Deposit(ctx context.Context, wallet chainadapter.Wallet, params xreserve.DepositParams, callbacks xreserve.DepositCallbacks) (xreserve.DepositResult, error)
}
