package bridgeproc

import (
	"context"

	"github.com/crosslane/bridgewatch/internal/bridgetx"
	"github.com/crosslane/bridgewatch/internal/chainadapter"
	"github.com/crosslane/bridgewatch/internal/pkg/logger"
)

// trackingOnlyEngine is the Engine used when CCTP signing runs out of process,
// in the user's wallet session. Execute records the handoff and returns; the
// transfer advances purely through lifecycle events arriving at the tracker.
type trackingOnlyEngine struct{}

var _ Engine = (*trackingOnlyEngine)(nil)

// NewTrackingOnlyEngine creates an engine that defers protocol execution to an
// external bridging engine and relies on its lifecycle events for progress.
func NewTrackingOnlyEngine() *trackingOnlyEngine {
	return new(trackingOnlyEngine)
}

func (trackingOnlyEngine) Execute(ctx context.Context, adapter chainadapter.Adapter, tx bridgetx.Transaction) error {
	logger.Info(ctx, "transfer handed off to the external bridging engine",
		"transaction.id", tx.ID,
		"transaction.from_chain", tx.FromChain,
		"transaction.to_chain", tx.ToChain,
		"adapter.family", adapter.Family(),
	)
	return nil
}
