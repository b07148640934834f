package txtracker

import "context"

// Engine method names carried by lifecycle events. Anything else is ignored,
// which keeps the mapping forward-compatible with engines that emit more.
const (
	methodApprove          = "approve"
	methodBurn             = "burn"
	methodFetchAttestation = "fetchAttestation"
	methodMint             = "mint"
)

// Event is one protocol lifecycle notification from the bridging engine.
// Values is the raw payload as emitted; consumers pick the keys they know.
type Event struct {
	TransactionID string
	Method        string
	Values        map[string]any
}

// TxHash returns the transaction hash payload field, when present.
func (e Event) TxHash() string {
	return e.stringValue("txHash")
}

// AttestationData returns the attestation payload field, when present.
func (e Event) AttestationData() string {
	return e.stringValue("data")
}

func (e Event) stringValue(key string) string {
	v, ok := e.Values[key]
	if !ok {
		return ""
	}

	s, _ := v.(string)
	return s
}

// EventSource is the bridging engine's lifecycle event stream. Subscribe
// returns a channel that delivers events in emission order and is closed when
// the engine shuts down or the context is cancelled.
type EventSource interface {
	Subscribe(ctx context.Context) (<-chan Event, error)
}
