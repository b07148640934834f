// Package bridgetx defines the bridge transaction data model shared by the
// store, the event tracker, and the orchestration layer: the transaction
// record, its ordered steps, and the pure state-machine transitions between
// them.
//
// A transaction is created in StatusPending with every step StepPending. The
// first step leaving StepPending moves the transaction to StatusBridging.
// Steps advance strictly left to right; completing the final step makes the
// transaction StatusCompleted. A failing step makes it StatusFailed while
// later steps stay pending, which is the expected shape of a partially
// completed cross-chain transfer.
package bridgetx

import (
	"time"

	"github.com/crosslane/bridgewatch/internal/networks"
	"github.com/crosslane/bridgewatch/internal/pkg/types"
)

// Status is the lifecycle state of a whole transaction.
type Status string

const (
	StatusPending   Status = "pending"
	StatusBridging  Status = "bridging"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// StepStatus is the lifecycle state of a single protocol step.
type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepInProgress StepStatus = "in_progress"
	StepCompleted  StepStatus = "completed"
	StepFailed     StepStatus = "failed"
	StepCancelled  StepStatus = "cancelled"
	StepSkipped    StepStatus = "skipped"
)

// StepID is a stable slug identifying a protocol step.
type StepID string

const (
	StepApprove     StepID = "approve"
	StepBurn        StepID = "burn"
	StepAttestation StepID = "attestation"
	StepMint        StepID = "mint"

	// StepDeposit replaces burn/mint on the xReserve path to Canton.
	StepDeposit StepID = "deposit"
)

// TransferMethod selects the CCTP transfer flavor. It affects fees and the
// advisory completion estimate, not the step structure.
type TransferMethod string

const (
	TransferStandard TransferMethod = "standard"
	TransferFast     TransferMethod = "fast"
)

// Advisory completion estimates per transfer method. The xReserve estimate
// covers Ethereum finality plus Circle's attestation window.
const (
	EstimateFast            = 30 * time.Second
	EstimateStandard        = 15 * time.Minute
	EstimateXReserveDeposit = 15 * time.Minute
)

// Step is one entry in a transaction's fixed, ordered step sequence.
type Step struct {
	ID        StepID     `json:"id"`
	Name      string     `json:"name"`
	Status    StepStatus `json:"status"`
	TxHash    string     `json:"txHash,omitempty"`
	Error     string     `json:"error,omitempty"`
	Timestamp time.Time  `json:"timestamp"` // last transition time
}

// Fees is the network/bridge/total fee breakdown attached to a transaction.
type Fees struct {
	Network types.Amount `json:"network,omitempty"`
	Bridge  types.Amount `json:"bridge,omitempty"`
	Total   types.Amount `json:"total,omitempty"`
}

// Transaction is the central bridge transfer record. It is the durable
// contract persisted by the transaction store: all fields must round-trip
// losslessly, amounts stay decimal strings, and address casing is preserved
// verbatim (Base58 addresses are case-sensitive).
type Transaction struct {
	ID          string `json:"id"`
	UserAddress string `json:"userAddress"`

	FromChain networks.ChainID `json:"fromChain"`
	ToChain   networks.ChainID `json:"toChain"`

	Amount          types.Amount `json:"amount"`
	Token           string       `json:"token"`
	ProviderFeeUSDC types.Amount `json:"providerFeeUsdc,omitempty"`
	Fees            *Fees        `json:"fees,omitempty"`

	TransferMethod TransferMethod `json:"transferMethod"`

	Status Status `json:"status"`
	Steps  []Step `json:"steps"`

	SourceAddress      string `json:"sourceAddress,omitempty"`
	DestinationAddress string `json:"destinationAddress,omitempty"`

	SourceTxHash      string `json:"sourceTxHash,omitempty"`
	DestinationTxHash string `json:"destinationTxHash,omitempty"`
	AttestationHash   string `json:"attestationHash,omitempty"`

	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	CompletedAt   *time.Time    `json:"completedAt,omitempty"`
	EstimatedTime time.Duration `json:"estimatedTime,omitempty"` // advisory only

	Error string `json:"error,omitempty"` // set only when Status is failed
}

// CCTPSteps returns the fixed step sequence for a CCTP transfer, all pending.
func CCTPSteps(now time.Time) []Step {
	return []Step{
		{ID: StepApprove, Name: "Approve", Status: StepPending, Timestamp: now},
		{ID: StepBurn, Name: "Burn", Status: StepPending, Timestamp: now},
		{ID: StepAttestation, Name: "Attestation", Status: StepPending, Timestamp: now},
		{ID: StepMint, Name: "Mint", Status: StepPending, Timestamp: now},
	}
}

// XReserveSteps returns the fixed step sequence for an xReserve deposit to
// Canton, all pending. Attestation completion is not observed in-app: the
// final step parks in progress until the user claims on Canton.
func XReserveSteps(now time.Time) []Step {
	return []Step{
		{ID: StepApprove, Name: "Approve", Status: StepPending, Timestamp: now},
		{ID: StepDeposit, Name: "Deposit", Status: StepPending, Timestamp: now},
		{ID: StepAttestation, Name: "Attestation", Status: StepPending, Timestamp: now},
	}
}

// Step returns a pointer to the step with the given id, or nil when the
// transaction has no such step.
func (t *Transaction) Step(id StepID) *Step {
	for i := range t.Steps {
		if t.Steps[i].ID == id {
			return &t.Steps[i]
		}
	}
	return nil
}

// stepIndex returns the position of the step with the given id, or -1.
func (t *Transaction) stepIndex(id StepID) int {
	for i := range t.Steps {
		if t.Steps[i].ID == id {
			return i
		}
	}
	return -1
}

// CompleteStep marks the identified step completed, recording the transaction
// hash, and applies the advancement rule in the same mutation: the next
// pending step moves to in progress, a pending transaction moves to bridging,
// and completing the final step finalizes the whole transaction. The caller
// persists the record afterwards so the transition is a single write.
//
// It reports whether the transaction changed; unknown step ids are a no-op.
func (t *Transaction) CompleteStep(id StepID, txHash string, now time.Time) bool {
	i := t.stepIndex(id)
	if i < 0 {
		return false
	}

	step := &t.Steps[i]
	step.Status = StepCompleted
	step.Timestamp = now
	if txHash != "" {
		step.TxHash = txHash
	}

	if next := i + 1; next < len(t.Steps) {
		if t.Steps[next].Status == StepPending {
			t.Steps[next].Status = StepInProgress
			t.Steps[next].Timestamp = now
		}
	} else {
		t.Status = StatusCompleted
		completedAt := now
		t.CompletedAt = &completedAt
	}

	if t.Status == StatusPending {
		t.Status = StatusBridging
	}

	t.Touch(now)
	return true
}

// StartStep moves the identified step from pending to in progress, flipping a
// pending transaction to bridging. It reports whether anything changed.
func (t *Transaction) StartStep(id StepID, now time.Time) bool {
	step := t.Step(id)
	if step == nil || step.Status != StepPending {
		return false
	}

	step.Status = StepInProgress
	step.Timestamp = now

	if t.Status == StatusPending {
		t.Status = StatusBridging
	}

	t.Touch(now)
	return true
}

// FailStep marks the identified step failed with the given reason and moves
// the transaction to StatusFailed. Later steps stay pending so the transfer
// remains resumable from its last completed step.
func (t *Transaction) FailStep(id StepID, reason string, now time.Time) bool {
	step := t.Step(id)
	if step == nil {
		return false
	}

	step.Status = StepFailed
	step.Error = reason
	step.Timestamp = now

	t.Status = StatusFailed
	t.Error = reason
	t.Touch(now)
	return true
}

// Touch bumps UpdatedAt to a value strictly greater than its previous value,
// even when the clock has not advanced past it.
func (t *Transaction) Touch(now time.Time) {
	if !now.After(t.UpdatedAt) {
		now = t.UpdatedAt.Add(time.Millisecond)
	}
	t.UpdatedAt = now
}

// IsTerminal reports whether the transaction reached a terminal status.
func (t *Transaction) IsTerminal() bool {
	switch t.Status {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// IsInFlight reports whether the transaction is still progressing and should
// be re-tracked after a process restart.
func (t *Transaction) IsInFlight() bool {
	return t.Status == StatusPending || t.Status == StatusBridging
}

// IsRetryable reports whether a failed transaction has progress to resume
// from: at least one completed step. A failure with zero completed steps has
// nothing to resume and must be restarted from scratch.
func (t *Transaction) IsRetryable() bool {
	if t.Status != StatusFailed {
		return false
	}

	for _, step := range t.Steps {
		if step.Status == StepCompleted {
			return true
		}
	}
	return false
}

// Recipient returns the explicit destination address, falling back to the
// user address for records created before destination fields existed.
func (t *Transaction) Recipient() string {
	if t.DestinationAddress != "" {
		return t.DestinationAddress
	}
	return t.UserAddress
}
