// Package bridgeproc is the orchestration layer: it turns user intent into
// persisted transfer records and drives them to completion through the chain
// adapter factory, the lifecycle tracker and the xReserve deposit flow.
//
// The layer is deliberately thin. Step bookkeeping belongs to the tracker and
// the store; bridgeproc owns the step templates, the retry and dismissal
// contracts, and the restart path that re-registers in-flight transfers.
package bridgeproc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/crosslane/bridgewatch/internal/addrcheck"
	"github.com/crosslane/bridgewatch/internal/bridgetx"
	"github.com/crosslane/bridgewatch/internal/chainadapter"
	"github.com/crosslane/bridgewatch/internal/networks"
	"github.com/crosslane/bridgewatch/internal/pkg/logger"
	"github.com/crosslane/bridgewatch/internal/pkg/types"
	"github.com/crosslane/bridgewatch/internal/pkg/validator"
	"github.com/crosslane/bridgewatch/internal/xreserve"
)

var (
	// ErrNotRetryable is returned when a retry is requested for a record
	// that is not failed-with-progress.
	ErrNotRetryable = errors.New("transaction is not retryable")

	// ErrNotDismissable is returned when dismissal is requested for a record
	// that already completed or was cancelled.
	ErrNotDismissable = errors.New("transaction cannot be dismissed")

	// ErrAmountRequired is returned when a transfer is created with a zero
	// amount.
	ErrAmountRequired = errors.New("transfer amount must be positive")
)

// CreateParams describes a new transfer.
type CreateParams struct {
	UserAddress        string `validate:"required"`
	DestinationAddress string
	FromChain          networks.ChainID `validate:"required"`
	ToChain            networks.ChainID `validate:"required"`
	Amount             types.Amount     `validate:"required"`
	TransferMethod     bridgetx.TransferMethod
}

// Service is the orchestration surface consumed by the UI and the CLI.
type Service interface {
	// CreateTransfer validates the route and recipient, builds the record
	// with its route-specific step template, persists it and returns it.
	CreateTransfer(ctx context.Context, params CreateParams) (bridgetx.Transaction, error)

	// ExecuteTransfer drives a created transfer: it switches the wallet to
	// the source chain, obtains the adapter and runs the route's protocol.
	// The returned record reflects the state at the time the protocol call
	// returned; the tracker may keep advancing it afterwards.
	ExecuteTransfer(ctx context.Context, wallet chainadapter.Wallet, id string) (bridgetx.Transaction, error)

	// ResumeTracking re-registers the user's in-flight transfers with the
	// tracker. Tracking registrations do not survive a restart; this is the
	// restart path.
	ResumeTracking(ctx context.Context, userAddress string) (int, error)

	// RetryTransfer re-enters a failed-with-progress transfer into the state
	// machine from its last completed step.
	RetryTransfer(ctx context.Context, wallet chainadapter.Wallet, id string) (bridgetx.Transaction, error)

	// DismissTransfer cancels a transfer that has not completed. Completed
	// and already-cancelled records are immutable history.
	DismissTransfer(ctx context.Context, id string) (bridgetx.Transaction, error)
}

type service struct {
	store     TransactionStore
	tracker   Tracker
	adapters  chainadapter.Factory
	engine    Engine
	depositor Depositor

	now func() time.Time
}

var _ Service = (*service)(nil)

// Option configures the orchestration service.
type Option func(*service)

// WithClock overrides the time source, used by tests to pin timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// New creates the orchestration service from its collaborators.
func New(store TransactionStore, tracker Tracker, adapters chainadapter.Factory, engine Engine, depositor Depositor, opts ...Option) *service {
	s := &service{
		store:     store,
		tracker:   tracker,
		adapters:  adapters,
		engine:    engine,
		depositor: depositor,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CreateTransfer(ctx context.Context, params CreateParams) (bridgetx.Transaction, error) {
	if err := validator.Validate(params); err != nil {
		return bridgetx.Transaction{}, err
	}

	if _, err := types.AmountFromString(params.Amount.String()); err != nil {
		return bridgetx.Transaction{}, err
	}
	if params.Amount.IsZero() {
		return bridgetx.Transaction{}, ErrAmountRequired
	}

	if _, err := networks.Lookup(params.FromChain); err != nil {
		return bridgetx.Transaction{}, err
	}

	toCfg, err := networks.Lookup(params.ToChain)
	if err != nil {
		return bridgetx.Transaction{}, err
	}

	// Canton recipients are party identifiers, not chain addresses; every
	// other destination must pass its family's format rules.
	if params.DestinationAddress != "" && toCfg.Family != networks.FamilyCanton {
		if err := addrcheck.Validate(params.DestinationAddress, toCfg.Family); err != nil {
			return bridgetx.Transaction{}, err
		}
	}

	now := s.now()

	tx := bridgetx.Transaction{
		ID:                 uuid.NewString(),
		UserAddress:        params.UserAddress,
		FromChain:          params.FromChain,
		ToChain:            params.ToChain,
		Amount:             params.Amount,
		Token:              "USDC",
		TransferMethod:     params.TransferMethod,
		Status:             bridgetx.StatusPending,
		DestinationAddress: params.DestinationAddress,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if toCfg.Family == networks.FamilyCanton {
		tx.Steps = bridgetx.XReserveSteps(now)
		tx.EstimatedTime = bridgetx.EstimateXReserveDeposit
	} else {
		tx.Steps = bridgetx.CCTPSteps(now)
		tx.EstimatedTime = bridgetx.EstimateStandard
		if params.TransferMethod == bridgetx.TransferFast {
			tx.EstimatedTime = bridgetx.EstimateFast
		}
	}

	if err := s.store.SaveTransaction(ctx, tx); err != nil {
		return bridgetx.Transaction{}, err
	}

	return tx, nil
}

func (s *service) ExecuteTransfer(ctx context.Context, wallet chainadapter.Wallet, id string) (bridgetx.Transaction, error) {
	tx, err := s.store.GetTransaction(ctx, id)
	if err != nil {
		return bridgetx.Transaction{}, err
	}

	if err := chainadapter.EnsureNetwork(ctx, wallet, tx.FromChain); err != nil {
		return bridgetx.Transaction{}, fmt.Errorf("switching wallet to %q: %w", tx.FromChain, err)
	}

	if tx.ToChain == networks.Canton {
		return s.executeDeposit(ctx, wallet, tx)
	}

	return s.executeCCTP(ctx, wallet, tx)
}

// executeCCTP registers the transfer with the tracker and hands it to the
// bridging engine; step advancement arrives through lifecycle events.
func (s *service) executeCCTP(ctx context.Context, wallet chainadapter.Wallet, tx bridgetx.Transaction) (bridgetx.Transaction, error) {
	fromCfg, err := networks.Lookup(tx.FromChain)
	if err != nil {
		return bridgetx.Transaction{}, err
	}

	adapter, err := s.adapters.GetAdapter(ctx, wallet, fromCfg.Family, tx.FromChain)
	if err != nil {
		return bridgetx.Transaction{}, err
	}

	s.tracker.Track(tx.ID, s.onTrackedUpdate)

	if err := s.engine.Execute(ctx, adapter, tx); err != nil {
		s.tracker.Untrack(tx.ID)
		return s.markFailed(ctx, tx.ID, err)
	}

	return s.store.GetTransaction(ctx, tx.ID)
}

// executeDeposit runs the synchronous xReserve protocol, persisting step
// completion at each callback. The transfer parks at the attestation step;
// claiming happens externally.
func (s *service) executeDeposit(ctx context.Context, wallet chainadapter.Wallet, tx bridgetx.Transaction) (bridgetx.Transaction, error) {
	callbacks := xreserve.DepositCallbacks{
		OnApproveTx: func(txHash string) {
			s.completeStep(ctx, tx.ID, bridgetx.StepApprove, txHash)
		},
		OnDepositTx: func(txHash string) {
			s.completeStep(ctx, tx.ID, bridgetx.StepDeposit, txHash)
		},
		OnAttestationPending: func() {
			logger.Info(ctx, "deposit confirmed, awaiting attestation externally",
				"transaction.id", tx.ID,
				"claim.docs", xreserve.CantonClaimDocsURL,
			)
		},
	}

	result, err := s.depositor.Deposit(ctx, wallet, xreserve.DepositParams{
		SourceChain:     tx.FromChain,
		Amount:          tx.Amount,
		CantonRecipient: tx.Recipient(),
	}, callbacks)
	if err != nil {
		return s.markFailed(ctx, tx.ID, err)
	}

	updated, err := s.store.GetTransaction(ctx, tx.ID)
	if err != nil {
		return bridgetx.Transaction{}, err
	}

	updated.SourceTxHash = result.DepositTxHash
	updated.Touch(s.now())
	if err := s.store.SaveTransaction(ctx, updated); err != nil {
		return bridgetx.Transaction{}, err
	}

	return updated, nil
}

func (s *service) ResumeTracking(ctx context.Context, userAddress string) (int, error) {
	inFlight, err := s.store.GetInFlightTransactions(ctx, userAddress)
	if err != nil {
		return 0, err
	}

	for _, tx := range inFlight {
		s.tracker.Track(tx.ID, s.onTrackedUpdate)
	}

	return len(inFlight), nil
}

func (s *service) RetryTransfer(ctx context.Context, wallet chainadapter.Wallet, id string) (bridgetx.Transaction, error) {
	tx, err := s.store.GetTransaction(ctx, id)
	if err != nil {
		return bridgetx.Transaction{}, err
	}

	if !tx.IsRetryable() {
		return bridgetx.Transaction{}, fmt.Errorf("%w: %q has status %q", ErrNotRetryable, id, tx.Status)
	}

	now := s.now()

	// Re-arm the state machine from the last completed step: failed steps go
	// back to pending and the record leaves the failed status.
	for i := range tx.Steps {
		if tx.Steps[i].Status == bridgetx.StepFailed {
			tx.Steps[i].Status = bridgetx.StepPending
			tx.Steps[i].Error = ""
			tx.Steps[i].Timestamp = now
		}
	}
	tx.Status = bridgetx.StatusBridging
	tx.Error = ""
	tx.Touch(now)

	if err := s.store.SaveTransaction(ctx, tx); err != nil {
		return bridgetx.Transaction{}, err
	}

	return s.ExecuteTransfer(ctx, wallet, id)
}

func (s *service) DismissTransfer(ctx context.Context, id string) (bridgetx.Transaction, error) {
	tx, err := s.store.GetTransaction(ctx, id)
	if err != nil {
		return bridgetx.Transaction{}, err
	}

	if tx.Status == bridgetx.StatusCompleted || tx.Status == bridgetx.StatusCancelled {
		return bridgetx.Transaction{}, fmt.Errorf("%w: %q has status %q", ErrNotDismissable, id, tx.Status)
	}

	s.tracker.Untrack(id)

	now := s.now()
	for i := range tx.Steps {
		switch tx.Steps[i].Status {
		case bridgetx.StepPending, bridgetx.StepInProgress:
			tx.Steps[i].Status = bridgetx.StepCancelled
			tx.Steps[i].Timestamp = now
		}
	}
	tx.Status = bridgetx.StatusCancelled
	tx.Touch(now)

	if err := s.store.SaveTransaction(ctx, tx); err != nil {
		return bridgetx.Transaction{}, err
	}

	return tx, nil
}

// onTrackedUpdate untracks transfers once the tracker has driven them to a
// terminal state.
func (s *service) onTrackedUpdate(tx bridgetx.Transaction) {
	if !tx.IsTerminal() {
		return
	}

	s.tracker.Untrack(tx.ID)
	logger.Info(context.Background(), "tracked transfer reached a terminal state",
		"transaction.id", tx.ID,
		"transaction.status", tx.Status,
	)
}

// completeStep applies one step completion through the shared advancement
// rule and persists it as a single write.
func (s *service) completeStep(ctx context.Context, id string, stepID bridgetx.StepID, txHash string) {
	tx, err := s.store.GetTransaction(ctx, id)
	if err != nil {
		logger.Error(ctx, "step completion lost, record lookup failed",
			"transaction.id", id,
			"step.id", stepID,
			"error", err,
		)
		return
	}

	if !tx.CompleteStep(stepID, txHash, s.now()) {
		return
	}

	if err := s.store.SaveTransaction(ctx, tx); err != nil {
		logger.Error(ctx, "step completion lost, persistence failed",
			"transaction.id", id,
			"step.id", stepID,
			"error", err,
		)
	}
}

// markFailed records a protocol failure on the step that was running,
// preserving completed progress for retry.
func (s *service) markFailed(ctx context.Context, id string, cause error) (bridgetx.Transaction, error) {
	tx, err := s.store.GetTransaction(ctx, id)
	if err != nil {
		return bridgetx.Transaction{}, errors.Join(cause, err)
	}

	tx.FailStep(currentStep(&tx), cause.Error(), s.now())

	if err := s.store.SaveTransaction(ctx, tx); err != nil {
		return bridgetx.Transaction{}, errors.Join(cause, err)
	}

	return tx, cause
}

// currentStep picks the step a failure should land on: the one in progress,
// else the first still pending, else the last step.
func currentStep(tx *bridgetx.Transaction) bridgetx.StepID {
	for _, step := range tx.Steps {
		if step.Status == bridgetx.StepInProgress {
			return step.ID
		}
	}
	for _, step := range tx.Steps {
		if step.Status == bridgetx.StepPending {
			return step.ID
		}
	}
	return tx.Steps[len(tx.Steps)-1].ID
}
