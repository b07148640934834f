package bridgeproc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/crosslane/bridgewatch/internal/addrcheck"
	"github.com/crosslane/bridgewatch/internal/bridgetx"
	"github.com/crosslane/bridgewatch/internal/chainadapter"
	"github.com/crosslane/bridgewatch/internal/networks"
	"github.com/crosslane/bridgewatch/internal/pkg/types"
	"github.com/crosslane/bridgewatch/internal/pkg/validator"
	"github.com/crosslane/bridgewatch/internal/txstore"
	"github.com/crosslane/bridgewatch/internal/xreserve"
)

var testClock = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

// newStatefulStore wires a store mock whose expectations behave like a real
// in-memory store, so orchestration flows can read back what they wrote.
func newStatefulStore(t *testing.T, seed ...bridgetx.Transaction) (*TransactionStoreMock, map[string]bridgetx.Transaction) {
	t.Helper()

	records := make(map[string]bridgetx.Transaction)
	for _, tx := range seed {
		records[tx.ID] = tx
	}

	storeMock := NewTransactionStoreMock(t)
	storeMock.EXPECT().
		SaveTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, tx bridgetx.Transaction) error {
			records[tx.ID] = tx
			return nil
		}).
		Maybe()
	storeMock.EXPECT().
		GetTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, id string) (bridgetx.Transaction, error) {
			tx, ok := records[id]
			if !ok {
				return bridgetx.Transaction{}, txstore.ErrTransactionNotFound
			}
			return tx, nil
		}).
		Maybe()

	return storeMock, records
}

func newEVMWallet(t *testing.T) *chainadapter.WalletMock {
	t.Helper()

	walletMock := chainadapter.NewWalletMock(t)
	walletMock.EXPECT().ChainType().Return(networks.FamilyEVM).Maybe()
	walletMock.EXPECT().Address().Return("0xWallet").Maybe()
	walletMock.EXPECT().SwitchNetwork(mock.Anything, mock.Anything).Return(nil).Maybe()
	walletMock.EXPECT().EVMProvider(mock.Anything).Return(chainadapter.NewEVMProviderMock(t), nil).Maybe()

	return walletMock
}

func seedCCTPTransaction(id string) bridgetx.Transaction {
	return bridgetx.Transaction{
		ID:             id,
		UserAddress:    "0xUser",
		FromChain:      networks.Ethereum,
		ToChain:        networks.Base,
		Amount:         types.Amount("100.00"),
		Token:          "USDC",
		TransferMethod: bridgetx.TransferStandard,
		Status:         bridgetx.StatusPending,
		Steps:          bridgetx.CCTPSteps(testClock),
		CreatedAt:      testClock,
		UpdatedAt:      testClock,
	}
}

func TestService_CreateTransfer(t *testing.T) {
	clock := func() time.Time { return testClock }

	t.Run("CCTP route gets the four-step template", func(t *testing.T) {
		ctx := t.Context()

		storeMock, records := newStatefulStore(t)
		svc := New(storeMock, NewTrackerMock(t), chainadapter.NewFactory(), NewEngineMock(t), NewDepositorMock(t), WithClock(clock))

		tx, err := svc.CreateTransfer(ctx, CreateParams{
			UserAddress:        "0xUser",
			DestinationAddress: "0x1111111111111111111111111111111111111111",
			FromChain:          networks.Ethereum,
			ToChain:            networks.Base,
			Amount:             types.Amount("250.50"),
			TransferMethod:     bridgetx.TransferStandard,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, tx.ID)
		assert.Equal(t, bridgetx.StatusPending, tx.Status)
		assert.Equal(t, "USDC", tx.Token)
		assert.Equal(t, bridgetx.EstimateStandard, tx.EstimatedTime)
		assert.Equal(t, testClock, tx.CreatedAt)

		require.Len(t, tx.Steps, 4)
		assert.Equal(t, bridgetx.StepApprove, tx.Steps[0].ID)
		assert.Equal(t, bridgetx.StepBurn, tx.Steps[1].ID)
		assert.Equal(t, bridgetx.StepAttestation, tx.Steps[2].ID)
		assert.Equal(t, bridgetx.StepMint, tx.Steps[3].ID)

		assert.Equal(t, tx, records[tx.ID])
	})

	t.Run("fast method shortens the estimate", func(t *testing.T) {
		ctx := t.Context()

		storeMock, _ := newStatefulStore(t)
		svc := New(storeMock, NewTrackerMock(t), chainadapter.NewFactory(), NewEngineMock(t), NewDepositorMock(t), WithClock(clock))

		tx, err := svc.CreateTransfer(ctx, CreateParams{
			UserAddress:    "0xUser",
			FromChain:      networks.Ethereum,
			ToChain:        networks.Base,
			Amount:         types.Amount("1.00"),
			TransferMethod: bridgetx.TransferFast,
		})
		require.NoError(t, err)
		assert.Equal(t, bridgetx.EstimateFast, tx.EstimatedTime)
	})

	t.Run("Canton destination gets the xReserve template", func(t *testing.T) {
		ctx := t.Context()

		storeMock, _ := newStatefulStore(t)
		svc := New(storeMock, NewTrackerMock(t), chainadapter.NewFactory(), NewEngineMock(t), NewDepositorMock(t), WithClock(clock))

		// A Canton party identifier is not a chain address and skips address
		// format validation entirely.
		tx, err := svc.CreateTransfer(ctx, CreateParams{
			UserAddress:        "0xUser",
			DestinationAddress: "alice::1220deadbeef",
			FromChain:          networks.Ethereum,
			ToChain:            networks.Canton,
			Amount:             types.Amount("50.00"),
		})
		require.NoError(t, err)

		assert.Equal(t, bridgetx.EstimateXReserveDeposit, tx.EstimatedTime)

		require.Len(t, tx.Steps, 3)
		assert.Equal(t, bridgetx.StepApprove, tx.Steps[0].ID)
		assert.Equal(t, bridgetx.StepDeposit, tx.Steps[1].ID)
		assert.Equal(t, bridgetx.StepAttestation, tx.Steps[2].ID)
	})

	t.Run("malformed destination is rejected before saving", func(t *testing.T) {
		ctx := t.Context()

		storeMock := NewTransactionStoreMock(t)
		svc := New(storeMock, NewTrackerMock(t), chainadapter.NewFactory(), NewEngineMock(t), NewDepositorMock(t), WithClock(clock))

		_, err := svc.CreateTransfer(ctx, CreateParams{
			UserAddress:        "0xUser",
			DestinationAddress: "not-an-address",
			FromChain:          networks.Ethereum,
			ToChain:            networks.Base,
			Amount:             types.Amount("1.00"),
		})
		assert.ErrorIs(t, err, addrcheck.ErrInvalidAddress)
	})

	t.Run("unsupported chain is rejected", func(t *testing.T) {
		ctx := t.Context()

		storeMock := NewTransactionStoreMock(t)
		svc := New(storeMock, NewTrackerMock(t), chainadapter.NewFactory(), NewEngineMock(t), NewDepositorMock(t), WithClock(clock))

		_, err := svc.CreateTransfer(ctx, CreateParams{
			UserAddress: "0xUser",
			FromChain:   networks.ChainID("Dogecoin"),
			ToChain:     networks.Base,
			Amount:      types.Amount("1.00"),
		})
		assert.ErrorIs(t, err, networks.ErrUnsupportedChain)
	})

	t.Run("zero amount is rejected", func(t *testing.T) {
		ctx := t.Context()

		storeMock := NewTransactionStoreMock(t)
		svc := New(storeMock, NewTrackerMock(t), chainadapter.NewFactory(), NewEngineMock(t), NewDepositorMock(t), WithClock(clock))

		_, err := svc.CreateTransfer(ctx, CreateParams{
			UserAddress: "0xUser",
			FromChain:   networks.Ethereum,
			ToChain:     networks.Base,
			Amount:      types.Amount("0"),
		})
		assert.ErrorIs(t, err, ErrAmountRequired)
	})

	t.Run("malformed amount is rejected", func(t *testing.T) {
		ctx := t.Context()

		storeMock := NewTransactionStoreMock(t)
		svc := New(storeMock, NewTrackerMock(t), chainadapter.NewFactory(), NewEngineMock(t), NewDepositorMock(t), WithClock(clock))

		_, err := svc.CreateTransfer(ctx, CreateParams{
			UserAddress: "0xUser",
			FromChain:   networks.Ethereum,
			ToChain:     networks.Base,
			Amount:      types.Amount("not-a-number"),
		})
		assert.Error(t, err)
	})

	t.Run("missing user address fails validation", func(t *testing.T) {
		ctx := t.Context()

		storeMock := NewTransactionStoreMock(t)
		svc := New(storeMock, NewTrackerMock(t), chainadapter.NewFactory(), NewEngineMock(t), NewDepositorMock(t), WithClock(clock))

		_, err := svc.CreateTransfer(ctx, CreateParams{
			FromChain: networks.Ethereum,
			ToChain:   networks.Base,
			Amount:    types.Amount("1.00"),
		})
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestService_ExecuteTransfer(t *testing.T) {
	clock := func() time.Time { return testClock }

	t.Run("CCTP route registers tracking and hands off to the engine", func(t *testing.T) {
		ctx := t.Context()

		storeMock, _ := newStatefulStore(t, seedCCTPTransaction("tx-1"))
		walletMock := newEVMWallet(t)
		factory := chainadapter.NewFactory(chainadapter.NewEVMCreator())

		trackerMock := NewTrackerMock(t)
		trackerMock.EXPECT().Track("tx-1", mock.Anything).Once()

		var executed bridgetx.Transaction
		engineMock := NewEngineMock(t)
		engineMock.EXPECT().
			Execute(mock.Anything, mock.Anything, mock.Anything).
			Run(func(ctx context.Context, adapter chainadapter.Adapter, tx bridgetx.Transaction) {
				executed = tx
				assert.Equal(t, networks.FamilyEVM, adapter.Family())
			}).
			Return(nil).
			Once()

		svc := New(storeMock, trackerMock, factory, engineMock, NewDepositorMock(t), WithClock(clock))

		tx, err := svc.ExecuteTransfer(ctx, walletMock, "tx-1")
		require.NoError(t, err)

		assert.Equal(t, "tx-1", executed.ID)
		assert.Equal(t, "tx-1", tx.ID)
	})

	t.Run("engine failure fails the current step and untracks", func(t *testing.T) {
		ctx := t.Context()

		storeMock, records := newStatefulStore(t, seedCCTPTransaction("tx-1"))
		walletMock := newEVMWallet(t)
		factory := chainadapter.NewFactory(chainadapter.NewEVMCreator())

		trackerMock := NewTrackerMock(t)
		trackerMock.EXPECT().Track("tx-1", mock.Anything).Once()
		trackerMock.EXPECT().Untrack("tx-1").Once()

		engineMock := NewEngineMock(t)
		engineMock.EXPECT().
			Execute(mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("burn reverted")).
			Once()

		svc := New(storeMock, trackerMock, factory, engineMock, NewDepositorMock(t), WithClock(clock))

		tx, err := svc.ExecuteTransfer(ctx, walletMock, "tx-1")
		require.ErrorContains(t, err, "burn reverted")

		assert.Equal(t, bridgetx.StatusFailed, tx.Status)
		assert.Equal(t, bridgetx.StepFailed, tx.Steps[0].Status)
		assert.Equal(t, "burn reverted", tx.Steps[0].Error)
		assert.Equal(t, bridgetx.StatusFailed, records["tx-1"].Status)
	})

	t.Run("wallet refusing to switch networks aborts", func(t *testing.T) {
		ctx := t.Context()

		storeMock, _ := newStatefulStore(t, seedCCTPTransaction("tx-1"))

		walletMock := chainadapter.NewWalletMock(t)
		walletMock.EXPECT().
			SwitchNetwork(mock.Anything, networks.Ethereum).
			Return(errors.New("user rejected")).
			Once()

		svc := New(storeMock, NewTrackerMock(t), chainadapter.NewFactory(), NewEngineMock(t), NewDepositorMock(t), WithClock(clock))

		_, err := svc.ExecuteTransfer(ctx, walletMock, "tx-1")
		assert.ErrorContains(t, err, "user rejected")
	})

	t.Run("missing record propagates not found", func(t *testing.T) {
		ctx := t.Context()

		storeMock, _ := newStatefulStore(t)
		svc := New(storeMock, NewTrackerMock(t), chainadapter.NewFactory(), NewEngineMock(t), NewDepositorMock(t), WithClock(clock))

		_, err := svc.ExecuteTransfer(ctx, newEVMWallet(t), "nope")
		assert.ErrorIs(t, err, txstore.ErrTransactionNotFound)
	})

	t.Run("Canton route advances steps through deposit callbacks", func(t *testing.T) {
		ctx := t.Context()

		seed := seedCCTPTransaction("tx-1")
		seed.ToChain = networks.Canton
		seed.DestinationAddress = "alice::1220deadbeef"
		seed.Steps = bridgetx.XReserveSteps(testClock)

		storeMock, records := newStatefulStore(t, seed)
		walletMock := newEVMWallet(t)

		depositorMock := NewDepositorMock(t)
		depositorMock.EXPECT().
			Deposit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, wallet chainadapter.Wallet, params xreserve.DepositParams, callbacks xreserve.DepositCallbacks) (xreserve.DepositResult, error) {
				assert.Equal(t, networks.Ethereum, params.SourceChain)
				assert.Equal(t, types.Amount("100.00"), params.Amount)
				assert.Equal(t, "alice::1220deadbeef", params.CantonRecipient)

				callbacks.OnApproveTx("0xaaa")
				callbacks.OnDepositTx("0xbbb")
				callbacks.OnAttestationPending()

				return xreserve.DepositResult{ApproveTxHash: "0xaaa", DepositTxHash: "0xbbb"}, nil
			}).
			Once()

		svc := New(storeMock, NewTrackerMock(t), chainadapter.NewFactory(), NewEngineMock(t), depositorMock, WithClock(clock))

		tx, err := svc.ExecuteTransfer(ctx, walletMock, "tx-1")
		require.NoError(t, err)

		assert.Equal(t, bridgetx.StatusBridging, tx.Status)
		assert.Equal(t, "0xbbb", tx.SourceTxHash)

		assert.Equal(t, bridgetx.StepCompleted, tx.Steps[0].Status)
		assert.Equal(t, "0xaaa", tx.Steps[0].TxHash)
		assert.Equal(t, bridgetx.StepCompleted, tx.Steps[1].Status)
		assert.Equal(t, "0xbbb", tx.Steps[1].TxHash)

		// The attestation step parks in progress; claiming happens externally.
		assert.Equal(t, bridgetx.StepInProgress, tx.Steps[2].Status)

		assert.Equal(t, tx, records["tx-1"])
	})

	t.Run("deposit failure after approve preserves completed progress", func(t *testing.T) {
		ctx := t.Context()

		seed := seedCCTPTransaction("tx-1")
		seed.ToChain = networks.Canton
		seed.Steps = bridgetx.XReserveSteps(testClock)

		storeMock, records := newStatefulStore(t, seed)
		walletMock := newEVMWallet(t)

		depositorMock := NewDepositorMock(t)
		depositorMock.EXPECT().
			Deposit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, wallet chainadapter.Wallet, params xreserve.DepositParams, callbacks xreserve.DepositCallbacks) (xreserve.DepositResult, error) {
				callbacks.OnApproveTx("0xaaa")
				return xreserve.DepositResult{ApproveTxHash: "0xaaa"}, errors.New("deposit reverted")
			}).
			Once()

		svc := New(storeMock, NewTrackerMock(t), chainadapter.NewFactory(), NewEngineMock(t), depositorMock, WithClock(clock))

		tx, err := svc.ExecuteTransfer(ctx, walletMock, "tx-1")
		require.ErrorContains(t, err, "deposit reverted")

		assert.Equal(t, bridgetx.StatusFailed, tx.Status)
		assert.Equal(t, bridgetx.StepCompleted, tx.Steps[0].Status)
		assert.Equal(t, bridgetx.StepFailed, tx.Steps[1].Status)
		assert.Equal(t, "deposit reverted", tx.Steps[1].Error)
		assert.Equal(t, bridgetx.StatusFailed, records["tx-1"].Status)
	})
}

func TestService_ResumeTracking(t *testing.T) {
	t.Run("re-registers every in-flight transfer", func(t *testing.T) {
		ctx := t.Context()

		storeMock := NewTransactionStoreMock(t)
		storeMock.EXPECT().
			GetInFlightTransactions(mock.Anything, "0xUser").
			Return([]bridgetx.Transaction{
				seedCCTPTransaction("tx-1"),
				seedCCTPTransaction("tx-2"),
			}, nil).
			Once()

		trackerMock := NewTrackerMock(t)
		trackerMock.EXPECT().Track("tx-1", mock.Anything).Once()
		trackerMock.EXPECT().Track("tx-2", mock.Anything).Once()

		svc := New(storeMock, trackerMock, chainadapter.NewFactory(), NewEngineMock(t), NewDepositorMock(t))

		count, err := svc.ResumeTracking(ctx, "0xUser")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		ctx := t.Context()

		storeMock := NewTransactionStoreMock(t)
		storeMock.EXPECT().
			GetInFlightTransactions(mock.Anything, "0xUser").
			Return(nil, errors.New("redis down")).
			Once()

		svc := New(storeMock, NewTrackerMock(t), chainadapter.NewFactory(), NewEngineMock(t), NewDepositorMock(t))

		_, err := svc.ResumeTracking(ctx, "0xUser")
		assert.ErrorContains(t, err, "redis down")
	})
}

func TestService_RetryTransfer(t *testing.T) {
	clock := func() time.Time { return testClock.Add(time.Hour) }

	t.Run("failed transfer with progress is re-armed and re-executed", func(t *testing.T) {
		ctx := t.Context()

		seed := seedCCTPTransaction("tx-1")
		seed.Status = bridgetx.StatusFailed
		seed.Error = "burn reverted"
		seed.Steps[0].Status = bridgetx.StepCompleted
		seed.Steps[0].TxHash = "0xapprove"
		seed.Steps[1].Status = bridgetx.StepFailed
		seed.Steps[1].Error = "burn reverted"

		storeMock, _ := newStatefulStore(t, seed)
		walletMock := newEVMWallet(t)
		factory := chainadapter.NewFactory(chainadapter.NewEVMCreator())

		trackerMock := NewTrackerMock(t)
		trackerMock.EXPECT().Track("tx-1", mock.Anything).Once()

		var executed bridgetx.Transaction
		engineMock := NewEngineMock(t)
		engineMock.EXPECT().
			Execute(mock.Anything, mock.Anything, mock.Anything).
			Run(func(ctx context.Context, adapter chainadapter.Adapter, tx bridgetx.Transaction) {
				executed = tx
			}).
			Return(nil).
			Once()

		svc := New(storeMock, trackerMock, factory, engineMock, NewDepositorMock(t), WithClock(clock))

		_, err := svc.RetryTransfer(ctx, walletMock, "tx-1")
		require.NoError(t, err)

		assert.Equal(t, bridgetx.StatusBridging, executed.Status)
		assert.Empty(t, executed.Error)

		// Completed progress is kept; the failed step goes back to pending.
		assert.Equal(t, bridgetx.StepCompleted, executed.Steps[0].Status)
		assert.Equal(t, "0xapprove", executed.Steps[0].TxHash)
		assert.Equal(t, bridgetx.StepPending, executed.Steps[1].Status)
		assert.Empty(t, executed.Steps[1].Error)
	})

	t.Run("completed transfer is not retryable", func(t *testing.T) {
		ctx := t.Context()

		seed := seedCCTPTransaction("tx-1")
		seed.Status = bridgetx.StatusCompleted

		storeMock, _ := newStatefulStore(t, seed)
		svc := New(storeMock, NewTrackerMock(t), chainadapter.NewFactory(), NewEngineMock(t), NewDepositorMock(t))

		_, err := svc.RetryTransfer(ctx, newEVMWallet(t), "tx-1")
		assert.ErrorIs(t, err, ErrNotRetryable)
	})

	t.Run("failure with zero completed steps is not retryable", func(t *testing.T) {
		ctx := t.Context()

		seed := seedCCTPTransaction("tx-1")
		seed.Status = bridgetx.StatusFailed
		seed.Steps[0].Status = bridgetx.StepFailed

		storeMock, _ := newStatefulStore(t, seed)
		svc := New(storeMock, NewTrackerMock(t), chainadapter.NewFactory(), NewEngineMock(t), NewDepositorMock(t))

		_, err := svc.RetryTransfer(ctx, newEVMWallet(t), "tx-1")
		assert.ErrorIs(t, err, ErrNotRetryable)
	})
}

func TestService_DismissTransfer(t *testing.T) {
	clock := func() time.Time { return testClock.Add(time.Hour) }

	t.Run("in-flight transfer is cancelled and untracked", func(t *testing.T) {
		ctx := t.Context()

		seed := seedCCTPTransaction("tx-1")
		seed.Status = bridgetx.StatusBridging
		seed.Steps[0].Status = bridgetx.StepCompleted
		seed.Steps[1].Status = bridgetx.StepInProgress

		storeMock, records := newStatefulStore(t, seed)

		trackerMock := NewTrackerMock(t)
		trackerMock.EXPECT().Untrack("tx-1").Once()

		svc := New(storeMock, trackerMock, chainadapter.NewFactory(), NewEngineMock(t), NewDepositorMock(t), WithClock(clock))

		tx, err := svc.DismissTransfer(ctx, "tx-1")
		require.NoError(t, err)

		assert.Equal(t, bridgetx.StatusCancelled, tx.Status)
		assert.Equal(t, bridgetx.StepCompleted, tx.Steps[0].Status)
		assert.Equal(t, bridgetx.StepCancelled, tx.Steps[1].Status)
		assert.Equal(t, bridgetx.StepCancelled, tx.Steps[2].Status)
		assert.Equal(t, bridgetx.StepCancelled, tx.Steps[3].Status)
		assert.Equal(t, bridgetx.StatusCancelled, records["tx-1"].Status)
	})

	t.Run("completed transfer is immutable history", func(t *testing.T) {
		ctx := t.Context()

		seed := seedCCTPTransaction("tx-1")
		seed.Status = bridgetx.StatusCompleted

		storeMock, _ := newStatefulStore(t, seed)
		svc := New(storeMock, NewTrackerMock(t), chainadapter.NewFactory(), NewEngineMock(t), NewDepositorMock(t))

		_, err := svc.DismissTransfer(ctx, "tx-1")
		assert.ErrorIs(t, err, ErrNotDismissable)
	})

	t.Run("already cancelled transfer is rejected", func(t *testing.T) {
		ctx := t.Context()

		seed := seedCCTPTransaction("tx-1")
		seed.Status = bridgetx.StatusCancelled

		storeMock, _ := newStatefulStore(t, seed)
		svc := New(storeMock, NewTrackerMock(t), chainadapter.NewFactory(), NewEngineMock(t), NewDepositorMock(t))

		_, err := svc.DismissTransfer(ctx, "tx-1")
		assert.ErrorIs(t, err, ErrNotDismissable)
	})

	t.Run("missing record propagates not found", func(t *testing.T) {
		ctx := t.Context()

		storeMock, _ := newStatefulStore(t)
		svc := New(storeMock, NewTrackerMock(t), chainadapter.NewFactory(), NewEngineMock(t), NewDepositorMock(t))

		_, err := svc.DismissTransfer(ctx, "nope")
		assert.ErrorIs(t, err, txstore.ErrTransactionNotFound)
	})
}
