package txtracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/crosslane/bridgewatch/internal/bridgetx"
	"github.com/crosslane/bridgewatch/internal/networks"
	"github.com/crosslane/bridgewatch/internal/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTrackedTransaction(id string) bridgetx.Transaction {
	createdAt := time.Now().UTC()

	return bridgetx.Transaction{
		ID:          id,
		UserAddress: "0xUser",
		FromChain:   networks.Ethereum,
		ToChain:     networks.Base,
		Amount:      types.Amount("250.50"),
		Token:       "USDC",
		Status:      bridgetx.StatusPending,
		Steps:       bridgetx.CCTPSteps(createdAt),
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

// waitUpdate blocks until the callback delivers an updated record or the test
// times out.
func waitUpdate(t *testing.T, updates <-chan bridgetx.Transaction) bridgetx.Transaction {
	t.Helper()

	select {
	case tx := <-updates:
		return tx
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an update callback")
		return bridgetx.Transaction{}
	}
}

// assertNoUpdate asserts that no callback fires within a short grace window.
func assertNoUpdate(t *testing.T, updates <-chan bridgetx.Transaction) {
	t.Helper()

	select {
	case tx := <-updates:
		t.Fatalf("unexpected update callback for transaction %q", tx.ID)
	case <-time.After(100 * time.Millisecond):
	}
}

// newStatefulStore wires a store mock that behaves like real storage for a
// single record: reads return the latest saved copy.
func newStatefulStore(t *testing.T, initial bridgetx.Transaction) *TransactionStoreMock {
	t.Helper()

	current := initial

	storeMock := NewTransactionStoreMock(t)
	storeMock.EXPECT().
		GetTransaction(mock.Anything, initial.ID).
		RunAndReturn(func(ctx context.Context, id string) (bridgetx.Transaction, error) {
			return current, nil
		})
	storeMock.EXPECT().
		SaveTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, tx bridgetx.Transaction) error {
			current = tx
			return nil
		})

	return storeMock
}

func TestService_Start(t *testing.T) {
	t.Run("second start before close is rejected", func(t *testing.T) {
		eventCh := make(chan Event)

		sourceMock := NewEventSourceMock(t)
		sourceMock.EXPECT().Subscribe(mock.Anything).Return(eventCh, nil).Once()

		storeMock := NewTransactionStoreMock(t)

		svc := New(sourceMock, storeMock)
		t.Cleanup(svc.Close)

		require.NoError(t, svc.Start(t.Context()))
		assert.ErrorIs(t, svc.Start(t.Context()), ErrServiceAlreadyStarted)
	})

	t.Run("subscription failure is propagated", func(t *testing.T) {
		expectedErr := errors.New("engine offline")

		sourceMock := NewEventSourceMock(t)
		sourceMock.EXPECT().Subscribe(mock.Anything).Return(nil, expectedErr).Once()

		storeMock := NewTransactionStoreMock(t)

		svc := New(sourceMock, storeMock)

		assert.ErrorIs(t, svc.Start(t.Context()), expectedErr)
	})
}

func TestService_EventSequence(t *testing.T) {
	t.Run("approve, burn, fetchAttestation and mint drive the record to completed", func(t *testing.T) {
		initial := newTrackedTransaction("tx-seq")

		eventCh := make(chan Event, 8)
		sourceMock := NewEventSourceMock(t)
		sourceMock.EXPECT().Subscribe(mock.Anything).Return(eventCh, nil).Once()

		storeMock := newStatefulStore(t, initial)

		svc := New(sourceMock, storeMock)
		t.Cleanup(svc.Close)

		updates := make(chan bridgetx.Transaction, 8)
		svc.Track("tx-seq", func(tx bridgetx.Transaction) { updates <- tx })

		require.NoError(t, svc.Start(t.Context()))

		eventCh <- Event{TransactionID: "tx-seq", Method: "approve", Values: map[string]any{"txHash": "0x01"}}
		afterApprove := waitUpdate(t, updates)
		assert.Equal(t, bridgetx.StatusBridging, afterApprove.Status)
		assert.Equal(t, bridgetx.StepCompleted, afterApprove.Step(bridgetx.StepApprove).Status)
		assert.Equal(t, "0x01", afterApprove.Step(bridgetx.StepApprove).TxHash)
		assert.Equal(t, bridgetx.StepInProgress, afterApprove.Step(bridgetx.StepBurn).Status)

		eventCh <- Event{TransactionID: "tx-seq", Method: "burn", Values: map[string]any{"txHash": "0x02"}}
		afterBurn := waitUpdate(t, updates)
		assert.Equal(t, bridgetx.StepCompleted, afterBurn.Step(bridgetx.StepBurn).Status)
		assert.Equal(t, "0x02", afterBurn.SourceTxHash)
		assert.Equal(t, bridgetx.StepInProgress, afterBurn.Step(bridgetx.StepAttestation).Status)

		eventCh <- Event{TransactionID: "tx-seq", Method: "fetchAttestation", Values: map[string]any{"data": "0xdeadbeef"}}
		afterAttestation := waitUpdate(t, updates)
		assert.Equal(t, "0xdeadbeef", afterAttestation.AttestationHash)
		assert.Equal(t, bridgetx.StepInProgress, afterAttestation.Step(bridgetx.StepAttestation).Status)
		assert.Equal(t, bridgetx.StatusBridging, afterAttestation.Status)

		eventCh <- Event{TransactionID: "tx-seq", Method: "mint", Values: map[string]any{"txHash": "0x03"}}
		final := waitUpdate(t, updates)
		assert.Equal(t, bridgetx.StepCompleted, final.Step(bridgetx.StepAttestation).Status)
		assert.Equal(t, bridgetx.StepCompleted, final.Step(bridgetx.StepMint).Status)
		assert.Equal(t, "0x03", final.DestinationTxHash)
		assert.Equal(t, bridgetx.StatusCompleted, final.Status)
		require.NotNil(t, final.CompletedAt)
		assert.True(t, final.UpdatedAt.After(initial.UpdatedAt))
	})

	t.Run("first approve event flips a fresh record to bridging", func(t *testing.T) {
		initial := newTrackedTransaction("tx-A")

		eventCh := make(chan Event, 1)
		sourceMock := NewEventSourceMock(t)
		sourceMock.EXPECT().Subscribe(mock.Anything).Return(eventCh, nil).Once()

		storeMock := newStatefulStore(t, initial)

		svc := New(sourceMock, storeMock)
		t.Cleanup(svc.Close)

		updates := make(chan bridgetx.Transaction, 1)
		svc.Track("tx-A", func(tx bridgetx.Transaction) { updates <- tx })

		require.NoError(t, svc.Start(t.Context()))

		eventCh <- Event{TransactionID: "tx-A", Method: "approve", Values: map[string]any{"txHash": "0xaa"}}

		got := waitUpdate(t, updates)
		assert.Equal(t, bridgetx.StepCompleted, got.Step(bridgetx.StepApprove).Status)
		assert.Equal(t, "0xaa", got.Step(bridgetx.StepApprove).TxHash)
		assert.Equal(t, bridgetx.StepInProgress, got.Step(bridgetx.StepBurn).Status)
		assert.Equal(t, bridgetx.StatusBridging, got.Status)
	})
}

func TestService_EventFiltering(t *testing.T) {
	t.Run("unknown engine methods never trigger a storage write", func(t *testing.T) {
		initial := newTrackedTransaction("tx-1")

		eventCh := make(chan Event, 2)
		sourceMock := NewEventSourceMock(t)
		sourceMock.EXPECT().Subscribe(mock.Anything).Return(eventCh, nil).Once()

		storeMock := NewTransactionStoreMock(t)
		storeMock.EXPECT().GetTransaction(mock.Anything, "tx-1").Return(initial, nil)
		storeMock.EXPECT().SaveTransaction(mock.Anything, mock.Anything).Return(nil).Once()

		svc := New(sourceMock, storeMock)
		t.Cleanup(svc.Close)

		updates := make(chan bridgetx.Transaction, 2)
		svc.Track("tx-1", func(tx bridgetx.Transaction) { updates <- tx })

		require.NoError(t, svc.Start(t.Context()))

		// The known event behind the unknown one proves the latter was
		// consumed before the single save is asserted.
		eventCh <- Event{TransactionID: "tx-1", Method: "unknownMethod"}
		eventCh <- Event{TransactionID: "tx-1", Method: "approve", Values: map[string]any{"txHash": "0xaa"}}

		got := waitUpdate(t, updates)
		assert.Equal(t, "0xaa", got.Step(bridgetx.StepApprove).TxHash)
	})

	t.Run("events for untracked ids are dropped without store access", func(t *testing.T) {
		sentinel := newTrackedTransaction("tx-kept")

		eventCh := make(chan Event, 2)
		sourceMock := NewEventSourceMock(t)
		sourceMock.EXPECT().Subscribe(mock.Anything).Return(eventCh, nil).Once()

		storeMock := newStatefulStore(t, sentinel)

		svc := New(sourceMock, storeMock)
		t.Cleanup(svc.Close)

		updates := make(chan bridgetx.Transaction, 2)
		svc.Track("tx-gone", func(tx bridgetx.Transaction) { updates <- tx })
		svc.Track("tx-kept", func(tx bridgetx.Transaction) { updates <- tx })
		svc.Untrack("tx-gone")

		require.NoError(t, svc.Start(t.Context()))

		eventCh <- Event{TransactionID: "tx-gone", Method: "approve", Values: map[string]any{"txHash": "0xaa"}}
		eventCh <- Event{TransactionID: "tx-kept", Method: "approve", Values: map[string]any{"txHash": "0xbb"}}

		got := waitUpdate(t, updates)
		assert.Equal(t, "tx-kept", got.ID)
		assertNoUpdate(t, updates)
	})

	t.Run("missing record is a no-op without a callback", func(t *testing.T) {
		sentinel := newTrackedTransaction("tx-kept")

		eventCh := make(chan Event, 2)
		sourceMock := NewEventSourceMock(t)
		sourceMock.EXPECT().Subscribe(mock.Anything).Return(eventCh, nil).Once()

		storeMock := newStatefulStore(t, sentinel)
		storeMock.EXPECT().
			GetTransaction(mock.Anything, "tx-deleted").
			Return(bridgetx.Transaction{}, errors.New("transaction not found"))

		svc := New(sourceMock, storeMock)
		t.Cleanup(svc.Close)

		updates := make(chan bridgetx.Transaction, 2)
		svc.Track("tx-deleted", func(tx bridgetx.Transaction) { updates <- tx })
		svc.Track("tx-kept", func(tx bridgetx.Transaction) { updates <- tx })

		require.NoError(t, svc.Start(t.Context()))

		eventCh <- Event{TransactionID: "tx-deleted", Method: "approve", Values: map[string]any{"txHash": "0xaa"}}
		eventCh <- Event{TransactionID: "tx-kept", Method: "approve", Values: map[string]any{"txHash": "0xbb"}}

		got := waitUpdate(t, updates)
		assert.Equal(t, "tx-kept", got.ID)
		assertNoUpdate(t, updates)
	})

	t.Run("failed save suppresses the callback", func(t *testing.T) {
		initial := newTrackedTransaction("tx-1")

		eventCh := make(chan Event, 2)
		sourceMock := NewEventSourceMock(t)
		sourceMock.EXPECT().Subscribe(mock.Anything).Return(eventCh, nil).Once()

		storeMock := NewTransactionStoreMock(t)
		storeMock.EXPECT().GetTransaction(mock.Anything, "tx-1").Return(initial, nil)
		storeMock.EXPECT().SaveTransaction(mock.Anything, mock.Anything).Return(errors.New("write refused")).Once()
		storeMock.EXPECT().SaveTransaction(mock.Anything, mock.Anything).Return(nil).Once()

		svc := New(sourceMock, storeMock)
		t.Cleanup(svc.Close)

		updates := make(chan bridgetx.Transaction, 2)
		svc.Track("tx-1", func(tx bridgetx.Transaction) { updates <- tx })

		require.NoError(t, svc.Start(t.Context()))

		eventCh <- Event{TransactionID: "tx-1", Method: "approve", Values: map[string]any{"txHash": "0xaa"}}
		eventCh <- Event{TransactionID: "tx-1", Method: "approve", Values: map[string]any{"txHash": "0xbb"}}

		got := waitUpdate(t, updates)
		assert.Equal(t, "0xbb", got.Step(bridgetx.StepApprove).TxHash)
		assertNoUpdate(t, updates)
	})
}

func TestService_Close(t *testing.T) {
	t.Run("no callback fires after close", func(t *testing.T) {
		initial := newTrackedTransaction("tx-1")

		eventCh := make(chan Event, 2)
		sourceMock := NewEventSourceMock(t)
		sourceMock.EXPECT().Subscribe(mock.Anything).Return(eventCh, nil).Once()

		storeMock := newStatefulStore(t, initial)

		svc := New(sourceMock, storeMock)

		updates := make(chan bridgetx.Transaction, 2)
		svc.Track("tx-1", func(tx bridgetx.Transaction) { updates <- tx })

		require.NoError(t, svc.Start(t.Context()))

		eventCh <- Event{TransactionID: "tx-1", Method: "approve", Values: map[string]any{"txHash": "0xaa"}}
		waitUpdate(t, updates)

		svc.Close()

		eventCh <- Event{TransactionID: "tx-1", Method: "burn", Values: map[string]any{"txHash": "0xbb"}}
		assertNoUpdate(t, updates)
	})

	t.Run("tracking after close is ignored", func(t *testing.T) {
		eventCh := make(chan Event)
		sourceMock := NewEventSourceMock(t)
		sourceMock.EXPECT().Subscribe(mock.Anything).Return(eventCh, nil).Once()

		storeMock := NewTransactionStoreMock(t)

		svc := New(sourceMock, storeMock)
		require.NoError(t, svc.Start(t.Context()))
		svc.Close()

		svc.Track("tx-late", func(tx bridgetx.Transaction) {
			t.Error("callback registered after close must never fire")
		})
		assert.False(t, svc.stillTracked("tx-late"))
	})
}
