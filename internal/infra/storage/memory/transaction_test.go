package memory

import (
	"testing"
	"time"

	"github.com/crosslane/bridgewatch/internal/bridgetx"
	"github.com/crosslane/bridgewatch/internal/networks"
	"github.com/crosslane/bridgewatch/internal/pkg/types"
	"github.com/crosslane/bridgewatch/internal/txstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredTransaction(id, user string) bridgetx.Transaction {
	now := time.Now().UTC()

	return bridgetx.Transaction{
		ID:          id,
		UserAddress: user,
		FromChain:   networks.Ethereum,
		ToChain:     networks.Base,
		Amount:      types.Amount("100.00"),
		Token:       "USDC",
		Status:      bridgetx.StatusPending,
		Steps:       bridgetx.CCTPSteps(now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestStorage_SaveAndGet(t *testing.T) {
	t.Run("round-trips the record byte-for-byte", func(t *testing.T) {
		ctx := t.Context()

		s := NewTransactionStorage()

		tx := newStoredTransaction("tx-1", "0xUser")
		tx.Amount = types.Amount("250.50")

		require.NoError(t, s.SaveTransaction(ctx, tx))

		got, err := s.GetTransaction(ctx, "tx-1")
		require.NoError(t, err)
		assert.Equal(t, tx, got)
		assert.Equal(t, "250.50", got.Amount.String())
	})

	t.Run("missing id yields ErrTransactionNotFound", func(t *testing.T) {
		ctx := t.Context()

		s := NewTransactionStorage()

		_, err := s.GetTransaction(ctx, "nope")
		assert.ErrorIs(t, err, txstore.ErrTransactionNotFound)
	})

	t.Run("save is an upsert by id", func(t *testing.T) {
		ctx := t.Context()

		s := NewTransactionStorage()

		tx := newStoredTransaction("tx-1", "0xUser")
		require.NoError(t, s.SaveTransaction(ctx, tx))

		tx.Status = bridgetx.StatusBridging
		require.NoError(t, s.SaveTransaction(ctx, tx))

		got, err := s.GetTransaction(ctx, "tx-1")
		require.NoError(t, err)
		assert.Equal(t, bridgetx.StatusBridging, got.Status)
	})

	t.Run("stored state is isolated from the caller's copy", func(t *testing.T) {
		ctx := t.Context()

		s := NewTransactionStorage()

		tx := newStoredTransaction("tx-1", "0xUser")
		require.NoError(t, s.SaveTransaction(ctx, tx))

		// Mutating the caller's slice must not leak into storage.
		tx.Steps[0].Status = bridgetx.StepFailed

		got, err := s.GetTransaction(ctx, "tx-1")
		require.NoError(t, err)
		assert.Equal(t, bridgetx.StepPending, got.Steps[0].Status)
	})
}

func TestStorage_ListTransactionsByUser(t *testing.T) {
	// Base58 is case-sensitive, so these are two distinct users.
	const (
		upperUser = "DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK"
		lowerUser = "dyw8jctfwhnrjhhmfcbxvvdtqwmevfbx6zkumg5cnskk"
	)

	t.Run("matches the user address byte-for-byte", func(t *testing.T) {
		ctx := t.Context()

		s := NewTransactionStorage()
		require.NoError(t, s.SaveTransaction(ctx, newStoredTransaction("tx-1", upperUser)))

		matched, err := s.ListTransactionsByUser(ctx, upperUser)
		require.NoError(t, err)
		assert.Len(t, matched, 1)

		unmatched, err := s.ListTransactionsByUser(ctx, lowerUser)
		require.NoError(t, err)
		assert.Empty(t, unmatched)
	})

	t.Run("returns only the requested user's records", func(t *testing.T) {
		ctx := t.Context()

		s := NewTransactionStorage()
		require.NoError(t, s.SaveTransaction(ctx, newStoredTransaction("tx-1", "0xAlice")))
		require.NoError(t, s.SaveTransaction(ctx, newStoredTransaction("tx-2", "0xAlice")))
		require.NoError(t, s.SaveTransaction(ctx, newStoredTransaction("tx-3", "0xBob")))

		matched, err := s.ListTransactionsByUser(ctx, "0xAlice")
		require.NoError(t, err)
		assert.Len(t, matched, 2)
	})
}

func TestStorage_Delete(t *testing.T) {
	t.Run("deleting a missing record is not an error", func(t *testing.T) {
		ctx := t.Context()

		s := NewTransactionStorage()
		assert.NoError(t, s.DeleteTransaction(ctx, "nope"))
	})

	t.Run("delete removes exactly one record", func(t *testing.T) {
		ctx := t.Context()

		s := NewTransactionStorage()
		require.NoError(t, s.SaveTransaction(ctx, newStoredTransaction("tx-1", "0xUser")))
		require.NoError(t, s.SaveTransaction(ctx, newStoredTransaction("tx-2", "0xUser")))

		require.NoError(t, s.DeleteTransaction(ctx, "tx-1"))

		_, err := s.GetTransaction(ctx, "tx-1")
		assert.ErrorIs(t, err, txstore.ErrTransactionNotFound)

		_, err = s.GetTransaction(ctx, "tx-2")
		assert.NoError(t, err)
	})

	t.Run("clearing one user leaves other users' records untouched", func(t *testing.T) {
		ctx := t.Context()

		s := NewTransactionStorage()
		require.NoError(t, s.SaveTransaction(ctx, newStoredTransaction("tx-1", "0xAlice")))
		require.NoError(t, s.SaveTransaction(ctx, newStoredTransaction("tx-2", "0xAlice")))
		require.NoError(t, s.SaveTransaction(ctx, newStoredTransaction("tx-3", "0xBob")))

		require.NoError(t, s.DeleteTransactionsByUser(ctx, "0xAlice"))

		remaining, err := s.ListTransactionsByUser(ctx, "0xAlice")
		require.NoError(t, err)
		assert.Empty(t, remaining)

		bobs, err := s.ListTransactionsByUser(ctx, "0xBob")
		require.NoError(t, err)
		assert.Len(t, bobs, 1)
	})
}
