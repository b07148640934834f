package chainadapter

import (
	"errors"
	"testing"

	"github.com/crosslane/bridgewatch/internal/networks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEVMCreator_Create(t *testing.T) {
	creator := NewEVMCreator()

	t.Run("builds an adapter exposing the wallet provider", func(t *testing.T) {
		ctx := t.Context()

		providerMock := NewEVMProviderMock(t)

		walletMock := NewWalletMock(t)
		walletMock.EXPECT().EVMProvider(mock.Anything).Return(providerMock, nil).Once()

		adapter, err := creator.Create(ctx, walletMock, networks.Ethereum)
		require.NoError(t, err)

		evmAdapter, ok := adapter.(*EVMAdapter)
		require.True(t, ok)
		assert.Equal(t, networks.FamilyEVM, evmAdapter.Family())
		assert.Equal(t, networks.Ethereum, evmAdapter.ChainID())
		assert.Same(t, providerMock, evmAdapter.Provider())
	})

	t.Run("provider retrieval failure is a capability error", func(t *testing.T) {
		ctx := t.Context()

		walletMock := NewWalletMock(t)
		walletMock.EXPECT().EVMProvider(mock.Anything).Return(nil, errors.New("not connected")).Once()

		_, err := creator.Create(ctx, walletMock, networks.Ethereum)
		assert.ErrorIs(t, err, ErrWalletNotCapable)
	})

	t.Run("nil provider without an error is still a capability error", func(t *testing.T) {
		ctx := t.Context()

		walletMock := NewWalletMock(t)
		walletMock.EXPECT().EVMProvider(mock.Anything).Return(nil, nil).Once()

		_, err := creator.Create(ctx, walletMock, networks.Ethereum)
		assert.ErrorIs(t, err, ErrWalletNotCapable)
	})
}

func TestEnsureNetwork(t *testing.T) {
	t.Run("delegates the switch to the wallet", func(t *testing.T) {
		ctx := t.Context()

		walletMock := NewWalletMock(t)
		walletMock.EXPECT().SwitchNetwork(mock.Anything, networks.Base).Return(nil).Once()

		assert.NoError(t, EnsureNetwork(ctx, walletMock, networks.Base))
	})

	t.Run("switch refusal surfaces to the caller", func(t *testing.T) {
		ctx := t.Context()

		expectedErr := errors.New("user rejected the switch")

		walletMock := NewWalletMock(t)
		walletMock.EXPECT().SwitchNetwork(mock.Anything, networks.Base).Return(expectedErr).Once()

		assert.ErrorIs(t, EnsureNetwork(ctx, walletMock, networks.Base), expectedErr)
	})
}
