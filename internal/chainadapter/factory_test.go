package chainadapter

import (
	"testing"

	"github.com/crosslane/bridgewatch/internal/networks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEVMWalletMock(t *testing.T, address string) *WalletMock {
	t.Helper()

	walletMock := NewWalletMock(t)
	walletMock.EXPECT().ChainType().Return(networks.FamilyEVM).Maybe()
	walletMock.EXPECT().Address().Return(address).Maybe()

	return walletMock
}

func TestFactory_GetAdapter(t *testing.T) {
	t.Run("repeated calls with the same key return the same instance", func(t *testing.T) {
		ctx := t.Context()

		walletMock := newEVMWalletMock(t, "0xWallet")
		walletMock.EXPECT().EVMProvider(mock.Anything).Return(NewEVMProviderMock(t), nil).Once()

		factory := NewFactory(NewEVMCreator())

		first, err := factory.GetAdapter(ctx, walletMock, networks.FamilyEVM, networks.Ethereum)
		require.NoError(t, err)

		second, err := factory.GetAdapter(ctx, walletMock, networks.FamilyEVM, networks.Ethereum)
		require.NoError(t, err)

		assert.Same(t, first, second)
	})

	t.Run("different chains produce distinct adapters", func(t *testing.T) {
		ctx := t.Context()

		walletMock := newEVMWalletMock(t, "0xWallet")
		walletMock.EXPECT().EVMProvider(mock.Anything).Return(NewEVMProviderMock(t), nil).Twice()

		factory := NewFactory(NewEVMCreator())

		onEthereum, err := factory.GetAdapter(ctx, walletMock, networks.FamilyEVM, networks.Ethereum)
		require.NoError(t, err)

		onBase, err := factory.GetAdapter(ctx, walletMock, networks.FamilyEVM, networks.Base)
		require.NoError(t, err)

		assert.NotSame(t, onEthereum, onBase)
	})

	t.Run("wallet family mismatch is rejected before any creator runs", func(t *testing.T) {
		ctx := t.Context()

		walletMock := NewWalletMock(t)
		walletMock.EXPECT().ChainType().Return(networks.FamilySolana).Once()

		factory := NewFactory(NewEVMCreator())

		_, err := factory.GetAdapter(ctx, walletMock, networks.FamilyEVM, networks.Ethereum)
		assert.ErrorIs(t, err, ErrWalletFamilyMismatch)
	})

	t.Run("unregistered family is rejected", func(t *testing.T) {
		ctx := t.Context()

		walletMock := newEVMWalletMock(t, "0xWallet")

		factory := NewFactory()

		_, err := factory.GetAdapter(ctx, walletMock, networks.FamilyEVM, networks.Ethereum)
		assert.ErrorIs(t, err, ErrNoCreatorRegistered)
	})

	t.Run("creator registered later replaces the earlier one", func(t *testing.T) {
		ctx := t.Context()

		walletMock := newEVMWalletMock(t, "0xWallet")
		walletMock.EXPECT().EVMProvider(mock.Anything).Return(NewEVMProviderMock(t), nil).Once()

		factory := NewFactory()
		factory.RegisterCreator(NewEVMCreator())

		adapter, err := factory.GetAdapter(ctx, walletMock, networks.FamilyEVM, networks.Ethereum)
		require.NoError(t, err)
		assert.Equal(t, networks.FamilyEVM, adapter.Family())
	})
}

func TestFactory_ClearCache(t *testing.T) {
	t.Run("clearing one wallet leaves others cached", func(t *testing.T) {
		ctx := t.Context()

		walletA := newEVMWalletMock(t, "0xAlice")
		walletA.EXPECT().EVMProvider(mock.Anything).Return(NewEVMProviderMock(t), nil).Twice()

		walletB := newEVMWalletMock(t, "0xBob")
		walletB.EXPECT().EVMProvider(mock.Anything).Return(NewEVMProviderMock(t), nil).Once()

		factory := NewFactory(NewEVMCreator())

		aliceBefore, err := factory.GetAdapter(ctx, walletA, networks.FamilyEVM, networks.Ethereum)
		require.NoError(t, err)

		bobBefore, err := factory.GetAdapter(ctx, walletB, networks.FamilyEVM, networks.Ethereum)
		require.NoError(t, err)

		factory.ClearCache("0xAlice")

		aliceAfter, err := factory.GetAdapter(ctx, walletA, networks.FamilyEVM, networks.Ethereum)
		require.NoError(t, err)
		assert.NotSame(t, aliceBefore, aliceAfter)

		bobAfter, err := factory.GetAdapter(ctx, walletB, networks.FamilyEVM, networks.Ethereum)
		require.NoError(t, err)
		assert.Same(t, bobBefore, bobAfter)
	})

	t.Run("empty address clears everything", func(t *testing.T) {
		ctx := t.Context()

		walletMock := newEVMWalletMock(t, "0xWallet")
		walletMock.EXPECT().EVMProvider(mock.Anything).Return(NewEVMProviderMock(t), nil).Twice()

		factory := NewFactory(NewEVMCreator())

		before, err := factory.GetAdapter(ctx, walletMock, networks.FamilyEVM, networks.Ethereum)
		require.NoError(t, err)

		factory.ClearCache("")

		after, err := factory.GetAdapter(ctx, walletMock, networks.FamilyEVM, networks.Ethereum)
		require.NoError(t, err)
		assert.NotSame(t, before, after)
	})
}
