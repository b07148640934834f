package chainadapter

import (
	"context"
	"fmt"

	"github.com/crosslane/bridgewatch/internal/networks"
)

// EVMAdapter binds a wallet's EVM provider to one chain. The factory does not
// switch the wallet's network; callers run EnsureNetwork first so the adapter
// never signs against the wrong chain silently.
type EVMAdapter struct {
	wallet   Wallet
	provider EVMProvider
	chainID  networks.ChainID
}

func (a *EVMAdapter) Family() networks.Family   { return networks.FamilyEVM }
func (a *EVMAdapter) Wallet() Wallet            { return a.wallet }
func (a *EVMAdapter) ChainID() networks.ChainID { return a.chainID }

// Provider returns the wallet's EVM signing provider.
func (a *EVMAdapter) Provider() EVMProvider { return a.provider }

type evmCreator struct{}

var _ Creator = (*evmCreator)(nil)

// NewEVMCreator creates the adapter creator for EVM-family chains.
func NewEVMCreator() *evmCreator {
	return new(evmCreator)
}

func (c *evmCreator) Family() networks.Family {
	return networks.FamilyEVM
}

func (c *evmCreator) Create(ctx context.Context, wallet Wallet, chainID networks.ChainID) (Adapter, error) {
	provider, err := wallet.EVMProvider(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: obtaining EVM provider: %w", ErrWalletNotCapable, err)
	}
	if provider == nil {
		return nil, fmt.Errorf("%w: wallet returned no EVM provider", ErrWalletNotCapable)
	}

	return &EVMAdapter{
		wallet:   wallet,
		provider: provider,
		chainID:  chainID,
	}, nil
}
