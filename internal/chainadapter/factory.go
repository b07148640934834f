// Package chainadapter builds and caches per-chain adapters around a wallet's
// capability surface. A factory dispatches to one registered creator per
// network family and memoizes the resulting adapter per wallet, family and
// chain, so repeated lookups during a transfer reuse the same instance.
//
// The cache is process-local and is invalidated explicitly on wallet
// disconnect or switch, never by time.
package chainadapter

import (
	"context"
	"fmt"
	"sync"

	"github.com/crosslane/bridgewatch/internal/networks"
)

// Adapter is a chain-bound handle produced by a creator. Concrete adapters
// expose family-specific surfaces; callers type-assert to the one they need.
type Adapter interface {
	// Family returns the network family this adapter operates on.
	Family() networks.Family

	// Wallet returns the wallet the adapter was built around.
	Wallet() Wallet
}

// Creator builds adapters for a single network family.
type Creator interface {
	// Family returns the family this creator handles.
	Family() networks.Family

	// Create builds an adapter for the wallet. chainID may be empty when the
	// caller has no explicit chain context.
	Create(ctx context.Context, wallet Wallet, chainID networks.ChainID) (Adapter, error)
}

// Factory hands out cached adapters keyed by wallet, family and chain.
type Factory interface {
	// GetAdapter returns the cached adapter for the key, building it via the
	// family's registered creator on first use.
	GetAdapter(ctx context.Context, wallet Wallet, family networks.Family, chainID networks.ChainID) (Adapter, error)

	// RegisterCreator installs a creator for its family, replacing any
	// previous one.
	RegisterCreator(creator Creator)

	// ClearCache drops every cached adapter for the wallet address, or all
	// adapters when the address is empty. Called on disconnect or switch.
	ClearCache(walletAddress string)
}

type cacheKey struct {
	walletAddress string
	family        networks.Family
	chainID       networks.ChainID
}

type factory struct {
	mu       sync.Mutex
	creators map[networks.Family]Creator
	cache    map[cacheKey]Adapter
}

var _ Factory = (*factory)(nil)

// NewFactory creates an empty factory. Creators are registered explicitly by
// the application root; there is no global registry.
func NewFactory(creators ...Creator) *factory {
	f := &factory{
		creators: make(map[networks.Family]Creator),
		cache:    make(map[cacheKey]Adapter),
	}
	for _, creator := range creators {
		f.creators[creator.Family()] = creator
	}
	return f
}

func (f *factory) RegisterCreator(creator Creator) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[creator.Family()] = creator
}

func (f *factory) GetAdapter(ctx context.Context, wallet Wallet, family networks.Family, chainID networks.ChainID) (Adapter, error) {
	if wallet.ChainType() != family {
		return nil, fmt.Errorf("%w: wallet is %q, requested %q", ErrWalletFamilyMismatch, wallet.ChainType(), family)
	}

	key := cacheKey{
		walletAddress: wallet.Address(),
		family:        family,
		chainID:       chainID,
	}

	f.mu.Lock()
	if adapter, ok := f.cache[key]; ok {
		f.mu.Unlock()
		return adapter, nil
	}
	creator, ok := f.creators[family]
	f.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoCreatorRegistered, family)
	}

	adapter, err := creator.Create(ctx, wallet, chainID)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// A concurrent call may have filled the slot while the creator ran; keep
	// the first instance so callers always share one adapter per key.
	if cached, ok := f.cache[key]; ok {
		return cached, nil
	}
	f.cache[key] = adapter

	return adapter, nil
}

func (f *factory) ClearCache(walletAddress string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if walletAddress == "" {
		f.cache = make(map[cacheKey]Adapter)
		return
	}

	for key := range f.cache {
		if key.walletAddress == walletAddress {
			delete(f.cache, key)
		}
	}
}
