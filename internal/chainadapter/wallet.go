package chainadapter

import (
	"context"
	"errors"
	"math/big"

	"github.com/crosslane/bridgewatch/internal/networks"
)

var (
	// ErrWalletFamilyMismatch is returned when the wallet's chain type does
	// not match the requested network family.
	ErrWalletFamilyMismatch = errors.New("wallet chain type does not match the requested network family")

	// ErrWalletNotCapable is returned when the wallet cannot supply the
	// provider the creator needs.
	ErrWalletNotCapable = errors.New("wallet lacks the required provider capability")

	// ErrNoCreatorRegistered is returned when no creator handles the family.
	ErrNoCreatorRegistered = errors.New("no adapter creator registered for network family")
)

// EVMTransaction is the raw call a wallet signs and submits on an EVM chain.
type EVMTransaction struct {
	To    string
	Data  []byte
	Value *big.Int
}

// EVMProvider is the wallet's signing surface for EVM chains. SendTransaction
// returns the transaction hash once the wallet has submitted it; confirmation
// is the caller's concern.
type EVMProvider interface {
	SendTransaction(ctx context.Context, tx EVMTransaction) (string, error)
	ChainID(ctx context.Context) (uint64, error)
}

// SolanaConnection describes the wallet's currently connected Solana RPC.
type SolanaConnection struct {
	RPCEndpoint string
}

// Wallet is the capability surface adapters are built from. Provider lookups
// return ErrWalletNotCapable when the wallet does not support the family.
type Wallet interface {
	// Address returns the wallet's account address, casing preserved.
	Address() string

	// ChainType returns the network family the wallet is connected to.
	ChainType() networks.Family

	// EVMProvider returns the wallet's EVM signing provider.
	EVMProvider(ctx context.Context) (EVMProvider, error)

	// SolanaConnection returns the wallet's current Solana RPC connection.
	SolanaConnection(ctx context.Context) (SolanaConnection, error)

	// SwitchNetwork asks the wallet to move to the given chain. Adapters do
	// not switch on their own; callers satisfy this precondition first.
	SwitchNetwork(ctx context.Context, chainID networks.ChainID) error
}

// EnsureNetwork switches the wallet to the target chain before chain-bound
// work starts. It exists so callers fail loudly instead of signing against
// whatever chain the wallet happens to be on.
func EnsureNetwork(ctx context.Context, wallet Wallet, chainID networks.ChainID) error {
	return wallet.SwitchNetwork(ctx, chainID)
}
