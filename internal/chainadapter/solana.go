package chainadapter

import (
	"context"

	"github.com/crosslane/bridgewatch/internal/pkg/logger"
	"github.com/crosslane/bridgewatch/internal/networks"
)

// Default public RPC endpoints used when neither chain context nor a wallet
// connection yields one.
const (
	solanaMainnetRPCEndpoint = "https://solana-mainnet.public.blastapi.io"
	solanaDevnetRPCEndpoint  = "https://api.devnet.solana.com"
)

// SolanaAdapter binds a wallet to a resolved Solana RPC endpoint.
type SolanaAdapter struct {
	wallet      Wallet
	rpcEndpoint string
}

func (a *SolanaAdapter) Family() networks.Family { return networks.FamilySolana }
func (a *SolanaAdapter) Wallet() Wallet          { return a.wallet }

// RPCEndpoint returns the endpoint the adapter resolved at creation time.
func (a *SolanaAdapter) RPCEndpoint() string { return a.rpcEndpoint }

type solanaCreator struct{}

var _ Creator = (*solanaCreator)(nil)

// NewSolanaCreator creates the adapter creator for Solana chains.
func NewSolanaCreator() *solanaCreator {
	return new(solanaCreator)
}

func (c *solanaCreator) Family() networks.Family {
	return networks.FamilySolana
}

// Create resolves the RPC endpoint in three tiers: explicit chain context is
// authoritative, the wallet's current connection is a reasonable default, and
// the hardcoded mainnet endpoint keeps creation from failing when neither is
// available.
func (c *solanaCreator) Create(ctx context.Context, wallet Wallet, chainID networks.ChainID) (Adapter, error) {
	if chainID != "" {
		if cfg, err := networks.Lookup(chainID); err == nil {
			return &SolanaAdapter{
				wallet:      wallet,
				rpcEndpoint: endpointForEnvironment(cfg.Environment),
			}, nil
		}
	}

	if conn, err := wallet.SolanaConnection(ctx); err == nil && conn.RPCEndpoint != "" {
		return &SolanaAdapter{
			wallet:      wallet,
			rpcEndpoint: conn.RPCEndpoint,
		}, nil
	}

	logger.Debug(ctx, "no chain context or wallet connection, using default Solana RPC",
		"wallet.address", wallet.Address(),
	)

	return &SolanaAdapter{
		wallet:      wallet,
		rpcEndpoint: solanaMainnetRPCEndpoint,
	}, nil
}

func endpointForEnvironment(env networks.Environment) string {
	if env == networks.Testnet {
		return solanaDevnetRPCEndpoint
	}
	return solanaMainnetRPCEndpoint
}
