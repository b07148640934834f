package xreserve

import (
	"github.com/crosslane/bridgewatch/internal/networks"
)

// CantonRemoteDomain is the xReserve remote domain for Canton. Remote domains
// start at 10001 and are distinct from CCTP domains.
const CantonRemoteDomain uint32 = 10001

// USDCDecimals is the on-chain decimal scale of USDC.
const USDCDecimals int32 = 6

// External claim surfaces for USDCx on Canton. Attestation completion is not
// observed in-app; users claim through these.
const (
	CantonClaimDocsURL = "https://docs.digitalasset.com/usdc/xreserve/index.html"
	CantonClaimUIURL   = "https://digital-asset.github.io/xreserve-deposits/"
)

// ChainConfig holds the xReserve and USDC contract addresses on one source
// chain.
type ChainConfig struct {
	SourceChain      networks.ChainID
	XReserveContract string
	USDCContract     string
}

// chainConfigs lists the source chains carrying an xReserve contract:
// Ethereum mainnet and its public testnet, nothing else.
var chainConfigs = map[networks.ChainID]ChainConfig{
	networks.Ethereum: {
		SourceChain:      networks.Ethereum,
		XReserveContract: "0x9B85aC04A09c8C813c37de9B3d563C2D3F936162",
		USDCContract:     "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
	},
	networks.EthereumSepolia: {
		SourceChain:      networks.EthereumSepolia,
		XReserveContract: "0x008888878f94C0d87defdf0B07f46B93C1934442",
		USDCContract:     "0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238",
	},
}

// ConfigFor returns the xReserve contract configuration for a source chain.
func ConfigFor(chainID networks.ChainID) (ChainConfig, bool) {
	cfg, ok := chainConfigs[chainID]
	return cfg, ok
}

// IsSourceChain reports whether deposits to Canton can start from the chain.
func IsSourceChain(chainID networks.ChainID) bool {
	_, ok := chainConfigs[chainID]
	return ok
}
