// Package networks defines the closed set of chains supported by the bridge,
// along with per-chain static metadata (environment, address family, native
// currency, CCTP domain). It is configuration data, not logic: the enumeration
// only grows by adding entries, and nothing here performs I/O.
package networks

import "errors"

// ErrUnsupportedChain is returned when a chain identifier is not part of the
// supported enumeration.
var ErrUnsupportedChain = errors.New("unsupported chain")

// ChainID identifies a supported network. The synthetic "Canton" destination
// is part of the set even though it is not a CCTP chain.
type ChainID string

const (
	Ethereum        ChainID = "Ethereum"
	EthereumSepolia ChainID = "Ethereum_Sepolia"
	Base            ChainID = "Base"
	BaseSepolia     ChainID = "Base_Sepolia"
	Arbitrum        ChainID = "Arbitrum"
	Avalanche       ChainID = "Avalanche"
	Optimism        ChainID = "Optimism"
	Polygon         ChainID = "Polygon"
	Solana          ChainID = "Solana"
	SolanaDevnet    ChainID = "Solana_Devnet"

	// Canton is the synthetic xReserve destination (USDCx). It is not a CCTP
	// chain and has no EVM chain id or CCTP domain.
	Canton ChainID = "Canton"
)

// Environment distinguishes production networks from public test networks.
type Environment string

const (
	Mainnet Environment = "mainnet"
	Testnet Environment = "testnet"
)

// Family is the address family a chain belongs to. It drives destination
// address validation and adapter selection.
type Family string

const (
	FamilyEVM    Family = "evm"
	FamilySolana Family = "solana"
	FamilySUI    Family = "sui"

	// FamilyCanton marks the synthetic Canton destination; recipients are
	// Canton party identifiers, not chain addresses.
	FamilyCanton Family = "canton"
)

// Config holds the static metadata for one supported chain.
type Config struct {
	ID             ChainID
	Name           string      // display name
	Environment    Environment // mainnet or testnet
	Family         Family      // address family
	NativeCurrency string      // gas token symbol
	EVMChainID     int64       // numeric chain id for wallet switching; 0 for non-EVM
	CCTPDomain     int32       // Circle CCTP domain; -1 when the chain is not on CCTP
}

// configs is the closed enumeration of supported chains.
var configs = map[ChainID]Config{
	Ethereum:        {ID: Ethereum, Name: "Ethereum", Environment: Mainnet, Family: FamilyEVM, NativeCurrency: "ETH", EVMChainID: 1, CCTPDomain: 0},
	EthereumSepolia: {ID: EthereumSepolia, Name: "Ethereum Sepolia", Environment: Testnet, Family: FamilyEVM, NativeCurrency: "ETH", EVMChainID: 11155111, CCTPDomain: 0},
	Base:            {ID: Base, Name: "Base", Environment: Mainnet, Family: FamilyEVM, NativeCurrency: "ETH", EVMChainID: 8453, CCTPDomain: 6},
	BaseSepolia:     {ID: BaseSepolia, Name: "Base Sepolia", Environment: Testnet, Family: FamilyEVM, NativeCurrency: "ETH", EVMChainID: 84532, CCTPDomain: 6},
	Arbitrum:        {ID: Arbitrum, Name: "Arbitrum", Environment: Mainnet, Family: FamilyEVM, NativeCurrency: "ETH", EVMChainID: 42161, CCTPDomain: 3},
	Avalanche:       {ID: Avalanche, Name: "Avalanche", Environment: Mainnet, Family: FamilyEVM, NativeCurrency: "AVAX", EVMChainID: 43114, CCTPDomain: 1},
	Optimism:        {ID: Optimism, Name: "Optimism", Environment: Mainnet, Family: FamilyEVM, NativeCurrency: "ETH", EVMChainID: 10, CCTPDomain: 2},
	Polygon:         {ID: Polygon, Name: "Polygon", Environment: Mainnet, Family: FamilyEVM, NativeCurrency: "POL", EVMChainID: 137, CCTPDomain: 7},
	Solana:          {ID: Solana, Name: "Solana", Environment: Mainnet, Family: FamilySolana, NativeCurrency: "SOL", CCTPDomain: 5},
	SolanaDevnet:    {ID: SolanaDevnet, Name: "Solana Devnet", Environment: Testnet, Family: FamilySolana, NativeCurrency: "SOL", CCTPDomain: 5},
	Canton:          {ID: Canton, Name: "Canton (USDCx)", Environment: Mainnet, Family: FamilyCanton, NativeCurrency: "CC", CCTPDomain: -1},
}

// Lookup returns the configuration for the given chain, or
// ErrUnsupportedChain when the identifier is not part of the enumeration.
func Lookup(id ChainID) (Config, error) {
	cfg, ok := configs[id]
	if !ok {
		return Config{}, ErrUnsupportedChain
	}
	return cfg, nil
}

// IsSupported reports whether the chain identifier belongs to the enumeration.
func IsSupported(id ChainID) bool {
	_, ok := configs[id]
	return ok
}

// All returns every supported chain configuration. Order is unspecified.
func All() []Config {
	out := make([]Config, 0, len(configs))
	for _, cfg := range configs {
		out = append(out, cfg)
	}
	return out
}
