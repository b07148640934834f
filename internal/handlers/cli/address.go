package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/crosslane/bridgewatch/internal/addrcheck"
	"github.com/crosslane/bridgewatch/internal/networks"
)

// checkAddressCommand returns a CLI command that validates a destination
// address against the address family of a supported chain.
//
// Usage example:
//
//	bridgewatch check-address --chain Ethereum --address 0xABC123...
func checkAddressCommand() *cli.Command {
	return &cli.Command{
		Name:        "check-address",
		Description: "Validate a destination address against a chain's address family rules.",
		Usage:       "Checks address format (EVM checksum, Solana Base58, SUI hex). Must provide chain and address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "chain",
				Usage:    "Chain identifier (e.g. Ethereum, Base, Solana)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Destination address to validate",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				chain   = networks.ChainID(c.String("chain"))
				address = c.String("address")
			)

			cfg, err := networks.Lookup(chain)
			if err != nil {
				return fmt.Errorf("%w: %q", err, chain)
			}

			if err := addrcheck.Validate(address, cfg.Family); err != nil {
				return err
			}

			fmt.Printf("%s is a valid %s\n", address, addrcheck.FormatDescription(cfg.Family))
			return nil
		},
	}
}
