package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// dismissTransferCommand returns a CLI command that cancels a transfer that
// has not completed. Completed and cancelled records are immutable history.
//
// Usage example:
//
//	bridgewatch dismiss --id 4f3a...
func dismissTransferCommand(orch Orchestrator) *cli.Command {
	return &cli.Command{
		Name:        "dismiss",
		Description: "Cancel a transfer that has not completed, removing it from active tracking.",
		Usage:       "Dismisses a transfer by id. Completed transfers cannot be dismissed.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Transaction id to dismiss",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id := c.String("id")

			tx, err := orch.DismissTransfer(ctx, id)
			if err != nil {
				return err
			}

			fmt.Printf("transfer %s is now %s\n", tx.ID, tx.Status)
			return nil
		},
	}
}

// clearUserTransactionsCommand returns a CLI command that removes every
// transfer record of a user, matched byte-for-byte on address casing.
//
// Usage example:
//
//	bridgewatch clear --user 0xABC123...
func clearUserTransactionsCommand(store Store) *cli.Command {
	return &cli.Command{
		Name:        "clear",
		Description: "Remove every transfer record of a user. Other users' records are untouched.",
		Usage:       "Clears a user's transfer history. Must provide the user address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "user",
				Usage:    "Wallet address whose records to remove (casing is significant)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return store.ClearUserTransactions(ctx, c.String("user"))
		},
	}
}
