package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/crosslane/bridgewatch/internal/bridgetx"
)

// printTransactions writes the records to stdout as indented JSON.
func printTransactions(txs []bridgetx.Transaction) error {
	data, err := json.MarshalIndent(txs, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(data))
	return nil
}

// transactionHistoryCommand returns a CLI command that lists a user's most
// recent transfers, newest first.
//
// Usage example:
//
//	bridgewatch history --user 0xABC123... --limit 5
func transactionHistoryCommand(store Store) *cli.Command {
	return &cli.Command{
		Name:        "history",
		Description: "List a user's most recent bridge transfers, newest first.",
		Usage:       "Prints the user's transfer history as JSON. Must provide the user address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "user",
				Usage:    "Wallet address whose transfers to list (casing is significant)",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of transfers to print (defaults to 10)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				user  = c.String("user")
				limit = int(c.Int("limit"))
			)

			txs, err := store.GetRecentTransactions(ctx, user, limit)
			if err != nil {
				return err
			}

			return printTransactions(txs)
		},
	}
}

// retryableTransactionsCommand returns a CLI command that lists a user's
// failed transfers with completed progress to resume from.
//
// Usage example:
//
//	bridgewatch retryable --user 0xABC123...
func retryableTransactionsCommand(store Store) *cli.Command {
	return &cli.Command{
		Name:        "retryable",
		Description: "List a user's failed transfers that can be resumed from their last completed step.",
		Usage:       "Prints retry candidates as JSON. Must provide the user address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "user",
				Usage:    "Wallet address whose failed transfers to list",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			txs, err := store.GetRetryableTransactions(ctx, c.String("user"))
			if err != nil {
				return err
			}

			return printTransactions(txs)
		},
	}
}

// resumeTrackingCommand returns a CLI command that re-registers a user's
// in-flight transfers with the lifecycle tracker after a restart.
//
// Usage example:
//
//	bridgewatch resume --user 0xABC123...
func resumeTrackingCommand(orch Orchestrator) *cli.Command {
	return &cli.Command{
		Name:        "resume",
		Description: "Re-register a user's in-flight transfers for lifecycle tracking.",
		Usage:       "Resumes tracking after a restart. Must provide the user address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "user",
				Usage:    "Wallet address whose in-flight transfers to resume",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			count, err := orch.ResumeTracking(ctx, c.String("user"))
			if err != nil {
				return err
			}

			fmt.Printf("tracking resumed for %d transfer(s)\n", count)
			return nil
		},
	}
}
