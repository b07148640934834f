// Package cli is the ops command-line surface over the bridge transaction
// subsystem: history queries, retry candidates, dismissal and cleanup, plus a
// destination address checker.
package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/crosslane/bridgewatch/internal/bridgetx"
)

// Store is the transaction store slice the query and cleanup commands consume.
type Store interface {
	GetRecentTransactions(ctx context.Context, userAddress string, limit int) ([]bridgetx.Transaction, error)
	GetRetryableTransactions(ctx context.Context, userAddress string) ([]bridgetx.Transaction, error)
	ClearUserTransactions(ctx context.Context, userAddress string) error
}

// Orchestrator is the orchestration slice used by lifecycle commands.
type Orchestrator interface {
	DismissTransfer(ctx context.Context, id string) (bridgetx.Transaction, error)
	ResumeTracking(ctx context.Context, userAddress string) (int, error)
}

// Run initializes and executes the bridgewatch CLI application.
//
// It registers all available commands, including:
//
//   - `history`: Lists a user's most recent transfers.
//   - `retryable`: Lists a user's failed transfers that can be resumed.
//   - `resume`: Re-registers a user's in-flight transfers for tracking.
//   - `dismiss`: Cancels a transfer that has not completed.
//   - `clear`: Removes every transfer record of a user.
//   - `check-address`: Validates a destination address against a chain.
func Run(ctx context.Context, store Store, orch Orchestrator) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "bridgewatch",
		Description:           "Command-line interface for inspecting and managing bridge transfers.",
		Usage:                 "bridgewatch [command] [flags]",
		Commands: []*cli.Command{
			transactionHistoryCommand(store),
			retryableTransactionsCommand(store),
			resumeTrackingCommand(orch),
			dismissTransferCommand(orch),
			clearUserTransactionsCommand(store),
			checkAddressCommand(),
		},
	}

	return app.Run(ctx, os.Args)
}
