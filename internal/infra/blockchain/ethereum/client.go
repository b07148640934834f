// Package ethereum talks to EVM-compatible nodes over JSON-RPC. It covers the
// read-side chain operations the deposit flow needs: receipt lookups and
// bounded confirmation waits. Signing and submission stay with the wallet.
package ethereum

import (
	"time"

	"github.com/crosslane/bridgewatch/internal/pkg/resilience/retry"
	"github.com/crosslane/bridgewatch/internal/pkg/transport/jsonrpc"
)

// Receipt waits default to roughly three minutes of polling, a little over a
// dozen Ethereum blocks.
const (
	defaultReceiptAttempts     = 90
	defaultReceiptPollInterval = 2 * time.Second
)

// client performs read-side EVM operations against a node via JSON-RPC.
type client struct {
	conn  jsonrpc.Client
	retry retry.Retry
}

// Option configures the Ethereum client.
type Option func(*client)

// WithReceiptRetry overrides the retry policy used while waiting for a
// transaction receipt.
func WithReceiptRetry(r retry.Retry) Option {
	return func(c *client) {
		c.retry = r
	}
}

// NewClient creates an Ethereum client using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	c := &client{
		conn: conn,
		retry: retry.New(
			retry.WithAttempts(defaultReceiptAttempts),
			retry.WithDelay(defaultReceiptPollInterval),
			retry.WithMaxDelay(defaultReceiptPollInterval),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
