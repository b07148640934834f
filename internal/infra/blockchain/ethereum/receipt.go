package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/crosslane/bridgewatch/internal/pkg/resilience/retry"
	"github.com/crosslane/bridgewatch/internal/pkg/types"
)

var (
	// ErrReceiptNotAvailable means the node has not mined the transaction
	// yet; waiting callers poll until it appears.
	ErrReceiptNotAvailable = errors.New("transaction receipt not available yet")

	// ErrTransactionReverted means the transaction was mined but its
	// execution failed on-chain.
	ErrTransactionReverted = errors.New("transaction reverted on-chain")
)

// receiptSuccessStatus is the post-Byzantium receipt status for success.
const receiptSuccessStatus int64 = 1

// ReceiptResponse represents a transaction receipt returned by the Ethereum
// JSON-RPC API, trimmed to the fields confirmation needs.
type ReceiptResponse struct {
	TransactionHash string    `json:"transactionHash"`
	BlockNumber     types.Hex `json:"blockNumber"`
	BlockHash       string    `json:"blockHash"`
	Status          types.Hex `json:"status"`
	GasUsed         types.Hex `json:"gasUsed"`
}

// getTransactionReceipt fetches the receipt for a transaction hash. The node
// returns a JSON null until the transaction is mined, which surfaces here as
// ErrReceiptNotAvailable.
func (c *client) getTransactionReceipt(ctx context.Context, txHash string) (ReceiptResponse, error) {
	data, err := c.conn.Fetch(ctx, "eth_getTransactionReceipt", txHash)
	if err != nil {
		return ReceiptResponse{}, err
	}

	if len(data) == 0 || string(data) == "null" {
		return ReceiptResponse{}, fmt.Errorf("%w: %s", ErrReceiptNotAvailable, txHash)
	}

	var receipt ReceiptResponse
	return receipt, json.Unmarshal(data, &receipt)
}

// WaitForTransactionSuccess polls the node until the transaction is mined and
// succeeded. It returns ErrTransactionReverted as soon as a failed receipt
// shows up, and the last poll error when the wait budget runs out first.
func (c *client) WaitForTransactionSuccess(ctx context.Context, txHash string) error {
	return c.retry.Execute(ctx, func() error {
		receipt, err := c.getTransactionReceipt(ctx, txHash)
		if err != nil {
			return err
		}

		if receipt.Status.Int() != receiptSuccessStatus {
			return retry.Unrecoverable(fmt.Errorf("%w: %s", ErrTransactionReverted, txHash))
		}

		return nil
	})
}
