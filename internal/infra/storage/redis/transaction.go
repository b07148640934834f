package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/crosslane/bridgewatch/internal/bridgetx"
	"github.com/crosslane/bridgewatch/internal/txstore"
)

// transactionStoragePrefix defines the base key prefix used for bridge
// transaction records.
const transactionStoragePrefix = "bridge"

// transactionKey returns the Redis key holding one record's JSON blob.
//
// Format: "bridge:tx:{id}"
func transactionKey(id string) string {
	return fmt.Sprintf("%s:tx:%s", transactionStoragePrefix, id)
}

// userIndexKey returns the Redis set indexing a user's transaction ids. The
// raw address is embedded verbatim, so lookups are case-sensitive by
// construction.
//
// Format: "bridge:user:{userAddress}"
func userIndexKey(userAddress string) string {
	return fmt.Sprintf("%s:user:%s", transactionStoragePrefix, userAddress)
}

// SaveTransaction implements the txstore.TransactionStorage interface. The
// record blob and the user index entry are written in one pipeline so a
// record never exists without being discoverable by its owner.
func (c *client) SaveTransaction(ctx context.Context, tx bridgetx.Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("encoding transaction %q: %w", tx.ID, err)
	}

	pipe := c.conn.TxPipeline()
	pipe.Set(ctx, transactionKey(tx.ID), data, 0)
	pipe.SAdd(ctx, userIndexKey(tx.UserAddress), tx.ID)

	_, err = pipe.Exec(ctx)
	return err
}

// GetTransaction implements the txstore.TransactionStorage interface.
func (c *client) GetTransaction(ctx context.Context, id string) (bridgetx.Transaction, error) {
	data, err := c.conn.Get(ctx, transactionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return bridgetx.Transaction{}, txstore.ErrTransactionNotFound
	}
	if err != nil {
		return bridgetx.Transaction{}, err
	}

	var tx bridgetx.Transaction
	if err := json.Unmarshal(data, &tx); err != nil {
		return bridgetx.Transaction{}, fmt.Errorf("decoding transaction %q: %w", id, err)
	}

	return tx, nil
}

// ListTransactionsByUser implements the txstore.TransactionStorage interface.
// Index entries whose record has been deleted out-of-band are skipped.
func (c *client) ListTransactionsByUser(ctx context.Context, userAddress string) ([]bridgetx.Transaction, error) {
	ids, err := c.conn.SMembers(ctx, userIndexKey(userAddress)).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []bridgetx.Transaction{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = transactionKey(id)
	}

	blobs, err := c.conn.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	txs := make([]bridgetx.Transaction, 0, len(blobs))
	for i, blob := range blobs {
		raw, ok := blob.(string)
		if !ok {
			continue
		}

		var tx bridgetx.Transaction
		if err := json.Unmarshal([]byte(raw), &tx); err != nil {
			return nil, fmt.Errorf("decoding transaction %q: %w", ids[i], err)
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

// DeleteTransaction implements the txstore.TransactionStorage interface.
// Deleting a missing record is not an error.
func (c *client) DeleteTransaction(ctx context.Context, id string) error {
	tx, err := c.GetTransaction(ctx, id)
	if errors.Is(err, txstore.ErrTransactionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	pipe := c.conn.TxPipeline()
	pipe.Del(ctx, transactionKey(id))
	pipe.SRem(ctx, userIndexKey(tx.UserAddress), id)

	_, err = pipe.Exec(ctx)
	return err
}

// DeleteTransactionsByUser implements the txstore.TransactionStorage
// interface. Only records indexed under the exact address are touched.
func (c *client) DeleteTransactionsByUser(ctx context.Context, userAddress string) error {
	ids, err := c.conn.SMembers(ctx, userIndexKey(userAddress)).Result()
	if err != nil {
		return err
	}

	pipe := c.conn.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, transactionKey(id))
	}
	pipe.Del(ctx, userIndexKey(userAddress))

	_, err = pipe.Exec(ctx)
	return err
}

// Compile-time assertion to ensure *client satisfies the
// txstore.TransactionStorage interface
var _ txstore.TransactionStorage = new(client)
