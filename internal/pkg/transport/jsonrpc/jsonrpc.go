// Package jsonrpc implements a minimal JSON-RPC 2.0 client over HTTP,
// suitable for talking to blockchain node providers.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrProviderReturnedError indicates the remote provider answered the request
// with a JSON-RPC level error object.
var ErrProviderReturnedError = errors.New("provider error")

// response models a JSON-RPC 2.0 response envelope.
type response struct {
	JsonRPC string `json:"jsonrpc"` // protocol version, usually "2.0"
	Error   *struct {
		Code    int    `json:"code"`    // JSON-RPC error code
		Message string `json:"message"` // human-readable error message
	} `json:"error"`
	Result json.RawMessage `json:"result"` // raw result payload
}

// Err converts a populated error object into a Go error wrapping
// ErrProviderReturnedError, or returns nil when the call succeeded.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client sends JSON-RPC requests to a single provider endpoint.
type Client interface {
	// Fetch sends a JSON-RPC request with the given method name and parameters.
	// It returns the raw JSON result or an error if the request or response fails.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type client struct {
	providerEndpoint string       // URL of the remote JSON-RPC server
	httpClient       *http.Client // HTTP client used to perform requests
}

var _ Client = (*client)(nil)

func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	return data.Result, data.Err()
}

// NewClient builds a Client that posts requests to providerEndpoint using the
// given HTTP client.
func NewClient(httpClient *http.Client, providerEndpoint string) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
	}
}
