package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Client is an HTTP client with retry and timeout support for Solana RPC
type Client struct {
	httpClient   *http.Client
	baseURL      string
	maxRetries   int
	retryBackoff time.Duration
	logger       *logrus.Logger
}

// ClientConfig holds configuration for the RPC client
type ClientConfig struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
	Logger       *logrus.Logger
}

// NewClient creates a new RPC client with retry support
func NewClient(cfg ClientConfig) *Client {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL:      cfg.BaseURL,
		maxRetries:   cfg.MaxRetries,
		retryBackoff: cfg.RetryBackoff,
		logger:       cfg.Logger,
	}
}

// Call makes a JSON-RPC call with retry logic
func (c *Client) Call(ctx context.Context, method string, params interface{}, result interface{}) error {
	body := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	backoff := c.retryBackoff

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.logger.WithFields(logrus.Fields{
				"attempt": attempt,
				"backoff": backoff,
				"method":  method,
			}).Debug("retrying RPC call")

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2 // exponential backoff
		}

		resp, err := c.doRequest(ctx, data)
		if err != nil {
			lastErr = err
			continue
		}

		if err := json.Unmarshal(resp, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}

		return nil
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func (c *Client) doRequest(ctx context.Context, data []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewBuffer(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// Handle rate limiting
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("rate limited (429)")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}

// SendTransaction submits a signed base64-encoded transaction and returns its signature.
// Preflight is skipped since the aggregator already simulated the route.
func (c *Client) SendTransaction(ctx context.Context, signedTxBase64 string) (string, error) {
	params := []interface{}{
		signedTxBase64,
		map[string]interface{}{
			"encoding":            "base64",
			"skipPreflight":       true,
			"maxRetries":          0,
			"preflightCommitment": "confirmed",
		},
	}

	var result SendTransactionResponse
	if err := c.Call(ctx, "sendTransaction", params, &result); err != nil {
		return "", err
	}

	if result.Error != nil {
		return "", result.Error
	}

	return result.Result, nil
}

// GetLatestBlockhash fetches the latest blockhash and its expiry height
func (c *Client) GetLatestBlockhash(ctx context.Context) (*BlockhashValue, error) {
	params := []interface{}{
		map[string]interface{}{"commitment": "confirmed"},
	}

	var result BlockhashResponse
	if err := c.Call(ctx, "getLatestBlockhash", params, &result); err != nil {
		return nil, err
	}

	if result.Error != nil {
		return nil, result.Error
	}
	if result.Result == nil {
		return nil, fmt.Errorf("empty getLatestBlockhash result")
	}

	return &result.Result.Value, nil
}

// GetSignatureStatus fetches confirmation status for a single signature
func (c *Client) GetSignatureStatus(ctx context.Context, signature string) (*SignatureStatus, error) {
	params := []interface{}{
		[]string{signature},
		map[string]interface{}{"searchTransactionHistory": true},
	}

	var result SignatureStatusResponse
	if err := c.Call(ctx, "getSignatureStatuses", params, &result); err != nil {
		return nil, err
	}

	if result.Error != nil {
		return nil, result.Error
	}
	if result.Result == nil || len(result.Result.Value) == 0 {
		return nil, nil
	}

	return result.Result.Value[0], nil
}

// WaitForConfirmation polls signature status until the transaction is
// confirmed, fails on chain, or the context expires.
func (c *Client) WaitForConfirmation(ctx context.Context, signature string) error {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		status, err := c.GetSignatureStatus(ctx, signature)
		if err != nil {
			c.logger.WithError(err).WithField("signature", signature).Debug("status check failed")
			continue
		}
		if status == nil {
			continue
		}
		if status.Err != nil {
			return fmt.Errorf("transaction failed on chain: %v", status.Err)
		}
		if status.ConfirmationStatus == "confirmed" || status.ConfirmationStatus == "finalized" {
			return nil
		}
	}
}
