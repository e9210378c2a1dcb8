package jup

import "context"

// GetQuote fetches a swap route for the given pair and amount from the Swap
// API quote endpoint.
//
//	quote, err := client.GetQuote(ctx, jup.NewQuoteRequest(sol, usdc, 1_000_000_000))
func (c *Client) GetQuote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error) {
	var out QuoteResponse
	if err := c.getJSON(ctx, "/swap/v1/quote", req.queryValues(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSwapTransaction exchanges a quote for a base64-encoded unsigned swap
// transaction. Signing and submission are the caller's responsibility.
//
//	swap, err := client.GetSwapTransaction(ctx, jup.NewSwapRequest(wallet, *quote))
func (c *Client) GetSwapTransaction(ctx context.Context, req *SwapRequest) (*SwapResponse, error) {
	var out SwapResponse
	if err := c.postJSON(ctx, "/swap/v1/swap", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSwapInstructions is the instruction-list variant of GetSwapTransaction,
// for callers composing their own transaction.
func (c *Client) GetSwapInstructions(ctx context.Context, req *SwapRequest) (*SwapInstructions, error) {
	var out SwapInstructions
	if err := c.postJSON(ctx, "/swap/v1/swap-instructions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
