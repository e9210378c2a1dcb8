package jup

import "context"

// GetTokenPrice returns current prices for the requested mints, keyed by
// mint address.
func (c *Client) GetTokenPrice(ctx context.Context, req *TokenPriceRequest) (*TokenPriceResponse, error) {
	var out TokenPriceResponse
	if err := c.getJSON(ctx, "/price/v2", req.queryValues(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
