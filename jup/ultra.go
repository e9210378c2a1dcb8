package jup

import (
	"context"
	"net/url"
	"strings"
)

// GetUltraOrder fetches a swap order from the Ultra API. With a taker set
// the response includes an unsigned transaction ready for signing.
func (c *Client) GetUltraOrder(ctx context.Context, req *UltraOrderRequest) (*UltraOrderResponse, error) {
	var out UltraOrderResponse
	if err := c.getJSON(ctx, "/ultra/v1/order", req.queryValues(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UltraExecuteOrder submits a signed Ultra order for execution. Submitting
// the same signed transaction twice is a ledger concern, not the client's.
func (c *Client) UltraExecuteOrder(ctx context.Context, req *UltraExecuteOrderRequest) (*UltraExecuteOrderResponse, error) {
	var out UltraExecuteOrderResponse
	if err := c.postJSON(ctx, "/ultra/v1/execute", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTokenBalances returns all token balances held by a wallet address.
func (c *Client) GetTokenBalances(ctx context.Context, address string) (TokenBalancesResponse, error) {
	var out TokenBalancesResponse
	if err := c.getJSON(ctx, "/ultra/v1/balances/"+url.PathEscape(address), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Shield returns token-safety warnings for the given mints, useful for
// flagging malicious tokens before quoting a swap.
func (c *Client) Shield(ctx context.Context, mints []string) (*Shield, error) {
	q := url.Values{}
	q.Set("mints", strings.Join(mints, ","))

	var out Shield
	if err := c.getJSON(ctx, "/ultra/v1/shield", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Routers lists the routing engines available to Ultra order matching.
func (c *Client) Routers(ctx context.Context) ([]Router, error) {
	var out []Router
	if err := c.getJSON(ctx, "/ultra/v1/order/routers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
