package jup

import "context"

// CreateRecurringOrder requests an unsigned transaction that opens a
// time-based or price-based recurring order.
func (c *Client) CreateRecurringOrder(ctx context.Context, req *CreateRecurringOrderRequest) (*RecurringResponse, error) {
	var out RecurringResponse
	if err := c.postJSON(ctx, "/recurring/v1/createOrder", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExecuteRecurringOrder submits a signed recurring transaction for
// execution.
func (c *Client) ExecuteRecurringOrder(ctx context.Context, req *ExecuteRecurringRequest) (*ExecuteRecurringResponse, error) {
	var out ExecuteRecurringResponse
	if err := c.postJSON(ctx, "/recurring/v1/execute", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelRecurringOrder requests an unsigned cancellation transaction for a
// recurring order.
func (c *Client) CancelRecurringOrder(ctx context.Context, req *CancelRecurringOrderRequest) (*RecurringResponse, error) {
	var out RecurringResponse
	if err := c.postJSON(ctx, "/recurring/v1/cancelOrder", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PriceDeposit tops up the deposit backing a price-based recurring order.
func (c *Client) PriceDeposit(ctx context.Context, req *PriceDepositRequest) (*RecurringResponse, error) {
	var out RecurringResponse
	if err := c.postJSON(ctx, "/recurring/v1/priceDeposit", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PriceWithdraw withdraws funds from a price-based recurring order.
func (c *Client) PriceWithdraw(ctx context.Context, req *PriceWithdrawRequest) (*RecurringResponse, error) {
	var out RecurringResponse
	if err := c.postJSON(ctx, "/recurring/v1/priceWithdraw", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRecurringOrders lists a user's recurring orders by type and status.
func (c *Client) GetRecurringOrders(ctx context.Context, req *GetRecurringOrders) (*RecurringOrders, error) {
	var out RecurringOrders
	if err := c.getJSON(ctx, "/recurring/v1/getRecurringOrders", req.queryValues(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
