package jup

import "context"

// CreateTriggerOrder requests an unsigned transaction that opens a trigger
// order on-chain. Sign it and pass it to ExecuteTriggerOrder.
func (c *Client) CreateTriggerOrder(ctx context.Context, req *CreateTriggerOrder) (*TriggerResponse, error) {
	var out TriggerResponse
	if err := c.postJSON(ctx, "/trigger/v1/createOrder", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExecuteTriggerOrder submits a signed trigger transaction for execution.
func (c *Client) ExecuteTriggerOrder(ctx context.Context, req *ExecuteTriggerOrder) (*TriggerResponse, error) {
	var out TriggerResponse
	if err := c.postJSON(ctx, "/trigger/v1/execute", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelTriggerOrder requests an unsigned cancellation transaction for a
// single order; sign it and pass it to ExecuteTriggerOrder.
func (c *Client) CancelTriggerOrder(ctx context.Context, req *CancelTriggerOrder) (*TriggerResponse, error) {
	var out TriggerResponse
	if err := c.postJSON(ctx, "/trigger/v1/cancelOrder", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelTriggerOrders is the batch form of CancelTriggerOrder.
func (c *Client) CancelTriggerOrders(ctx context.Context, req *CancelTriggerOrders) (*TriggerResponse, error) {
	var out TriggerResponse
	if err := c.postJSON(ctx, "/trigger/v1/cancelOrders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTriggerOrders lists a user's trigger orders, active or historical.
func (c *Client) GetTriggerOrders(ctx context.Context, req *GetTriggerOrders) (*OrderResponse, error) {
	var out OrderResponse
	if err := c.getJSON(ctx, "/trigger/v1/getTriggerOrders", req.queryValues(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
