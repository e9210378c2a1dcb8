package jup

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

// RecurringOrderType distinguishes time-based and price-based recurring
// orders. Lower-case on the wire. RecurringOrderTypeAll is only valid when
// listing orders.
type RecurringOrderType string

const (
	RecurringOrderTypeTime  RecurringOrderType = "time"
	RecurringOrderTypePrice RecurringOrderType = "price"
	RecurringOrderTypeAll   RecurringOrderType = "all"
)

// TimeParams schedules a fixed input amount split across numberOfOrders
// executions, interval seconds apart.
type TimeParams struct {
	InAmount       uint64   `json:"inAmount"`
	NumberOfOrders uint64   `json:"numberOfOrders"`
	Interval       uint64   `json:"interval"`
	MinPrice       *float64 `json:"minPrice,omitempty"`
	MaxPrice       *float64 `json:"maxPrice,omitempty"`
	StartAt        *uint64  `json:"startAt,omitempty"`
}

// PriceParams schedules value-averaging buys: incrementUsdcValue worth of
// the output per interval, funded from depositAmount.
type PriceParams struct {
	DepositAmount      uint64  `json:"depositAmount"`
	IncrementUsdcValue uint64  `json:"incrementUsdcValue"`
	Interval           uint64  `json:"interval"`
	StartAt            *uint64 `json:"startAt,omitempty"`
}

// RecurringOrderParams is a two-variant union. On the wire it is an object
// holding exactly one of the keys "time" or "price"; which key is present
// determines the variant. There is no explicit discriminator field.
type RecurringOrderParams struct {
	Time  *TimeParams
	Price *PriceParams
}

func (p RecurringOrderParams) MarshalJSON() ([]byte, error) {
	switch {
	case p.Time != nil:
		return json.Marshal(struct {
			Time *TimeParams `json:"time"`
		}{p.Time})
	case p.Price != nil:
		return json.Marshal(struct {
			Price *PriceParams `json:"price"`
		}{p.Price})
	default:
		return nil, errors.New("recurring order params: neither time nor price variant is set")
	}
}

// UnmarshalJSON tries the time variant first, then price, and fails only if
// neither key is present.
func (p *RecurringOrderParams) UnmarshalJSON(data []byte) error {
	var probe struct {
		Time  *TimeParams  `json:"time"`
		Price *PriceParams `json:"price"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	switch {
	case probe.Time != nil:
		p.Time = probe.Time
		p.Price = nil
	case probe.Price != nil:
		p.Price = probe.Price
		p.Time = nil
	default:
		return errors.New("recurring order params: object matches neither time nor price variant")
	}
	return nil
}

// CreateRecurringOrderRequest is the POST body for
// /recurring/v1/createOrder.
type CreateRecurringOrderRequest struct {
	User       string               `json:"user"`
	InputMint  string               `json:"inputMint"`
	OutputMint string               `json:"outputMint"`
	Params     RecurringOrderParams `json:"params"`
}

// NewTimeRecurringOrder returns a time-based recurring order: inAmount of
// inputMint split into numberOfOrders swaps, one every interval seconds.
func NewTimeRecurringOrder(user, inputMint, outputMint string, inAmount, numberOfOrders, interval uint64) *CreateRecurringOrderRequest {
	return &CreateRecurringOrderRequest{
		User:       user,
		InputMint:  inputMint,
		OutputMint: outputMint,
		Params: RecurringOrderParams{
			Time: &TimeParams{
				InAmount:       inAmount,
				NumberOfOrders: numberOfOrders,
				Interval:       interval,
			},
		},
	}
}

// NewPriceRecurringOrder returns a price-based recurring order buying
// incrementUsdcValue worth every interval seconds out of depositAmount.
func NewPriceRecurringOrder(user, inputMint, outputMint string, depositAmount, incrementUsdcValue, interval uint64) *CreateRecurringOrderRequest {
	return &CreateRecurringOrderRequest{
		User:       user,
		InputMint:  inputMint,
		OutputMint: outputMint,
		Params: RecurringOrderParams{
			Price: &PriceParams{
				DepositAmount:      depositAmount,
				IncrementUsdcValue: incrementUsdcValue,
				Interval:           interval,
			},
		},
	}
}

// WithStartAt delays the first execution to the given unix timestamp. Works
// on both variants.
func (r *CreateRecurringOrderRequest) WithStartAt(startAt uint64) *CreateRecurringOrderRequest {
	switch {
	case r.Params.Time != nil:
		r.Params.Time.StartAt = &startAt
	case r.Params.Price != nil:
		r.Params.Price.StartAt = &startAt
	}
	return r
}

// WithMinPrice bounds execution price from below. Only meaningful on the
// time variant; a no-op otherwise.
func (r *CreateRecurringOrderRequest) WithMinPrice(price float64) *CreateRecurringOrderRequest {
	if r.Params.Time != nil {
		r.Params.Time.MinPrice = &price
	}
	return r
}

// WithMaxPrice bounds execution price from above. Only meaningful on the
// time variant; a no-op otherwise.
func (r *CreateRecurringOrderRequest) WithMaxPrice(price float64) *CreateRecurringOrderRequest {
	if r.Params.Time != nil {
		r.Params.Time.MaxPrice = &price
	}
	return r
}

// CancelRecurringOrderRequest requests an unsigned cancellation transaction
// for a recurring order.
type CancelRecurringOrderRequest struct {
	Order         string             `json:"order"`
	RecurringType RecurringOrderType `json:"recurringType"`
	User          string             `json:"user"`
}

func NewCancelRecurringOrder(order string, recurringType RecurringOrderType, user string) *CancelRecurringOrderRequest {
	return &CancelRecurringOrderRequest{
		Order:         order,
		RecurringType: recurringType,
		User:          user,
	}
}

// PriceDepositRequest tops up the deposit of a price-based order.
type PriceDepositRequest struct {
	Amount uint64 `json:"amount"`
	Order  string `json:"order"`
	User   string `json:"user"`
}

// PriceWithdrawRequest withdraws from a price-based order. InputOrOutput is
// "In" or "Out" and selects which side of the position to withdraw.
type PriceWithdrawRequest struct {
	Amount       uint64 `json:"amount"`
	Order        string `json:"order"`
	User         string `json:"user"`
	InputOrOutput string `json:"inputOrOutput"`
}

// RecurringResponse carries the unsigned base64 transaction for a recurring
// mutation; sign it and pass it to ExecuteRecurringOrder.
type RecurringResponse struct {
	RequestID   string `json:"requestId"`
	Transaction string `json:"transaction"`
}

// ExecuteRecurringRequest submits a signed recurring transaction.
type ExecuteRecurringRequest struct {
	RequestID         string `json:"requestId"`
	SignedTransaction string `json:"signedTransaction"`
}

func NewExecuteRecurringRequest(requestID, signedTransaction string) *ExecuteRecurringRequest {
	return &ExecuteRecurringRequest{
		RequestID:         requestID,
		SignedTransaction: signedTransaction,
	}
}

type ExecuteRecurringResponse struct {
	Signature string `json:"signature"`
	Status    string `json:"status"`
}

// GetRecurringOrders holds the query parameters for
// GET /recurring/v1/getRecurringOrders. Page starts at 1.
type GetRecurringOrders struct {
	RecurringType   RecurringOrderType
	OrderStatus     OrderStatus
	User            string
	Page            uint64
	Mint            *string
	IncludeFailedTx bool
}

func NewGetRecurringOrders(recurringType RecurringOrderType, status OrderStatus, user string) *GetRecurringOrders {
	return &GetRecurringOrders{
		RecurringType: recurringType,
		OrderStatus:   status,
		User:          user,
		Page:          1,
	}
}

func (r *GetRecurringOrders) WithPage(page uint64) *GetRecurringOrders {
	r.Page = page
	return r
}

// WithMint filters the listing to orders touching the given mint.
func (r *GetRecurringOrders) WithMint(mint string) *GetRecurringOrders {
	r.Mint = &mint
	return r
}

func (r *GetRecurringOrders) WithIncludeFailedTx() *GetRecurringOrders {
	r.IncludeFailedTx = true
	return r
}

func (r *GetRecurringOrders) queryValues() url.Values {
	q := url.Values{}
	q.Set("recurringType", string(r.RecurringType))
	q.Set("orderStatus", string(r.OrderStatus))
	q.Set("user", r.User)
	q.Set("page", fmt.Sprintf("%d", r.Page))
	q.Set("includeFailedTx", fmt.Sprintf("%t", r.IncludeFailedTx))

	if r.Mint != nil {
		q.Set("mint", *r.Mint)
	}
	return q
}

// RecurringOrders is a page of recurring orders. Order entries differ per
// variant and server version, so they are kept raw.
type RecurringOrders struct {
	OrderStatus OrderStatus `json:"orderStatus"`
	Page        uint64      `json:"page"`
	TotalPages  uint64      `json:"totalPages"`
	User        string      `json:"user"`

	Time  []json.RawMessage `json:"time,omitempty"`
	Price []json.RawMessage `json:"price,omitempty"`
	All   []json.RawMessage `json:"all,omitempty"`
}
