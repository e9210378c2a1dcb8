package jup

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// OrderStatus filters trigger/recurring order listings. Lower-case on the
// wire.
type OrderStatus string

const (
	OrderStatusActive  OrderStatus = "active"
	OrderStatusHistory OrderStatus = "history"
)

// TriggerOrderParams are the price conditions of a trigger order. Amounts
// are decimal strings per the wire contract.
type TriggerOrderParams struct {
	MakingAmount string  `json:"makingAmount"`
	TakingAmount string  `json:"takingAmount"`
	ExpiredAt    *string `json:"expiredAt,omitempty"`
	SlippageBps  *string `json:"slippageBps,omitempty"`
	FeeBps       *string `json:"feeBps,omitempty"`
}

// CreateTriggerOrder is the POST body for /trigger/v1/createOrder. The maker
// owns the order; the payer funds its rent.
type CreateTriggerOrder struct {
	InputMint  string             `json:"inputMint"`
	OutputMint string             `json:"outputMint"`
	Maker      string             `json:"maker"`
	Payer      string             `json:"payer"`
	Params     TriggerOrderParams `json:"params"`

	ComputeUnitPrice *string `json:"computeUnitPrice,omitempty"`
	FeeAccount       *string `json:"feeAccount,omitempty"`
	WrapAndUnwrapSol *bool   `json:"wrapAndUnwrapSol,omitempty"`
}

// NewTriggerOrder returns a trigger order selling makingAmount of inputMint
// for takingAmount of outputMint, optional fields unset.
func NewTriggerOrder(inputMint, outputMint, maker, payer string, makingAmount, takingAmount uint64) *CreateTriggerOrder {
	return &CreateTriggerOrder{
		InputMint:  inputMint,
		OutputMint: outputMint,
		Maker:      maker,
		Payer:      payer,
		Params: TriggerOrderParams{
			MakingAmount: strconv.FormatUint(makingAmount, 10),
			TakingAmount: strconv.FormatUint(takingAmount, 10),
		},
	}
}

// WithExpiredAt sets the unix-timestamp expiry of the order.
func (r *CreateTriggerOrder) WithExpiredAt(expiredAt string) *CreateTriggerOrder {
	r.Params.ExpiredAt = &expiredAt
	return r
}

func (r *CreateTriggerOrder) WithSlippageBps(bps uint16) *CreateTriggerOrder {
	s := strconv.FormatUint(uint64(bps), 10)
	r.Params.SlippageBps = &s
	return r
}

func (r *CreateTriggerOrder) WithFeeBps(bps uint16, feeAccount string) *CreateTriggerOrder {
	s := strconv.FormatUint(uint64(bps), 10)
	r.Params.FeeBps = &s
	r.FeeAccount = &feeAccount
	return r
}

// WithComputeUnitPrice sets the compute unit price in micro lamports, or
// "auto".
func (r *CreateTriggerOrder) WithComputeUnitPrice(price string) *CreateTriggerOrder {
	r.ComputeUnitPrice = &price
	return r
}

func (r *CreateTriggerOrder) WithWrapAndUnwrapSol(wrap bool) *CreateTriggerOrder {
	r.WrapAndUnwrapSol = &wrap
	return r
}

// ExecuteTriggerOrder submits a signed trigger transaction (create or
// cancel) for execution.
type ExecuteTriggerOrder struct {
	RequestID         string `json:"requestId"`
	SignedTransaction string `json:"signedTransaction"`
}

func NewExecuteTriggerOrder(requestID, signedTransaction string) *ExecuteTriggerOrder {
	return &ExecuteTriggerOrder{
		RequestID:         requestID,
		SignedTransaction: signedTransaction,
	}
}

// CancelTriggerOrder requests an unsigned cancellation transaction for one
// order.
type CancelTriggerOrder struct {
	Maker            string  `json:"maker"`
	Order            string  `json:"order"`
	ComputeUnitPrice *string `json:"computeUnitPrice,omitempty"`
}

func NewCancelTriggerOrder(maker, order string) *CancelTriggerOrder {
	return &CancelTriggerOrder{Maker: maker, Order: order}
}

// CancelTriggerOrders is the batch variant; with no orders listed the server
// cancels all of the maker's orders.
type CancelTriggerOrders struct {
	Maker            string   `json:"maker"`
	Orders           []string `json:"orders,omitempty"`
	ComputeUnitPrice *string  `json:"computeUnitPrice,omitempty"`
}

func NewCancelTriggerOrders(maker string, orders []string) *CancelTriggerOrders {
	return &CancelTriggerOrders{Maker: maker, Orders: orders}
}

// TriggerResponse is shared by the trigger mutation endpoints. Create and
// cancel return an unsigned transaction (plus the order account on create);
// execute returns the signature and status.
type TriggerResponse struct {
	RequestID    string   `json:"requestId"`
	Transaction  string   `json:"transaction,omitempty"`
	Transactions []string `json:"transactions,omitempty"`
	Order        *string  `json:"order,omitempty"`

	Signature *string `json:"signature,omitempty"`
	Status    *string `json:"status,omitempty"`
	Error     *string `json:"error,omitempty"`
	Code      int64   `json:"code,omitempty"`
}

// GetTriggerOrders holds the query parameters for
// GET /trigger/v1/getTriggerOrders.
type GetTriggerOrders struct {
	User        string
	OrderStatus OrderStatus

	Page            *uint64
	IncludeFailedTx *bool
	InputMint       *string
	OutputMint      *string
}

func NewGetTriggerOrders(user string, status OrderStatus) *GetTriggerOrders {
	return &GetTriggerOrders{User: user, OrderStatus: status}
}

func (r *GetTriggerOrders) WithPage(page uint64) *GetTriggerOrders {
	r.Page = &page
	return r
}

func (r *GetTriggerOrders) WithIncludeFailedTx(include bool) *GetTriggerOrders {
	r.IncludeFailedTx = &include
	return r
}

func (r *GetTriggerOrders) WithInputMint(mint string) *GetTriggerOrders {
	r.InputMint = &mint
	return r
}

func (r *GetTriggerOrders) WithOutputMint(mint string) *GetTriggerOrders {
	r.OutputMint = &mint
	return r
}

func (r *GetTriggerOrders) queryValues() url.Values {
	q := url.Values{}
	q.Set("user", r.User)
	q.Set("orderStatus", string(r.OrderStatus))

	if r.Page != nil {
		q.Set("page", fmt.Sprintf("%d", *r.Page))
	}
	if r.IncludeFailedTx != nil {
		q.Set("includeFailedTx", fmt.Sprintf("%t", *r.IncludeFailedTx))
	}
	if r.InputMint != nil {
		q.Set("inputMint", *r.InputMint)
	}
	if r.OutputMint != nil {
		q.Set("outputMint", *r.OutputMint)
	}
	return q
}

// TriggerOrder is one order in a listing. Trade history entries vary in
// shape and are kept raw.
type TriggerOrder struct {
	UserPubkey string `json:"userPubkey"`
	OrderKey   string `json:"orderKey"`
	InputMint  string `json:"inputMint"`
	OutputMint string `json:"outputMint"`

	MakingAmount          string  `json:"makingAmount"`
	TakingAmount          string  `json:"takingAmount"`
	RemainingMakingAmount string  `json:"remainingMakingAmount"`
	RemainingTakingAmount string  `json:"remainingTakingAmount"`
	ExpiredAt             *string `json:"expiredAt,omitempty"`

	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	OpenTx    string `json:"openTx"`
	CloseTx   string `json:"closeTx"`

	Trades []json.RawMessage `json:"trades,omitempty"`
}

// OrderResponse is a page of trigger orders for a user.
type OrderResponse struct {
	User        string         `json:"user"`
	OrderStatus OrderStatus    `json:"orderStatus"`
	Orders      []TriggerOrder `json:"orders"`
	Page        uint64         `json:"page"`
	TotalPages  uint64         `json:"totalPages"`
}
