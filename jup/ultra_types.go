package jup

import (
	"fmt"
	"net/url"
	"strings"
)

// SwapType identifies which Ultra execution venue filled the order.
// Lower-case on the wire.
type SwapType string

const (
	SwapTypeAggregator SwapType = "aggregator"
	SwapTypeRfq        SwapType = "rfq"
	SwapTypeHashflow   SwapType = "hashflow"
)

// UltraOrderRequest holds the query parameters for GET /ultra/v1/order.
// Without a taker the response still carries a quote but no transaction.
type UltraOrderRequest struct {
	InputMint  string
	OutputMint string
	Amount     uint64

	Taker           *string
	ReferralAccount *string
	ReferralFee     *uint8 // basis points, 50..=255
	ExcludeRouters  []string
}

// NewUltraOrderRequest returns an order request for swapping amount of
// inputMint into outputMint, optional fields unset.
func NewUltraOrderRequest(inputMint, outputMint string, amount uint64) *UltraOrderRequest {
	return &UltraOrderRequest{
		InputMint:  inputMint,
		OutputMint: outputMint,
		Amount:     amount,
	}
}

// WithTaker sets the wallet that will sign and submit the returned
// transaction.
func (r *UltraOrderRequest) WithTaker(taker string) *UltraOrderRequest {
	r.Taker = &taker
	return r
}

func (r *UltraOrderRequest) WithReferral(account string, feeBps uint8) *UltraOrderRequest {
	r.ReferralAccount = &account
	r.ReferralFee = &feeBps
	return r
}

// WithExcludeRouters removes the given routing engines (e.g. "metis",
// "hashflow") from order matching.
func (r *UltraOrderRequest) WithExcludeRouters(routers []string) *UltraOrderRequest {
	r.ExcludeRouters = routers
	return r
}

func (r *UltraOrderRequest) queryValues() url.Values {
	q := url.Values{}
	q.Set("inputMint", r.InputMint)
	q.Set("outputMint", r.OutputMint)
	q.Set("amount", fmt.Sprintf("%d", r.Amount))

	if r.Taker != nil {
		q.Set("taker", *r.Taker)
	}
	if r.ReferralAccount != nil {
		q.Set("referralAccount", *r.ReferralAccount)
	}
	if r.ReferralFee != nil {
		q.Set("referralFee", fmt.Sprintf("%d", *r.ReferralFee))
	}
	if len(r.ExcludeRouters) > 0 {
		q.Set("excludeRouters", strings.Join(r.ExcludeRouters, ","))
	}
	return q
}

// UltraOrderResponse is the Ultra quote plus, when a taker was supplied, the
// unsigned transaction to sign and pass to UltraExecuteOrder.
type UltraOrderResponse struct {
	InputMint  string `json:"inputMint"`
	OutputMint string `json:"outputMint"`
	InAmount   string `json:"inAmount"`
	OutAmount  string `json:"outAmount"`

	OtherAmountThreshold string          `json:"otherAmountThreshold"`
	SwapMode             SwapMode        `json:"swapMode"`
	SlippageBps          int32           `json:"slippageBps"`
	PriceImpactPct       string          `json:"priceImpactPct"`
	RoutePlan            []RoutePlanItem `json:"routePlan"`

	FeeMint                   *string  `json:"feeMint,omitempty"`
	FeeBps                    uint8    `json:"feeBps"`
	PrioritizationFeeLamports uint64   `json:"prioritizationFeeLamports"`
	SwapType                  SwapType `json:"swapType"`

	Transaction *string `json:"transaction,omitempty"`
	Gasless     bool    `json:"gasless"`
	RequestID   string  `json:"requestId"`
	TotalTime   uint16  `json:"totalTime"`

	Taker       *string      `json:"taker,omitempty"`
	QuoteID     *string      `json:"quoteId,omitempty"`
	Maker       *string      `json:"maker,omitempty"`
	PlatformFee *PlatformFee `json:"platformFee,omitempty"`
	ExpireAt    *uint64      `json:"expireAt,omitempty"`
}

// UltraExecuteOrderRequest submits a signed order transaction for execution.
type UltraExecuteOrderRequest struct {
	SignedTransaction string `json:"signedTransaction"`
	RequestID         string `json:"requestId"`
}

// NewUltraExecuteOrderRequest pairs the signed base64 transaction with the
// request id returned by GetUltraOrder.
func NewUltraExecuteOrderRequest(signedTransaction, requestID string) *UltraExecuteOrderRequest {
	return &UltraExecuteOrderRequest{
		SignedTransaction: signedTransaction,
		RequestID:         requestID,
	}
}

// UltraExecuteOrderResponse reports the execution outcome. Status is
// "Success" or "Failed"; on failure Error and Code carry the reason.
type UltraExecuteOrderResponse struct {
	Status    string  `json:"status"`
	Signature *string `json:"signature,omitempty"`
	Slot      *string `json:"slot,omitempty"`
	Error     *string `json:"error,omitempty"`
	Code      int64   `json:"code,omitempty"`

	TotalInputAmount   *string `json:"totalInputAmount,omitempty"`
	TotalOutputAmount  *string `json:"totalOutputAmount,omitempty"`
	InputAmountResult  *string `json:"inputAmountResult,omitempty"`
	OutputAmountResult *string `json:"outputAmountResult,omitempty"`
}

// TokenBalance is one entry of an Ultra balances lookup. Amount is the raw
// integer amount as a decimal string.
type TokenBalance struct {
	Amount   string  `json:"amount"`
	UIAmount float64 `json:"uiAmount"`
	Slot     uint64  `json:"slot"`
	IsFrozen bool    `json:"isFrozen"`
}

// TokenBalancesResponse maps mint address (or "SOL" for the native balance)
// to its balance.
type TokenBalancesResponse map[string]TokenBalance

// Get looks up the balance for a mint.
func (t TokenBalancesResponse) Get(mint string) (TokenBalance, bool) {
	b, ok := t[mint]
	return b, ok
}

// ShieldWarning flags one risk attribute of a mint, e.g. type
// "HAS_FREEZE_AUTHORITY" with severity "warning".
type ShieldWarning struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Shield is the token-safety advisory response, keyed by mint address.
type Shield struct {
	Warnings map[string][]ShieldWarning `json:"warnings"`
}

// Router is one routing engine available to Ultra order matching.
type Router struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Icon *string `json:"icon,omitempty"`
}
