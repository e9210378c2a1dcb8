package jup

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// SwapMode selects whether the quoted amount is the exact input or the exact
// output of the swap. The casing is part of the API contract.
type SwapMode string

const (
	SwapModeExactIn  SwapMode = "ExactIn"
	SwapModeExactOut SwapMode = "ExactOut"
)

// QuoteRequest holds the query parameters for GET /swap/v1/quote. Required
// fields are set by NewQuoteRequest; everything else is optional and omitted
// from the query string when unset.
type QuoteRequest struct {
	InputMint  string
	OutputMint string
	Amount     uint64 // raw amount, before decimals; meaning depends on SwapMode

	SlippageBps *uint16
	SwapMode    *SwapMode

	Dexes        []string
	ExcludeDexes []string

	RestrictIntermediateTokens *bool
	OnlyDirectRoutes           *bool
	AsLegacyTransaction        *bool

	PlatformFeeBps *uint64
	MaxAccounts    *uint64

	DynamicSlippage *bool
}

// NewQuoteRequest returns a quote request for swapping amount of inputMint
// into outputMint, with all optional tuning fields unset.
func NewQuoteRequest(inputMint, outputMint string, amount uint64) *QuoteRequest {
	return &QuoteRequest{
		InputMint:  inputMint,
		OutputMint: outputMint,
		Amount:     amount,
	}
}

func (r *QuoteRequest) WithSlippageBps(bps uint16) *QuoteRequest {
	r.SlippageBps = &bps
	return r
}

func (r *QuoteRequest) WithSwapMode(mode SwapMode) *QuoteRequest {
	r.SwapMode = &mode
	return r
}

// WithDexes restricts routing to the given DEX labels.
func (r *QuoteRequest) WithDexes(dexes []string) *QuoteRequest {
	r.Dexes = dexes
	return r
}

// WithExcludeDexes removes the given DEX labels from routing.
func (r *QuoteRequest) WithExcludeDexes(dexes []string) *QuoteRequest {
	r.ExcludeDexes = dexes
	return r
}

func (r *QuoteRequest) WithRestrictIntermediateTokens(restrict bool) *QuoteRequest {
	r.RestrictIntermediateTokens = &restrict
	return r
}

func (r *QuoteRequest) WithOnlyDirectRoutes(only bool) *QuoteRequest {
	r.OnlyDirectRoutes = &only
	return r
}

func (r *QuoteRequest) WithAsLegacyTransaction(legacy bool) *QuoteRequest {
	r.AsLegacyTransaction = &legacy
	return r
}

func (r *QuoteRequest) WithPlatformFeeBps(bps uint64) *QuoteRequest {
	r.PlatformFeeBps = &bps
	return r
}

func (r *QuoteRequest) WithMaxAccounts(max uint64) *QuoteRequest {
	r.MaxAccounts = &max
	return r
}

func (r *QuoteRequest) WithDynamicSlippage(dynamic bool) *QuoteRequest {
	r.DynamicSlippage = &dynamic
	return r
}

// queryValues encodes the request as wire query parameters. Unset optionals
// produce no key at all; list fields are comma-joined.
func (r *QuoteRequest) queryValues() url.Values {
	q := url.Values{}
	q.Set("inputMint", r.InputMint)
	q.Set("outputMint", r.OutputMint)
	q.Set("amount", fmt.Sprintf("%d", r.Amount))

	if r.SlippageBps != nil {
		q.Set("slippageBps", fmt.Sprintf("%d", *r.SlippageBps))
	}
	if r.SwapMode != nil {
		q.Set("swapMode", string(*r.SwapMode))
	}
	if len(r.Dexes) > 0 {
		q.Set("dexes", strings.Join(r.Dexes, ","))
	}
	if len(r.ExcludeDexes) > 0 {
		q.Set("excludeDexes", strings.Join(r.ExcludeDexes, ","))
	}
	if r.RestrictIntermediateTokens != nil {
		q.Set("restrictIntermediateTokens", fmt.Sprintf("%t", *r.RestrictIntermediateTokens))
	}
	if r.OnlyDirectRoutes != nil {
		q.Set("onlyDirectRoutes", fmt.Sprintf("%t", *r.OnlyDirectRoutes))
	}
	if r.AsLegacyTransaction != nil {
		q.Set("asLegacyTransaction", fmt.Sprintf("%t", *r.AsLegacyTransaction))
	}
	if r.PlatformFeeBps != nil {
		q.Set("platformFeeBps", fmt.Sprintf("%d", *r.PlatformFeeBps))
	}
	if r.MaxAccounts != nil {
		q.Set("maxAccounts", fmt.Sprintf("%d", *r.MaxAccounts))
	}
	if r.DynamicSlippage != nil {
		q.Set("dynamicSlippage", fmt.Sprintf("%t", *r.DynamicSlippage))
	}
	return q
}

// QuoteResponse is the quoted route for a swap. All token amounts are decimal
// strings; parsing them into numbers is left to the caller so large values
// never pass through a float.
type QuoteResponse struct {
	InputMint  string `json:"inputMint"`
	InAmount   string `json:"inAmount"`
	OutputMint string `json:"outputMint"`
	OutAmount  string `json:"outAmount"`

	OtherAmountThreshold string          `json:"otherAmountThreshold"`
	SwapMode             SwapMode        `json:"swapMode"`
	SlippageBps          int32           `json:"slippageBps"`
	PlatformFee          *PlatformFee    `json:"platformFee,omitempty"`
	PriceImpactPct       string          `json:"priceImpactPct"`
	RoutePlan            []RoutePlanItem `json:"routePlan"`

	// Diagnostic fields; shape varies by server version, kept raw.
	ScoreReport                   json.RawMessage `json:"scoreReport,omitempty"`
	ContextSlot                   uint64          `json:"contextSlot,omitempty"`
	TimeTaken                     float64         `json:"timeTaken,omitempty"`
	SwapUsdValue                  *string         `json:"swapUsdValue,omitempty"`
	SimplerRouteUsed              *bool           `json:"simplerRouteUsed,omitempty"`
	MostReliableAmmsQuoteReport   *MostReliableAmmsQuoteReport `json:"mostReliableAmmsQuoteReport,omitempty"`
	UseIncurredSlippageForQuoting json.RawMessage `json:"useIncurredSlippageForQuoting,omitempty"`
}

type PlatformFee struct {
	Amount string `json:"amount"`
	FeeBps int32  `json:"feeBps"`
}

// RoutePlanItem is one hop of the route and the percentage of the input it
// carries.
type RoutePlanItem struct {
	SwapInfo SwapInfo `json:"swapInfo"`
	Percent  int32    `json:"percent"`
}

type SwapInfo struct {
	AmmKey     string `json:"ammKey"`
	Label      string `json:"label"`
	InputMint  string `json:"inputMint"`
	OutputMint string `json:"outputMint"`
	InAmount   string `json:"inAmount"`
	OutAmount  string `json:"outAmount"`
	FeeAmount  string `json:"feeAmount"`
	FeeMint    string `json:"feeMint"`
}

type MostReliableAmmsQuoteReport struct {
	Info map[string]string `json:"info"`
}

// PriorityLevel tunes the compute-unit price strategy for a swap
// transaction. Serialized in camelCase per the API contract.
type PriorityLevel string

const (
	PriorityLevelMedium   PriorityLevel = "medium"
	PriorityLevelHigh     PriorityLevel = "high"
	PriorityLevelVeryHigh PriorityLevel = "veryHigh"
)

type PriorityLevelWithMaxLamports struct {
	MaxLamports   uint64        `json:"maxLamports"`
	PriorityLevel PriorityLevel `json:"priorityLevel"`
}

// PrioritizationFeeLamports selects either a fixed Jito tip or a priority
// level with a lamport cap.
type PrioritizationFeeLamports struct {
	JitoTipLamports              *uint64                       `json:"jitoTipLamports,omitempty"`
	PriorityLevelWithMaxLamports *PriorityLevelWithMaxLamports `json:"priorityLevelWithMaxLamports,omitempty"`
}

// SwapRequest is the POST body for /swap/v1/swap and
// /swap/v1/swap-instructions. It embeds the previously fetched quote by
// value; quote staleness is the caller's concern.
type SwapRequest struct {
	UserPublicKey string `json:"userPublicKey"`

	WrapAndUnwrapSol              *bool                      `json:"wrapAndUnwrapSol,omitempty"`
	UseSharedAccounts             *bool                      `json:"useSharedAccounts,omitempty"`
	FeeAccount                    *string                    `json:"feeAccount,omitempty"`
	TrackingAccount               *string                    `json:"trackingAccount,omitempty"`
	PrioritizationFeeLamports     *PrioritizationFeeLamports `json:"prioritizationFeeLamports,omitempty"`
	AsLegacyTransaction           *bool                      `json:"asLegacyTransaction,omitempty"`
	DestinationTokenAccount       *string                    `json:"destinationTokenAccount,omitempty"`
	DynamicComputeUnitLimit       *bool                      `json:"dynamicComputeUnitLimit,omitempty"`
	SkipUserAccountRpcCalls       *bool                      `json:"skipUserAccountRpcCalls,omitempty"`
	DynamicSlippage               *bool                      `json:"dynamicSlippage,omitempty"`
	ComputeUnitPriceMicroLamports *uint64                    `json:"computeUnitPriceMicroLamports,omitempty"`
	BlockhashSlotsToExpiry        *uint64                    `json:"blockhashSlotsToExpiry,omitempty"`

	QuoteResponse QuoteResponse `json:"quoteResponse"`
}

// NewSwapRequest wraps a fetched quote with the submitting wallet's public
// key. The quote is copied into the request and not mutated afterwards.
func NewSwapRequest(userPublicKey string, quote QuoteResponse) *SwapRequest {
	return &SwapRequest{
		UserPublicKey: userPublicKey,
		QuoteResponse: quote,
	}
}

func (r *SwapRequest) WithWrapAndUnwrapSol(wrap bool) *SwapRequest {
	r.WrapAndUnwrapSol = &wrap
	return r
}

func (r *SwapRequest) WithUseSharedAccounts(shared bool) *SwapRequest {
	r.UseSharedAccounts = &shared
	return r
}

func (r *SwapRequest) WithFeeAccount(account string) *SwapRequest {
	r.FeeAccount = &account
	return r
}

func (r *SwapRequest) WithTrackingAccount(account string) *SwapRequest {
	r.TrackingAccount = &account
	return r
}

func (r *SwapRequest) WithPrioritizationFeeLamports(fee PrioritizationFeeLamports) *SwapRequest {
	r.PrioritizationFeeLamports = &fee
	return r
}

func (r *SwapRequest) WithAsLegacyTransaction(legacy bool) *SwapRequest {
	r.AsLegacyTransaction = &legacy
	return r
}

func (r *SwapRequest) WithDestinationTokenAccount(account string) *SwapRequest {
	r.DestinationTokenAccount = &account
	return r
}

func (r *SwapRequest) WithDynamicComputeUnitLimit(dynamic bool) *SwapRequest {
	r.DynamicComputeUnitLimit = &dynamic
	return r
}

func (r *SwapRequest) WithSkipUserAccountRpcCalls(skip bool) *SwapRequest {
	r.SkipUserAccountRpcCalls = &skip
	return r
}

func (r *SwapRequest) WithDynamicSlippage(dynamic bool) *SwapRequest {
	r.DynamicSlippage = &dynamic
	return r
}

func (r *SwapRequest) WithComputeUnitPriceMicroLamports(price uint64) *SwapRequest {
	r.ComputeUnitPriceMicroLamports = &price
	return r
}

func (r *SwapRequest) WithBlockhashSlotsToExpiry(slots uint64) *SwapRequest {
	r.BlockhashSlotsToExpiry = &slots
	return r
}

// SwapResponse carries the unsigned transaction for the external signer. The
// transaction is base64-encoded and expires after LastValidBlockHeight.
type SwapResponse struct {
	SwapTransaction           string `json:"swapTransaction"`
	LastValidBlockHeight      uint64 `json:"lastValidBlockHeight"`
	PrioritizationFeeLamports uint64 `json:"prioritizationFeeLamports,omitempty"`
}

// Instruction is a single ledger instruction in wire form: base58 program
// id, ordered account metas and base64-encoded data.
type Instruction struct {
	ProgramID string        `json:"programId"`
	Accounts  []AccountMeta `json:"accounts"`
	Data      string        `json:"data"`
}

type AccountMeta struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"isSigner"`
	IsWritable bool   `json:"isWritable"`
}

// SwapInstructions is the structured alternative to SwapResponse: the swap
// decomposed into instruction groups the caller assembles into its own
// transaction.
type SwapInstructions struct {
	OtherInstructions           []Instruction `json:"otherInstructions,omitempty"`
	ComputeBudgetInstructions   []Instruction `json:"computeBudgetInstructions"`
	SetupInstructions           []Instruction `json:"setupInstructions"`
	SwapInstruction             Instruction   `json:"swapInstruction"`
	CleanupInstruction          *Instruction  `json:"cleanupInstruction,omitempty"`
	AddressLookupTableAddresses []string      `json:"addressLookupTableAddresses"`
}
