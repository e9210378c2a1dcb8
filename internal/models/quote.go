package models

import "time"

// QuoteRecord is a row in the quote audit log. Amounts stay as the
// decimal strings the aggregator returned.
type QuoteRecord struct {
	Timestamp      time.Time `json:"timestamp"`
	InputMint      string    `json:"input_mint"`
	OutputMint     string    `json:"output_mint"`
	InAmount       string    `json:"in_amount"`
	OutAmount      string    `json:"out_amount"`
	SwapMode       string    `json:"swap_mode"`
	SlippageBps    int32     `json:"slippage_bps"`
	PriceImpactPct string    `json:"price_impact_pct"`
	RouteHops      uint8     `json:"route_hops"`
	RouteLabels    []string  `json:"route_labels"`
}

// PriceUpdate is published whenever the facade refreshes a token price.
type PriceUpdate struct {
	Mint      string    `json:"mint"`
	Price     string    `json:"price"`
	VsToken   string    `json:"vs_token"`
	Timestamp time.Time `json:"timestamp"`
}
