package jup

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// TokenPriceRequest holds the query parameters for GET /price/v2. Prices
// are denominated in USD unless VsToken is set.
type TokenPriceRequest struct {
	TokenMints []string // sent as the comma-joined "ids" parameter

	VsToken       *string
	ShowExtraInfo *bool // cannot be combined with VsToken
}

func NewTokenPriceRequest(tokenMints []string) *TokenPriceRequest {
	return &TokenPriceRequest{TokenMints: tokenMints}
}

// WithVsToken denominates prices in the given mint instead of USD.
func (r *TokenPriceRequest) WithVsToken(vsToken string) *TokenPriceRequest {
	r.VsToken = &vsToken
	return r
}

func (r *TokenPriceRequest) WithShowExtraInfo(show bool) *TokenPriceRequest {
	r.ShowExtraInfo = &show
	return r
}

func (r *TokenPriceRequest) queryValues() url.Values {
	q := url.Values{}
	q.Set("ids", strings.Join(r.TokenMints, ","))

	if r.VsToken != nil {
		q.Set("vsToken", *r.VsToken)
	}
	if r.ShowExtraInfo != nil {
		q.Set("showExtraInfo", fmt.Sprintf("%t", *r.ShowExtraInfo))
	}
	return q
}

// TokenPrice is the price entry for one mint. Price is a decimal string;
// numeric interpretation is the caller's concern.
type TokenPrice struct {
	ID        string          `json:"id"`
	DataType  string          `json:"type"`
	Price     string          `json:"price"`
	ExtraInfo json.RawMessage `json:"extraInfo,omitempty"`
}

// TokenPriceResponse maps each requested mint to its price entry.
type TokenPriceResponse struct {
	Data      map[string]TokenPrice `json:"data"`
	TimeTaken float64               `json:"timeTaken"`
}
