package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/thrishank/jup-ag-sdk/internal/models"
	"github.com/thrishank/jup-ag-sdk/jup"
)

func splitCSVQuery(values []string) []string {
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		parts := strings.Split(v, ",")
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// Quote proxies a quote request to the aggregator and, when the audit log
// is configured, records the returned route.
func (h *Handlers) Quote(c echo.Context) error {
	inputMint := strings.TrimSpace(c.QueryParam("inputMint"))
	outputMint := strings.TrimSpace(c.QueryParam("outputMint"))
	amountStr := strings.TrimSpace(c.QueryParam("amount"))

	if inputMint == "" {
		return h.err(c, http.StatusBadRequest, "invalid inputMint", map[string]any{"inputMint": "required"})
	}
	if outputMint == "" {
		return h.err(c, http.StatusBadRequest, "invalid outputMint", map[string]any{"outputMint": "required"})
	}
	if amountStr == "" {
		return h.err(c, http.StatusBadRequest, "invalid amount", map[string]any{"amount": "required"})
	}
	amount, err := strconv.ParseUint(amountStr, 10, 64)
	if err != nil {
		return h.err(c, http.StatusBadRequest, "invalid amount", map[string]any{"amount": "must be uint64"})
	}

	req := jup.NewQuoteRequest(inputMint, outputMint, amount)

	if v := strings.TrimSpace(c.QueryParam("slippageBps")); v != "" {
		n, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return h.err(c, http.StatusBadRequest, "invalid slippageBps", map[string]any{"slippageBps": "must be uint16"})
		}
		req.WithSlippageBps(uint16(n))
	}

	switch mode := strings.TrimSpace(c.QueryParam("swapMode")); mode {
	case "":
	case string(jup.SwapModeExactIn):
		req.WithSwapMode(jup.SwapModeExactIn)
	case string(jup.SwapModeExactOut):
		req.WithSwapMode(jup.SwapModeExactOut)
	default:
		return h.err(c, http.StatusBadRequest, "invalid swapMode", map[string]any{"swapMode": "must be ExactIn or ExactOut"})
	}

	if v := strings.TrimSpace(c.QueryParam("restrictIntermediateTokens")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return h.err(c, http.StatusBadRequest, "invalid restrictIntermediateTokens", map[string]any{"restrictIntermediateTokens": "must be boolean"})
		}
		req.WithRestrictIntermediateTokens(b)
	}

	if v := strings.TrimSpace(c.QueryParam("onlyDirectRoutes")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return h.err(c, http.StatusBadRequest, "invalid onlyDirectRoutes", map[string]any{"onlyDirectRoutes": "must be boolean"})
		}
		req.WithOnlyDirectRoutes(b)
	}

	if v := strings.TrimSpace(c.QueryParam("asLegacyTransaction")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return h.err(c, http.StatusBadRequest, "invalid asLegacyTransaction", map[string]any{"asLegacyTransaction": "must be boolean"})
		}
		req.WithAsLegacyTransaction(b)
	}

	if v := strings.TrimSpace(c.QueryParam("platformFeeBps")); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return h.err(c, http.StatusBadRequest, "invalid platformFeeBps", map[string]any{"platformFeeBps": "must be uint64"})
		}
		req.WithPlatformFeeBps(n)
	}

	if v := strings.TrimSpace(c.QueryParam("maxAccounts")); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return h.err(c, http.StatusBadRequest, "invalid maxAccounts", map[string]any{"maxAccounts": "must be uint64"})
		}
		req.WithMaxAccounts(n)
	}

	if v := strings.TrimSpace(c.QueryParam("dynamicSlippage")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return h.err(c, http.StatusBadRequest, "invalid dynamicSlippage", map[string]any{"dynamicSlippage": "must be boolean"})
		}
		req.WithDynamicSlippage(b)
	}

	if dexes := splitCSVQuery(c.QueryParams()["dexes"]); len(dexes) > 0 {
		req.WithDexes(dexes)
	}
	if excluded := splitCSVQuery(c.QueryParams()["excludeDexes"]); len(excluded) > 0 {
		req.WithExcludeDexes(excluded)
	}

	ctx, cancel := h.withTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	out, err := h.Jup.GetQuote(ctx, req)
	if err != nil {
		return h.upstreamError(c, err)
	}

	if h.Quotes != nil {
		h.recordQuote(out)
	}

	return c.JSON(http.StatusOK, out)
}

// recordQuote writes the quote to the audit log without blocking the
// response path. Failures are logged, never surfaced to the caller.
func (h *Handlers) recordQuote(quote *jup.QuoteResponse) {
	labels := make([]string, 0, len(quote.RoutePlan))
	for _, hop := range quote.RoutePlan {
		labels = append(labels, hop.SwapInfo.Label)
	}

	record := &models.QuoteRecord{
		Timestamp:      time.Now().UTC(),
		InputMint:      quote.InputMint,
		OutputMint:     quote.OutputMint,
		InAmount:       quote.InAmount,
		OutAmount:      quote.OutAmount,
		SwapMode:       string(quote.SwapMode),
		SlippageBps:    quote.SlippageBps,
		PriceImpactPct: quote.PriceImpactPct,
		RouteHops:      uint8(len(quote.RoutePlan)),
		RouteLabels:    labels,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.Quotes.InsertQuote(ctx, record); err != nil {
			h.Logger.WithError(err).Warn("quote audit insert failed")
		}
	}()
}
