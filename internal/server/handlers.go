package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/thrishank/jup-ag-sdk/internal/cache"
	"github.com/thrishank/jup-ag-sdk/internal/constants"
	"github.com/thrishank/jup-ag-sdk/internal/models"
	"github.com/thrishank/jup-ag-sdk/internal/storage"
	"github.com/thrishank/jup-ag-sdk/jup"
)

// Handlers contains all dependencies for API endpoint handlers
type Handlers struct {
	Jup     *jup.Client        // Aggregator API client
	Cache   storage.PriceCache // Redis-backed price cache (optional)
	PubSub  *cache.PubSubManager
	Quotes  storage.QuoteStore // Quote audit log (optional)
	DevMode bool               // Enable detailed error responses in development
	Logger  *logrus.Logger     // Structured logger
}

// err returns a standardized JSON error response
// In dev mode, includes additional error details for debugging
func (h *Handlers) err(c echo.Context, code int, msg string, details any) error {
	resp := ErrorResponse{Error: msg, Code: code}
	if h.DevMode && details != nil {
		resp.Details = details
	}
	return c.JSON(code, resp)
}

// withTimeout creates a context with timeout, defaulting to 10 seconds if duration <= 0
func (h *Handlers) withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = 10 * time.Second
	}
	return context.WithTimeout(ctx, d)
}

// Health returns a simple health check endpoint
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{OK: true})
}

// Price returns the USDC price for a mint, serving from the cache when a
// fresh entry exists and refreshing it on a miss.
func (h *Handlers) Price(c echo.Context) error {
	mint := strings.TrimSpace(c.Param("mint"))
	if mint == "" {
		return h.err(c, http.StatusBadRequest, "invalid mint", nil)
	}

	ctx, cancel := h.withTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if h.Cache != nil {
		cached, ok, err := h.Cache.GetPrice(ctx, mint)
		if err != nil {
			h.Logger.WithError(err).Warn("price cache lookup failed")
		} else if ok {
			return c.JSON(http.StatusOK, PriceResponse{
				Mint:    mint,
				Price:   cached.Price,
				VsToken: cached.VsToken,
				Cached:  true,
			})
		}
	}

	out, err := h.Jup.GetTokenPrice(ctx, jup.NewTokenPriceRequest([]string{mint}))
	if err != nil {
		return h.upstreamError(c, err)
	}

	entry, ok := out.Data[mint]
	if !ok {
		return h.err(c, http.StatusNotFound, "no price for mint", nil)
	}

	update := models.PriceUpdate{
		Mint:      mint,
		Price:     entry.Price,
		VsToken:   constants.MintUSDC,
		Timestamp: time.Now().UTC(),
	}

	if h.Cache != nil {
		if err := h.Cache.SetPrice(ctx, update); err != nil {
			h.Logger.WithError(err).Warn("price cache store failed")
		}
	}
	if h.PubSub != nil {
		if err := h.PubSub.PublishPrice(ctx, update); err != nil {
			h.Logger.WithError(err).Warn("price publish failed")
		}
	}

	return c.JSON(http.StatusOK, PriceResponse{
		Mint:    mint,
		Price:   entry.Price,
		VsToken: constants.MintUSDC,
		Cached:  false,
	})
}

// Shield returns token safety warnings for a comma-separated list of mints
func (h *Handlers) Shield(c echo.Context) error {
	mints := splitCSVQuery(c.QueryParams()["mints"])
	if len(mints) == 0 {
		return h.err(c, http.StatusBadRequest, "invalid mints", map[string]any{"mints": "required"})
	}

	ctx, cancel := h.withTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	out, err := h.Jup.Shield(ctx, mints)
	if err != nil {
		return h.upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Routers returns the list of available order routers
func (h *Handlers) Routers(c echo.Context) error {
	ctx, cancel := h.withTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	out, err := h.Jup.Routers(ctx)
	if err != nil {
		return h.upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": out})
}
