package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thrishank/jup-ag-sdk/jup"
)

// NotFoundJSON returns a custom HTTP error handler that returns JSON responses
// This ensures all errors (including 404s) have consistent JSON format
func NotFoundJSON() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		// Don't send response if already committed
		if c.Response().Committed {
			return
		}

		// Handle Echo HTTP errors (like 404, 400, etc.)
		if he, ok := err.(*echo.HTTPError); ok {
			_ = c.JSON(he.Code, ErrorResponse{
				Error: http.StatusText(he.Code),
				Code:  he.Code,
			})
			return
		}

		// Handle all other errors as internal server error
		_ = c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "internal server error",
			Code:  http.StatusInternalServerError,
		})
	}
}

// upstreamError maps aggregator client failures to facade responses.
// Upstream rejections keep their original status code; connectivity and
// decode failures surface as 502, bad request construction as 400.
func (h *Handlers) upstreamError(c echo.Context, err error) error {
	var protoErr *jup.ProtocolError
	if errors.As(err, &protoErr) {
		return h.err(c, protoErr.StatusCode, "upstream rejected request", map[string]any{"body": protoErr.Body})
	}

	var transportErr *jup.TransportError
	if errors.As(err, &transportErr) {
		return h.err(c, http.StatusBadGateway, "upstream unreachable", map[string]any{"err": transportErr.Error()})
	}

	var decodeErr *jup.DecodingError
	if errors.As(err, &decodeErr) {
		return h.err(c, http.StatusBadGateway, "malformed upstream response", map[string]any{"err": decodeErr.Error()})
	}

	var cfgErr *jup.ConfigurationError
	if errors.As(err, &cfgErr) {
		return h.err(c, http.StatusBadRequest, "invalid request", map[string]any{"err": cfgErr.Error()})
	}

	return h.err(c, http.StatusInternalServerError, "request failed", map[string]any{"err": err.Error()})
}
