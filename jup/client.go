package jup

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the free-tier Jupiter API host.
const DefaultBaseURL = "https://lite-api.jup.ag"

// Client talks to the Jupiter aggregator APIs (Swap, Ultra, Trigger,
// Recurring, Price). It holds no per-call state and is safe for concurrent
// use once constructed.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Logger  *logrus.Logger
}

// NewClient returns a Client for the given base URL, typically
// "https://lite-api.jup.ag" or "https://api.jup.ag" for paid tiers. An empty
// base URL falls back to DefaultBaseURL.
func NewClient(baseURL string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithTimeout overrides the default 30-second request timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.HTTP.Timeout = d
	return c
}

// WithLogger attaches a logger used for debug-level request tracing.
func (c *Client) WithLogger(logger *logrus.Logger) *Client {
	c.Logger = logger
	return c
}

func (c *Client) debugf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Debugf(format, args...)
	}
}

// getJSON performs a GET against path (with optional query), classifies the
// outcome and decodes a 2xx body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &ConfigurationError{Msg: err.Error()}
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

// postJSON marshals body, POSTs it to path and decodes a 2xx response into
// out.
func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &ConfigurationError{Msg: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &ConfigurationError{Msg: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// do issues the request and applies the error taxonomy: transport failure,
// non-2xx status, decode failure. Exactly one attempt, no retries.
func (c *Client) do(req *http.Request, out any) error {
	res, err := c.HTTP.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer res.Body.Close()

	c.debugf("jup: %s %s -> %d", req.Method, req.URL.Path, res.StatusCode)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, readErr := io.ReadAll(res.Body)
		text := strings.TrimSpace(string(body))
		if readErr != nil {
			text = bodyReadPlaceholder
		}
		return &ProtocolError{StatusCode: res.StatusCode, Body: text}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return &DecodingError{Msg: err.Error()}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodingError{Msg: err.Error()}
	}
	return nil
}
