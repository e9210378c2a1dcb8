package jup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	solMint  = "So11111111111111111111111111111111111111112"
	usdcMint = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	jupMint  = "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN"

	testUserPubkey = "EXBdeRCdiNChKyD7akt64n9HgSXEpUtpPEhmbnm4L6iH"
	testAmount     = uint64(1_000_000_000)
)

// newTestClient spins up an httptest server for handler and returns a Client
// pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestNewClient_BaseURL(t *testing.T) {
	c := NewClient("https://lite-api.jup.ag/")
	assert.Equal(t, "https://lite-api.jup.ag", c.BaseURL, "trailing slash should be trimmed")

	c = NewClient("  https://api.jup.ag  ")
	assert.Equal(t, "https://api.jup.ag", c.BaseURL)

	c = NewClient("")
	assert.Equal(t, DefaultBaseURL, c.BaseURL, "empty base url should fall back to the default")
}

func TestClient_WithTimeout(t *testing.T) {
	c := NewClient("")
	assert.Equal(t, 30*time.Second, c.HTTP.Timeout)

	same := c.WithTimeout(5 * time.Second)
	assert.Same(t, c, same, "builder must return the same client")
	assert.Equal(t, 5*time.Second, c.HTTP.Timeout)
}

func TestClient_RequestHeaders(t *testing.T) {
	var gotAccept, gotContentType string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	})

	_, err := c.Shield(context.Background(), []string{usdcMint})
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotAccept)
	assert.Empty(t, gotContentType, "GET should not carry a content type")

	_, err = c.UltraExecuteOrder(context.Background(), NewUltraExecuteOrderRequest("tx", "id"))
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClient_NonSuccessStatusIsProtocolError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid mint"}`))
	})

	_, err := c.GetQuote(context.Background(), NewQuoteRequest(solMint, usdcMint, testAmount))
	require.Error(t, err)

	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr, "non-2xx must classify as ProtocolError, not a decode failure")
	assert.Equal(t, http.StatusBadRequest, protoErr.StatusCode)
	assert.Equal(t, `{"error":"invalid mint"}`, protoErr.Body)
	assert.Contains(t, protoErr.Error(), "400")
}

func TestClient_UnreadableErrorBodyUsesPlaceholder(t *testing.T) {
	// Advertise more bytes than are written so the client's body read fails
	// mid-stream once the handler returns.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1000")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("partial"))
	})

	_, err := c.GetQuote(context.Background(), NewQuoteRequest(solMint, usdcMint, testAmount))
	require.Error(t, err)

	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr, "a non-2xx with an unreadable body is still a ProtocolError")
	assert.Equal(t, http.StatusBadRequest, protoErr.StatusCode)
	assert.Equal(t, "unable to read error response body", protoErr.Body)
}

func TestClient_InvalidJSONIsDecodingError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	})

	_, err := c.GetQuote(context.Background(), NewQuoteRequest(solMint, usdcMint, testAmount))
	require.Error(t, err)

	var decErr *DecodingError
	require.ErrorAs(t, err, &decErr)
	assert.NotEmpty(t, decErr.Msg, "decoding error should carry the parser message")
}

func TestClient_ConnectionFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close() // nothing is listening anymore

	c := NewClient(addr)
	_, err := c.Routers(context.Background())
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Error(t, transportErr.Unwrap())
}

func TestClient_CancelledContextIsTransportError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Routers(ctx)
	require.Error(t, err)

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestClient_SingleAttemptPerCall(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Routers(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, calls, "the client must not retry on failure")
}
