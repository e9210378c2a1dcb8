package jup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerOrder_Builder(t *testing.T) {
	order := NewTriggerOrder(solMint, usdcMint, testUserPubkey, testUserPubkey, 1_000_000_000, 200_000_000).
		WithExpiredAt("1748622171")

	assert.Equal(t, solMint, order.InputMint)
	assert.Equal(t, usdcMint, order.OutputMint)
	assert.Equal(t, testUserPubkey, order.Maker)
	assert.Equal(t, testUserPubkey, order.Payer)
	assert.Equal(t, "1000000000", order.Params.MakingAmount, "amounts are decimal strings on the wire")
	assert.Equal(t, "200000000", order.Params.TakingAmount)
	require.NotNil(t, order.Params.ExpiredAt)
	assert.Equal(t, "1748622171", *order.Params.ExpiredAt)
}

func TestCreateTriggerOrder(t *testing.T) {
	var gotPath string
	var gotBody map[string]json.RawMessage
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{
			"requestId": "a770f566-5b7a-4d41-9bc3-a3dd2e4fcf86",
			"transaction": "AQAAAA==",
			"order": "GgMvwcfKzfUrLLzivS4E3oThTLmbcoZ8EfhCvYQN6DBV"
		}`))
	})

	res, err := c.CreateTriggerOrder(context.Background(),
		NewTriggerOrder(solMint, usdcMint, testUserPubkey, testUserPubkey, 1_000_000_000, 200_000_000).
			WithComputeUnitPrice("auto"))
	require.NoError(t, err)

	assert.Equal(t, "/trigger/v1/createOrder", gotPath)
	assert.Contains(t, gotBody, "params")
	assert.Contains(t, gotBody, "computeUnitPrice")
	assert.NotContains(t, gotBody, "feeAccount", "unset optional should be omitted")
	assert.NotContains(t, gotBody, "wrapAndUnwrapSol")

	assert.NotEmpty(t, res.RequestID)
	assert.NotEmpty(t, res.Transaction)
	require.NotNil(t, res.Order)
	assert.Equal(t, "GgMvwcfKzfUrLLzivS4E3oThTLmbcoZ8EfhCvYQN6DBV", *res.Order)
}

func TestExecuteTriggerOrder(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{
			"requestId": "a770f566-5b7a-4d41-9bc3-a3dd2e4fcf86",
			"signature": "2Xy...sig",
			"status": "Success"
		}`))
	})

	res, err := c.ExecuteTriggerOrder(context.Background(),
		NewExecuteTriggerOrder("a770f566-5b7a-4d41-9bc3-a3dd2e4fcf86", "signedTxBase64"))
	require.NoError(t, err)

	assert.Equal(t, "/trigger/v1/execute", gotPath)
	require.NotNil(t, res.Status)
	assert.Equal(t, "Success", *res.Status)
	require.NotNil(t, res.Signature)
}

func TestCancelTriggerOrders(t *testing.T) {
	var gotSinglePath, gotBatchPath string
	var gotBatchBody map[string]json.RawMessage
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/trigger/v1/cancelOrder":
			gotSinglePath = r.URL.Path
			w.Write([]byte(`{"requestId": "r1", "transaction": "AQAAAA=="}`))
		case "/trigger/v1/cancelOrders":
			gotBatchPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBatchBody))
			w.Write([]byte(`{"requestId": "r2", "transactions": ["AQAAAA==", "AgAAAA=="]}`))
		default:
			http.NotFound(w, r)
		}
	})

	single, err := c.CancelTriggerOrder(context.Background(),
		NewCancelTriggerOrder(testUserPubkey, "orderPubkey1"))
	require.NoError(t, err)
	assert.Equal(t, "/trigger/v1/cancelOrder", gotSinglePath)
	assert.Equal(t, "AQAAAA==", single.Transaction)

	batch, err := c.CancelTriggerOrders(context.Background(),
		NewCancelTriggerOrders(testUserPubkey, []string{"orderPubkey1", "orderPubkey2"}))
	require.NoError(t, err)
	assert.Equal(t, "/trigger/v1/cancelOrders", gotBatchPath)
	assert.Contains(t, gotBatchBody, "orders")
	assert.Len(t, batch.Transactions, 2)
}

func TestGetTriggerOrders_QueryEncoding(t *testing.T) {
	q := NewGetTriggerOrders(testUserPubkey, OrderStatusActive).queryValues()
	assert.Equal(t, testUserPubkey, q.Get("user"))
	assert.Equal(t, "active", q.Get("orderStatus"), "order status is lower-case on the wire")
	for _, key := range []string{"page", "includeFailedTx", "inputMint", "outputMint"} {
		_, present := q[key]
		assert.False(t, present, "unset optional %q should be omitted", key)
	}

	q = NewGetTriggerOrders(testUserPubkey, OrderStatusHistory).
		WithPage(3).
		WithIncludeFailedTx(true).
		WithInputMint(solMint).
		queryValues()
	assert.Equal(t, "history", q.Get("orderStatus"))
	assert.Equal(t, "3", q.Get("page"))
	assert.Equal(t, "true", q.Get("includeFailedTx"))
	assert.Equal(t, solMint, q.Get("inputMint"))
}

func TestGetTriggerOrders(t *testing.T) {
	var gotQuery url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{
			"user": "EXBdeRCdiNChKyD7akt64n9HgSXEpUtpPEhmbnm4L6iH",
			"orderStatus": "active",
			"orders": [
				{
					"userPubkey": "EXBdeRCdiNChKyD7akt64n9HgSXEpUtpPEhmbnm4L6iH",
					"orderKey": "GgMvwcfKzfUrLLzivS4E3oThTLmbcoZ8EfhCvYQN6DBV",
					"inputMint": "So11111111111111111111111111111111111111112",
					"outputMint": "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
					"makingAmount": "1000000000",
					"takingAmount": "200000000",
					"remainingMakingAmount": "1000000000",
					"remainingTakingAmount": "200000000",
					"status": "Open",
					"createdAt": "2025-05-28T14:22:51Z",
					"updatedAt": "2025-05-28T14:22:51Z",
					"openTx": "3gT...tx",
					"closeTx": "",
					"trades": []
				}
			],
			"page": 1,
			"totalPages": 1
		}`))
	})

	res, err := c.GetTriggerOrders(context.Background(),
		NewGetTriggerOrders(testUserPubkey, OrderStatusActive))
	require.NoError(t, err)

	assert.Equal(t, "active", gotQuery.Get("orderStatus"))
	assert.Equal(t, OrderStatusActive, res.OrderStatus)
	require.Len(t, res.Orders, 1)
	assert.Equal(t, "1000000000", res.Orders[0].MakingAmount)
	assert.Nil(t, res.Orders[0].ExpiredAt)
	assert.Equal(t, uint64(1), res.TotalPages)
}
