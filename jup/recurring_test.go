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

func TestRecurringOrderParams_MarshalTimeVariant(t *testing.T) {
	order := NewTimeRecurringOrder(testUserPubkey, solMint, usdcMint, 100_000_000, 10, 86_400).
		WithMinPrice(120.5).
		WithStartAt(1_750_000_000)

	body, err := json.Marshal(order)
	require.NoError(t, err)

	var raw struct {
		Params map[string]json.RawMessage `json:"params"`
	}
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Contains(t, raw.Params, "time", "time variant must emit the time key")
	assert.NotContains(t, raw.Params, "price")

	var timeParams TimeParams
	require.NoError(t, json.Unmarshal(raw.Params["time"], &timeParams))
	assert.Equal(t, uint64(100_000_000), timeParams.InAmount)
	assert.Equal(t, uint64(10), timeParams.NumberOfOrders)
	require.NotNil(t, timeParams.MinPrice)
	assert.Equal(t, 120.5, *timeParams.MinPrice)
	assert.Nil(t, timeParams.MaxPrice, "unset optional stays omitted")
	require.NotNil(t, timeParams.StartAt)
	assert.Equal(t, uint64(1_750_000_000), *timeParams.StartAt)
}

func TestRecurringOrderParams_MarshalPriceVariant(t *testing.T) {
	order := NewPriceRecurringOrder(testUserPubkey, solMint, usdcMint, 1_000_000_000, 50_000_000, 604_800)

	body, err := json.Marshal(order)
	require.NoError(t, err)

	var raw struct {
		Params map[string]json.RawMessage `json:"params"`
	}
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Contains(t, raw.Params, "price")
	assert.NotContains(t, raw.Params, "time")
}

func TestRecurringOrderParams_MarshalEmptyUnionFails(t *testing.T) {
	_, err := json.Marshal(RecurringOrderParams{})
	require.Error(t, err, "a params object with no variant set must not reach the wire")
}

func TestCreateRecurringOrder_EmptyUnionIsConfigurationError(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	_, err := c.CreateRecurringOrder(context.Background(), &CreateRecurringOrderRequest{
		User:       testUserPubkey,
		InputMint:  solMint,
		OutputMint: usdcMint,
	})
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr, "an empty params union must fail before the request is built")
	assert.Contains(t, cfgErr.Msg, "neither time nor price")
	assert.Zero(t, calls, "nothing may reach the wire when the params union is empty")
}

func TestRecurringOrderParams_Unmarshal(t *testing.T) {
	var params RecurringOrderParams
	require.NoError(t, json.Unmarshal([]byte(`{"time": {"inAmount": 5, "numberOfOrders": 2, "interval": 3600}}`), &params))
	require.NotNil(t, params.Time)
	assert.Nil(t, params.Price)
	assert.Equal(t, uint64(5), params.Time.InAmount)

	require.NoError(t, json.Unmarshal([]byte(`{"price": {"depositAmount": 9, "incrementUsdcValue": 1, "interval": 60}}`), &params))
	require.NotNil(t, params.Price)
	assert.Nil(t, params.Time, "decoding the other variant must clear the previous one")

	err := json.Unmarshal([]byte(`{"neither": {}}`), &params)
	require.Error(t, err, "an object matching neither variant must fail to decode")
}

func TestRecurringOrder_MisappliedPriceBoundsAreNoOps(t *testing.T) {
	order := NewPriceRecurringOrder(testUserPubkey, solMint, usdcMint, 1_000_000_000, 50_000_000, 604_800).
		WithMinPrice(10).
		WithMaxPrice(20)

	require.NotNil(t, order.Params.Price)
	assert.Nil(t, order.Params.Price.StartAt)
	// price bounds only exist on the time variant; applying them to a price
	// order changes nothing
	body, err := json.Marshal(order)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "minPrice")
	assert.NotContains(t, string(body), "maxPrice")
}

func TestCreateRecurringOrder(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"requestId": "rec-1", "transaction": "AQAAAA=="}`))
	})

	res, err := c.CreateRecurringOrder(context.Background(),
		NewTimeRecurringOrder(testUserPubkey, solMint, usdcMint, 100_000_000, 10, 86_400))
	require.NoError(t, err)

	assert.Equal(t, "/recurring/v1/createOrder", gotPath)
	assert.Equal(t, "rec-1", res.RequestID)
	assert.Equal(t, "AQAAAA==", res.Transaction)
}

func TestExecuteRecurringOrder(t *testing.T) {
	var gotBody map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"signature": "4vJ...sig", "status": "Success"}`))
	})

	res, err := c.ExecuteRecurringOrder(context.Background(),
		NewExecuteRecurringRequest("rec-1", "signedTxBase64"))
	require.NoError(t, err)

	assert.Equal(t, "rec-1", gotBody["requestId"])
	assert.Equal(t, "signedTxBase64", gotBody["signedTransaction"])
	assert.Equal(t, "Success", res.Status)
}

func TestCancelAndPriceMutations(t *testing.T) {
	paths := map[string]bool{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths[r.URL.Path] = true
		w.Write([]byte(`{"requestId": "rec-2", "transaction": "AQAAAA=="}`))
	})

	ctx := context.Background()

	_, err := c.CancelRecurringOrder(ctx,
		NewCancelRecurringOrder("orderPubkey", RecurringOrderTypeTime, testUserPubkey))
	require.NoError(t, err)

	_, err = c.PriceDeposit(ctx, &PriceDepositRequest{Amount: 1_000_000, Order: "orderPubkey", User: testUserPubkey})
	require.NoError(t, err)

	_, err = c.PriceWithdraw(ctx, &PriceWithdrawRequest{Amount: 1_000_000, Order: "orderPubkey", User: testUserPubkey, InputOrOutput: "In"})
	require.NoError(t, err)

	assert.True(t, paths["/recurring/v1/cancelOrder"])
	assert.True(t, paths["/recurring/v1/priceDeposit"])
	assert.True(t, paths["/recurring/v1/priceWithdraw"])
}

func TestGetRecurringOrders(t *testing.T) {
	var gotQuery url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{
			"orderStatus": "active",
			"page": 1,
			"totalPages": 1,
			"user": "EXBdeRCdiNChKyD7akt64n9HgSXEpUtpPEhmbnm4L6iH",
			"time": [{"orderKey": "abc"}]
		}`))
	})

	res, err := c.GetRecurringOrders(context.Background(),
		NewGetRecurringOrders(RecurringOrderTypeTime, OrderStatusActive, testUserPubkey).
			WithMint(solMint))
	require.NoError(t, err)

	assert.Equal(t, "time", gotQuery.Get("recurringType"), "recurring type is lower-case on the wire")
	assert.Equal(t, "active", gotQuery.Get("orderStatus"))
	assert.Equal(t, "1", gotQuery.Get("page"))
	assert.Equal(t, "false", gotQuery.Get("includeFailedTx"))
	assert.Equal(t, solMint, gotQuery.Get("mint"))

	require.Len(t, res.Time, 1)
	assert.Empty(t, res.Price)
}
