package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lastdrop/internal/domain"
	apperrors "lastdrop/internal/errors"
	"lastdrop/internal/testutil"
)

func newTestClient(t *testing.T) (*Client, *testutil.FakeBackend) {
	fake := testutil.NewFakeBackend(t)
	return NewClient(fake.URL()+"/", fake.Client(), zap.NewNop()), fake
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c := NewClient("http://localhost:8000/", nil, zap.NewNop())

	assert.Equal(t, "http://localhost:8000", c.BaseURL())
	assert.Equal(t, http.DefaultClient, c.httpClient)
}

func TestSubmitLead_SendsRecordAsJSON(t *testing.T) {
	c, fake := newTestClient(t)
	fake.Respond(http.MethodPost, "/api/leads", http.StatusCreated, `{}`)

	lead := domain.LeadRecord{
		Name:    "Ana",
		Email:   "ana@shop.example",
		Role:    domain.RoleRetailer,
		Company: "Shop",
		Consent: true,
	}
	require.NoError(t, c.SubmitLead(context.Background(), lead))

	reqs := fake.Matching(http.MethodPost, "/api/leads")
	require.Len(t, reqs, 1)
	assert.Equal(t, "application/json", reqs[0].ContentType)
	assert.Empty(t, reqs[0].Authorization)
	_, err := uuid.Parse(reqs[0].RequestID)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ana","email":"ana@shop.example","role":"retailer","company":"Shop","message":"","consent":true}`, string(reqs[0].Body))
}

func TestSubmitLead_Non2xxIsRequestError(t *testing.T) {
	c, fake := newTestClient(t)
	fake.Respond(http.MethodPost, "/api/leads", http.StatusServiceUnavailable, `{"detail":"down"}`)

	err := c.SubmitLead(context.Background(), domain.NewLeadRecord())
	require.Error(t, err)

	re, ok := apperrors.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, re.StatusCode)
	assert.False(t, re.IsNetwork())
}

func TestSubmitLead_NetworkFailure(t *testing.T) {
	c, fake := newTestClient(t)
	fake.Close()

	err := c.SubmitLead(context.Background(), domain.NewLeadRecord())

	re, ok := apperrors.IsRequestError(err)
	require.True(t, ok)
	assert.True(t, re.IsNetwork())
}

func TestRegister_OmitsEmptyOptionalFields(t *testing.T) {
	c, fake := newTestClient(t)
	fake.Respond(http.MethodPost, "/api/auth/register", http.StatusOK, `{}`)

	err := c.Register(context.Background(), Registration{
		Credentials: Credentials{Email: "r@shop.example", Password: "pw"},
		ContactName: "Rémi",
	})
	require.NoError(t, err)

	reqs := fake.Matching(http.MethodPost, "/api/auth/register")
	require.Len(t, reqs, 1)
	assert.JSONEq(t, `{"email":"r@shop.example","password":"pw","contact_name":"Rémi"}`, string(reqs[0].Body))
}

func TestLogin_ReturnsToken(t *testing.T) {
	c, fake := newTestClient(t)
	fake.Respond(http.MethodPost, "/api/auth/login", http.StatusOK, `{"token":"abc"}`)

	token, err := c.Login(context.Background(), Credentials{Email: "r@shop.example", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	reqs := fake.Matching(http.MethodPost, "/api/auth/login")
	require.Len(t, reqs, 1)
	assert.JSONEq(t, `{"email":"r@shop.example","password":"pw"}`, string(reqs[0].Body))
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"detail":"bad"}`},
		{"missing token", http.StatusOK, `{}`},
		{"not json", http.StatusOK, `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, fake := newTestClient(t)
			fake.Respond(http.MethodPost, "/api/auth/login", tt.status, tt.body)

			token, err := c.Login(context.Background(), Credentials{Email: "a", Password: "b"})
			assert.Empty(t, token)
			_, ok := apperrors.IsRequestError(err)
			assert.True(t, ok)
		})
	}
}

func TestListOrders_SendsBearerAndMapsEntries(t *testing.T) {
	c, fake := newTestClient(t)
	fake.Respond(http.MethodGet, "/api/orders", http.StatusOK,
		`{"orders":[{"_id":"65f0","order_number":"A1","status":"pending","total_amount":10,"currency":"EUR"}]}`)

	orders, err := c.ListOrders(context.Background(), "abc")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	assert.Equal(t, "65f0", orders[0].ID)
	assert.Equal(t, "A1", orders[0].OrderNumber)
	assert.Equal(t, "pending", orders[0].Status)
	assert.True(t, orders[0].TotalAmount.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "EUR", orders[0].Currency)

	reqs := fake.Matching(http.MethodGet, "/api/orders")
	require.Len(t, reqs, 1)
	assert.Equal(t, "Bearer abc", reqs[0].Authorization)
}

func TestListOrders_AbsentOrMalformedFieldIsEmpty(t *testing.T) {
	for _, body := range []string{`{}`, `{"orders":null}`, `{"orders":"x"}`} {
		c, fake := newTestClient(t)
		fake.Respond(http.MethodGet, "/api/orders", http.StatusOK, body)

		orders, err := c.ListOrders(context.Background(), "abc")
		require.NoError(t, err, body)
		assert.NotNil(t, orders, body)
		assert.Len(t, orders, 0, body)
	}
}

func TestListOrders_KeepsWellFormedEntries(t *testing.T) {
	c, fake := newTestClient(t)
	fake.Respond(http.MethodGet, "/api/orders", http.StatusOK, `{"orders":[
		{"_id":"a","order_number":"A1","status":"pending","total_amount":10,"currency":"EUR"},
		{"_id":{"$oid":"65ab"},"order_number":"A2","status":"shipped","total_amount":"12.5","currency":"EUR"},
		{"_id":"c","order_number":"A3","status":"pending","total_amount":"n/a","currency":"EUR"},
		{"id":[1],"order_number":7,"status":"pending","total_amount":{},"currency":"EUR"},
		"not an order",
		null
	]}`)

	orders, err := c.ListOrders(context.Background(), "abc")
	require.NoError(t, err)
	require.Len(t, orders, 4)

	assert.Equal(t, "a", orders[0].ID)
	assert.Equal(t, "A1", orders[0].OrderNumber)
	assert.True(t, orders[0].TotalAmount.Equal(decimal.NewFromInt(10)))

	assert.Equal(t, "65ab", orders[1].ID)
	assert.True(t, orders[1].TotalAmount.Equal(decimal.RequireFromString("12.5")))

	assert.Equal(t, "A3", orders[2].OrderNumber)
	assert.True(t, orders[2].TotalAmount.IsZero())

	assert.Empty(t, orders[3].ID)
	assert.Empty(t, orders[3].OrderNumber)
	assert.Equal(t, "pending", orders[3].Status)
	assert.True(t, orders[3].TotalAmount.IsZero())
}

func TestListOrders_MalformedBodyIsError(t *testing.T) {
	c, fake := newTestClient(t)
	fake.Respond(http.MethodGet, "/api/orders", http.StatusOK, `not json`)

	orders, err := c.ListOrders(context.Background(), "abc")
	assert.Nil(t, orders)
	_, ok := apperrors.IsRequestError(err)
	assert.True(t, ok)
}

func TestCreateOrder_EncodesOrder(t *testing.T) {
	c, fake := newTestClient(t)
	fake.Respond(http.MethodPost, "/api/orders", http.StatusCreated, `{"id":"1"}`)

	order := domain.NewOrder()
	order.OrderNumber = "B7"
	order.TotalAmount = decimal.RequireFromString("19.90")
	order.Items = append(order.Items, json.RawMessage(`{"sku":"X","qty":2}`))
	order.Notes = "fragile"

	require.NoError(t, c.CreateOrder(context.Background(), "abc", order))

	reqs := fake.Matching(http.MethodPost, "/api/orders")
	require.Len(t, reqs, 1)
	assert.Equal(t, "Bearer abc", reqs[0].Authorization)
	assert.JSONEq(t,
		`{"order_number":"B7","total_amount":19.9,"currency":"EUR","items":[{"sku":"X","qty":2}],"notes":"fragile"}`,
		string(reqs[0].Body))
}

func TestCreateOrder_NilItemsEncodeAsEmptyArray(t *testing.T) {
	c, fake := newTestClient(t)
	fake.Respond(http.MethodPost, "/api/orders", http.StatusOK, `{}`)

	require.NoError(t, c.CreateOrder(context.Background(), "abc", domain.Order{OrderNumber: "C1", Currency: "EUR"}))

	reqs := fake.Matching(http.MethodPost, "/api/orders")
	require.Len(t, reqs, 1)
	assert.JSONEq(t, `{"order_number":"C1","total_amount":0,"currency":"EUR","items":[],"notes":""}`, string(reqs[0].Body))
}
