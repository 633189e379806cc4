package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewOrder_Defaults(t *testing.T) {
	order := NewOrder()

	assert.Empty(t, order.OrderNumber)
	assert.True(t, order.TotalAmount.IsZero())
	assert.Equal(t, "EUR", order.Currency)
	assert.NotNil(t, order.Items)
	assert.Len(t, order.Items, 0)
	assert.Empty(t, order.Notes)
}

func TestOrder_CloneDoesNotShareItems(t *testing.T) {
	order := NewOrder()
	order.Items = append(order.Items, json.RawMessage(`{"sku":"A"}`))
	order.TotalAmount = decimal.RequireFromString("12.50")

	clone := order.Clone()
	clone.Items[0] = json.RawMessage(`{"sku":"B"}`)

	assert.JSONEq(t, `{"sku":"A"}`, string(order.Items[0]))
	assert.True(t, clone.TotalAmount.Equal(order.TotalAmount))
}

func TestParseStage(t *testing.T) {
	stage, err := ParseStage("Register")
	assert.NoError(t, err)
	assert.Equal(t, StageRegister, stage)

	_, err = ParseStage("signup")
	assert.Error(t, err)

	assert.Equal(t, StageLogin, NewAuthState().Stage)
}
