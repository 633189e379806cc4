package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "EUR"

// Order is the new-order buffer a retailer fills in before submitting it.
// Items are passed through to the backend untouched.
type Order struct {
	OrderNumber string
	TotalAmount decimal.Decimal
	Currency    string
	Items       []json.RawMessage
	Notes       string
}

func NewOrder() Order {
	return Order{
		TotalAmount: decimal.Zero,
		Currency:    DefaultCurrency,
		Items:       []json.RawMessage{},
	}
}

// Clone returns a copy that shares no item slice with o.
func (o Order) Clone() Order {
	items := make([]json.RawMessage, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

// OrderSummary is one entry of the backend's order list.
type OrderSummary struct {
	ID          string
	OrderNumber string
	Status      string
	TotalAmount decimal.Decimal
	Currency    string
}

const (
	OrderStatusPending = "pending"
)
