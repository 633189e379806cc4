package dto

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Amounts travel as JSON numbers; json.Number keeps them exact on both sides.

type CreateOrderRequest struct {
	OrderNumber string            `json:"order_number"`
	TotalAmount json.Number       `json:"total_amount"`
	Currency    string            `json:"currency"`
	Items       []json.RawMessage `json:"items"`
	Notes       string            `json:"notes"`
}

// OrderListResponse keeps orders raw so a malformed field can be told apart
// from a malformed body.
type OrderListResponse struct {
	Orders json.RawMessage `json:"orders"`
}

type OrderSummaryDTO struct {
	ID          FlexibleID  `json:"id,omitempty"`
	LegacyID    FlexibleID  `json:"_id,omitempty"`
	OrderNumber string      `json:"order_number"`
	Status      string      `json:"status"`
	TotalAmount json.Number `json:"total_amount"`
	Currency    string      `json:"currency"`
}

type OrderListPayload struct {
	Orders []OrderSummaryDTO `json:"orders"`
}

// FlexibleID accepts an identifier encoded as a JSON string, a number or an
// extended-JSON object id ({"$oid": "..."}).
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}
	if len(data) > 0 && data[0] == '{' {
		var oid struct {
			OID string `json:"$oid"`
		}
		if err := json.Unmarshal(data, &oid); err != nil {
			return err
		}
		if oid.OID == "" {
			return errors.New("object id without $oid")
		}
		*id = FlexibleID(oid.OID)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FlexibleID(n.String())
	return nil
}
