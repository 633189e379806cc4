package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"lastdrop/internal/domain"
	"lastdrop/internal/dto"
	apperrors "lastdrop/internal/errors"
)

// ListOrders fetches the retailer's orders. A body that is not a JSON object is
// an error; an absent or malformed "orders" field yields an empty list, and a
// malformed entry is dropped without affecting the others.
func (c *Client) ListOrders(ctx context.Context, token string) ([]domain.OrderSummary, error) {
	const op = "list orders"

	res, err := c.do(ctx, op, http.MethodGet, pathOrders, token, nil)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, apperrors.NewRequestError(op, res.StatusCode, fmt.Errorf("reading body: %w", err))
	}

	var envelope dto.OrderListResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, apperrors.NewRequestError(op, res.StatusCode, fmt.Errorf("decoding body: %w", err))
	}

	orders := []domain.OrderSummary{}
	if len(envelope.Orders) == 0 || isNull(envelope.Orders) {
		return orders, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(envelope.Orders, &entries); err != nil {
		c.logger.Warn("malformed orders field, treating as empty", zap.Error(err))
		return orders, nil
	}

	for i, entry := range entries {
		summary, err := c.toOrderSummary(entry)
		if err != nil {
			c.logger.Warn("skipping malformed order entry", zap.Int("index", i), zap.Error(err))
			continue
		}
		orders = append(orders, summary)
	}

	return orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, token string, order domain.Order) error {
	items := order.Items
	if items == nil {
		items = []json.RawMessage{}
	}

	req := dto.CreateOrderRequest{
		OrderNumber: order.OrderNumber,
		TotalAmount: json.Number(order.TotalAmount.String()),
		Currency:    order.Currency,
		Items:       items,
		Notes:       order.Notes,
	}
	return c.send(ctx, "create order", http.MethodPost, pathOrders, token, req)
}

// toOrderSummary maps one list entry on its own. Only an entry that is not a
// JSON object fails; a field with an unexpected shape is left zero.
func (c *Client) toOrderSummary(entry json.RawMessage) (domain.OrderSummary, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(entry, &fields); err != nil {
		return domain.OrderSummary{}, fmt.Errorf("decoding order: %w", err)
	}
	if fields == nil {
		return domain.OrderSummary{}, fmt.Errorf("decoding order: null entry")
	}

	summary := domain.OrderSummary{
		OrderNumber: c.stringField(fields, "order_number"),
		Status:      c.stringField(fields, "status"),
		Currency:    c.stringField(fields, "currency"),
		TotalAmount: decimal.Zero,
	}

	summary.ID = c.idField(fields, "id")
	if summary.ID == "" {
		summary.ID = c.idField(fields, "_id")
	}

	if raw, ok := fields["total_amount"]; ok && !isNull(raw) {
		amount, err := parseAmount(raw)
		if err != nil {
			c.logger.Warn("unparseable order amount", zap.String("orderNumber", summary.OrderNumber), zap.Error(err))
		} else {
			summary.TotalAmount = amount
		}
	}

	return summary, nil
}

func (c *Client) stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		c.logger.Warn("unexpected order field", zap.String("field", key), zap.Error(err))
		return ""
	}
	return s
}

func (c *Client) idField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var id dto.FlexibleID
	if err := json.Unmarshal(raw, &id); err != nil {
		c.logger.Warn("unexpected order id", zap.String("field", key), zap.Error(err))
		return ""
	}
	return string(id)
}

// parseAmount accepts a JSON number or a numeric string.
func parseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(n.String())
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
