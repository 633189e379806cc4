package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"lastdrop/internal/dashboard"
	"lastdrop/internal/domain"
	apperrors "lastdrop/internal/errors"
)

func TestPrintOrders_SingleEntry(t *testing.T) {
	var buf bytes.Buffer
	PrintOrders(&buf, []domain.OrderSummary{{
		OrderNumber: "A1",
		Status:      "pending",
		TotalAmount: decimal.NewFromInt(10),
		Currency:    "EUR",
	}})

	var rows []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "A1") {
			rows = append(rows, strings.Fields(line)...)
		}
	}
	assert.Equal(t, []string{"A1", "pending", "10", "EUR"}, rows)
}

func TestPrintOrders_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintOrders(&buf, nil)

	assert.Contains(t, buf.String(), "No orders yet.")
}

func TestPrintPanel_Anonymous(t *testing.T) {
	var buf bytes.Buffer
	PrintPanel(&buf, dashboard.View{Stage: domain.StageRegister, Message: dashboard.MessageRegisterFailed})

	assert.Equal(t, "Retailer area (register)\nRegistration failed\n", buf.String())
}

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	PrintStatus(&buf, domain.StatusIdle{})
	PrintStatus(&buf, domain.StatusError{Msg: "Something went wrong. Please try again."})

	assert.Equal(t, "Error: Something went wrong. Please try again.\n", buf.String())
}

func TestPrintValidation(t *testing.T) {
	var buf bytes.Buffer
	ok := PrintValidation(&buf, apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{Field: "email", Message: "email is required"}))

	assert.True(t, ok)
	assert.Equal(t, "  email: email is required\n", buf.String())
	assert.False(t, PrintValidation(&buf, errors.New("other")))
}
