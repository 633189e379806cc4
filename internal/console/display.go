package console

import (
	"fmt"
	"io"
	"strings"

	"lastdrop/internal/dashboard"
	"lastdrop/internal/domain"
	apperrors "lastdrop/internal/errors"
)

const rule = 64

func PrintOrders(w io.Writer, orders []domain.OrderSummary) {
	fmt.Fprintln(w, strings.Repeat("=", rule))
	fmt.Fprintln(w, "  MY ORDERS")
	fmt.Fprintln(w, strings.Repeat("=", rule))
	if len(orders) == 0 {
		fmt.Fprintln(w, "  No orders yet.")
		fmt.Fprintln(w, strings.Repeat("=", rule))
		return
	}
	fmt.Fprintf(w, "  %-20s %-12s %14s %s\n", "ORDER", "STATUS", "TOTAL", "CURRENCY")
	fmt.Fprintln(w, strings.Repeat("-", rule))
	for _, o := range orders {
		fmt.Fprintf(w, "  %-20s %-12s %14s %s\n", o.OrderNumber, o.Status, o.TotalAmount.String(), o.Currency)
	}
	fmt.Fprintln(w, strings.Repeat("=", rule))
}

func PrintDraft(w io.Writer, o domain.Order) {
	fmt.Fprintf(w, "  order_number: %s\n", o.OrderNumber)
	fmt.Fprintf(w, "  total_amount: %s\n", o.TotalAmount.String())
	fmt.Fprintf(w, "  currency:     %s\n", o.Currency)
	fmt.Fprintf(w, "  items:        %d\n", len(o.Items))
	fmt.Fprintf(w, "  notes:        %s\n", o.Notes)
}

func PrintPanel(w io.Writer, v dashboard.View) {
	if v.Authenticated {
		fmt.Fprintf(w, "Signed in as %s\n", v.Email)
		PrintOrders(w, v.Orders)
	} else {
		fmt.Fprintf(w, "Retailer area (%s)\n", v.Stage)
	}
	if v.Message != "" {
		fmt.Fprintln(w, v.Message)
	}
}

// PrintStatus renders a lead submission status.
func PrintStatus(w io.Writer, s domain.SubmissionStatus) {
	switch s := s.(type) {
	case domain.StatusIdle:
	case domain.StatusLoading:
		fmt.Fprintln(w, s.Msg)
	case domain.StatusSuccess:
		fmt.Fprintln(w, s.Msg)
	case domain.StatusError:
		fmt.Fprintf(w, "Error: %s\n", s.Msg)
	}
}

// PrintValidation lists the missing fields of a ValidationError and reports
// whether err was one.
func PrintValidation(w io.Writer, err error) bool {
	ve, ok := apperrors.IsValidationError(err)
	if !ok {
		return false
	}
	for _, d := range ve.Details {
		fmt.Fprintf(w, "  %s: %s\n", d.Field, d.Message)
	}
	return true
}
