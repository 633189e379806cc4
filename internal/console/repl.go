package console

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"lastdrop/internal/dashboard"
	"lastdrop/internal/domain"
	apperrors "lastdrop/internal/errors"
)

const helpText = `Commands:
  stage login|register        switch the auth form
  email <address>             set the e-mail
  password <secret>           set the password
  company <name>              set the company (register)
  contact <name>              set the contact name (register)
  register                    create an account
  login                       sign in
  orders                      refresh and show my orders
  order number <value>        set the new order number
  order amount <value>        set the new order total
  order currency <code>       set the new order currency
  order notes <text>          set the new order notes
  order item <json>           append a line item
  order show                  show the new order
  order submit                create the order
  logout                      sign out
  help                        show this help
  quit                        leave`

var errQuit = errors.New("quit")

// Run drives panel from line commands read from in until quit or EOF.
func Run(ctx context.Context, panel *dashboard.Panel, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "LastDrop retailer area. Type 'help' for commands.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		err := dispatch(ctx, panel, line, out)
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			report(out, err)
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func dispatch(ctx context.Context, panel *dashboard.Panel, line string, out io.Writer) error {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "help":
		fmt.Fprintln(out, helpText)

	case "quit", "exit":
		return errQuit

	case "stage":
		stage, err := domain.ParseStage(rest)
		if err != nil {
			return err
		}
		panel.SetStage(stage)
		fmt.Fprintf(out, "Stage: %s\n", stage)

	case "email":
		panel.SetEmail(rest)
	case "password":
		panel.SetPassword(rest)
	case "company":
		panel.SetCompany(rest)
	case "contact":
		panel.SetContactName(rest)

	case "register":
		if err := panel.Register(ctx); !answered(err) {
			return err
		}
		printMessage(out, panel)

	case "login":
		if err := panel.Login(ctx); !answered(err) {
			return err
		}
		PrintPanel(out, panel.View())

	case "orders":
		if err := panel.FetchOrders(ctx); errors.Is(err, apperrors.ErrNoSession) {
			return err
		}
		PrintOrders(out, panel.View().Orders)

	case "order":
		return dispatchOrder(ctx, panel, rest, out)

	case "logout":
		if !panel.Authenticated() {
			fmt.Fprintln(out, "Not signed in.")
			return nil
		}
		panel.Logout()
		fmt.Fprintln(out, "Signed out.")

	default:
		return fmt.Errorf("unknown command %q, type 'help'", cmd)
	}

	return nil
}

func dispatchOrder(ctx context.Context, panel *dashboard.Panel, args string, out io.Writer) error {
	sub, value, _ := strings.Cut(args, " ")
	value = strings.TrimSpace(value)

	switch strings.ToLower(sub) {
	case "number":
		panel.SetOrderNumber(value)
	case "amount":
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("invalid amount %q", value)
		}
		panel.SetTotalAmount(amount)
	case "currency":
		panel.SetCurrency(strings.ToUpper(value))
	case "notes":
		panel.SetNotes(value)
	case "item":
		if !json.Valid([]byte(value)) {
			return fmt.Errorf("item must be valid JSON")
		}
		panel.AddItem(json.RawMessage(value))
	case "show":
		PrintDraft(out, panel.View().Draft)
	case "submit":
		err := panel.CreateOrder(ctx)
		if !answered(err) {
			return err
		}
		if err != nil {
			printMessage(out, panel)
			return nil
		}
		fmt.Fprintln(out, "Order created.")
		PrintOrders(out, panel.View().Orders)
	default:
		return fmt.Errorf("unknown order command %q, type 'help'", sub)
	}
	return nil
}

func report(out io.Writer, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNoSession):
		fmt.Fprintln(out, "Sign in first: use 'stage login', 'email', 'password' and 'login'.")
	case errors.Is(err, apperrors.ErrSubmissionInFlight):
		fmt.Fprintln(out, "Please wait for the previous request to finish.")
	case errors.Is(err, dashboard.ErrAuthenticated):
		fmt.Fprintln(out, "Already signed in. Use 'logout' first.")
	default:
		if PrintValidation(out, err) {
			return
		}
		fmt.Fprintln(out, err)
	}
}

func printMessage(out io.Writer, panel *dashboard.Panel) {
	if msg := panel.View().Message; msg != "" {
		fmt.Fprintln(out, msg)
	}
}

// answered reports whether the backend was reached, successfully or not. In
// that case the panel message already describes the outcome.
func answered(err error) bool {
	if err == nil {
		return true
	}
	_, ok := apperrors.IsRequestError(err)
	return ok
}
