package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"lastdrop/internal/dto"
	apperrors "lastdrop/internal/errors"
)

var errNoToken = errors.New("login response carries no token")

type Credentials struct {
	Email    string
	Password string
}

type Registration struct {
	Credentials
	Company     string
	ContactName string
}

func (c *Client) Register(ctx context.Context, reg Registration) error {
	req := dto.RegisterRequest{
		Email:       reg.Email,
		Password:    reg.Password,
		Company:     reg.Company,
		ContactName: reg.ContactName,
	}
	return c.send(ctx, "register", http.MethodPost, pathRegister, "", req)
}

// Login returns the bearer token issued for creds. A 2xx response without a
// usable token is reported as a failure.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	const op = "login"

	res, err := c.do(ctx, op, http.MethodPost, pathLogin, "", dto.LoginRequest{
		Email:    creds.Email,
		Password: creds.Password,
	})
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var payload dto.LoginResponse
	if err := json.NewDecoder(io.LimitReader(res.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return "", apperrors.NewRequestError(op, res.StatusCode, fmt.Errorf("decoding body: %w", err))
	}
	if payload.Token == "" {
		return "", apperrors.NewRequestError(op, res.StatusCode, errNoToken)
	}

	return payload.Token, nil
}
