package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "lastdrop/internal/errors"
)

const (
	pathLeads    = "/api/leads"
	pathRegister = "/api/auth/register"
	pathLogin    = "/api/auth/login"
	pathOrders   = "/api/orders"

	HeaderRequestID = "X-Request-ID"

	maxBodyBytes = 10 << 20
)

// Client speaks the LastDrop backend contract. Every method issues exactly one
// request and treats any non-2xx status as failure without reading the body.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends the request and returns the response only for 2xx statuses; the
// caller owns closing its body.
func (c *Client) do(ctx context.Context, op, method, path, token string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, apperrors.NewRequestError(op, 0, fmt.Errorf("encoding body: %w", err))
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, apperrors.NewRequestError(op, 0, fmt.Errorf("creating request: %w", err))
	}

	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger := c.logger.With(
		zap.String("op", op),
		zap.String("method", method),
		zap.String("path", path),
		zap.String("requestId", requestID),
	)

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("backend request failed", zap.Duration("duration", time.Since(start)), zap.Error(err))
		return nil, apperrors.NewRequestError(op, 0, err)
	}

	logger.Debug("backend request completed", zap.Int("status", res.StatusCode), zap.Duration("duration", time.Since(start)))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(res.Body, maxBodyBytes))
		res.Body.Close()
		return nil, apperrors.NewRequestError(op, res.StatusCode, nil)
	}

	return res, nil
}

// send issues a request whose success body carries nothing of interest.
func (c *Client) send(ctx context.Context, op, method, path, token string, payload any) error {
	res, err := c.do(ctx, op, method, path, token, payload)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	io.Copy(io.Discard, io.LimitReader(res.Body, maxBodyBytes))
	return nil
}
