package stub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"lastdrop/internal/domain"
	"lastdrop/internal/dto"
	apperrors "lastdrop/internal/errors"
)

type ctxKey int

const ownerKey ctxKey = iota

// maxPasswordBytes is the longest input bcrypt hashes.
const maxPasswordBytes = 72

type Controller struct {
	store  *Store
	logger *zap.Logger
}

func NewController(store *Store, logger *zap.Logger) *Controller {
	return &Controller{
		store:  store,
		logger: logger,
	}
}

func (c *Controller) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req dto.LeadRequest
	if !c.decode(w, r, &req) {
		return
	}

	var details []apperrors.ValidationDetail
	if err := (domain.LeadRecord{Name: req.Name, Email: req.Email}).Validate(); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		details = append(details, ve.Details...)
	}
	if _, err := domain.ParseRole(req.Role); err != nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "role",
			Message: "role must be one of retailer, consumer, other",
		})
	}
	if len(details) > 0 {
		c.writeValidationError(w, "validation failed", details...)
		return
	}

	lead := c.store.AddLead(Lead{
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
		Company: req.Company,
		Message: req.Message,
		Consent: req.Consent,
	})
	c.logger.Info("lead stored", zap.String("leadId", lead.ID), zap.String("role", lead.Role))

	c.writeJSON(w, http.StatusCreated, map[string]string{"id": lead.ID})
}

func (c *Controller) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !c.decode(w, r, &req) {
		return
	}

	auth := domain.AuthState{Email: req.Email, Password: req.Password}
	if err := auth.ValidateCredentials(); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}
	if len(req.Password) > maxPasswordBytes {
		c.writeValidationError(w, "validation failed", apperrors.ValidationDetail{
			Field:   "password",
			Message: fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes),
		})
		return
	}

	if err := c.store.Register(req.Email, req.Password, req.Company, req.ContactName); err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !c.decode(w, r, &req) {
		return
	}

	token, err := c.store.Login(req.Email, req.Password)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.LoginResponse{Token: token})
}

func (c *Controller) ListOrders(w http.ResponseWriter, r *http.Request) {
	owner := r.Context().Value(ownerKey).(string)

	orders := c.store.Orders(owner)
	payload := dto.OrderListPayload{Orders: make([]dto.OrderSummaryDTO, 0, len(orders))}
	for _, o := range orders {
		payload.Orders = append(payload.Orders, dto.OrderSummaryDTO{
			ID:          dto.FlexibleID(o.ID),
			OrderNumber: o.OrderNumber,
			Status:      o.Status,
			TotalAmount: json.Number(o.TotalAmount.String()),
			Currency:    o.Currency,
		})
	}

	c.writeJSON(w, http.StatusOK, payload)
}

func (c *Controller) CreateOrder(w http.ResponseWriter, r *http.Request) {
	owner := r.Context().Value(ownerKey).(string)

	var req dto.CreateOrderRequest
	if !c.decode(w, r, &req) {
		return
	}

	var details []apperrors.ValidationDetail
	if strings.TrimSpace(req.OrderNumber) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "order_number", Message: "order_number is required"})
	}
	amount := decimal.Zero
	if req.TotalAmount != "" {
		parsed, err := decimal.NewFromString(req.TotalAmount.String())
		if err != nil || parsed.IsNegative() {
			details = append(details, apperrors.ValidationDetail{Field: "total_amount", Message: "total_amount must be a non-negative number"})
		} else {
			amount = parsed
		}
	}
	if len(details) > 0 {
		c.writeValidationError(w, "validation failed", details...)
		return
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	items, _ := json.Marshal(req.Items)

	order, err := c.store.CreateOrder(Order{
		Owner:       owner,
		OrderNumber: req.OrderNumber,
		TotalAmount: amount,
		Currency:    currency,
		Items:       items,
		Notes:       req.Notes,
	})
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.logger.Info("order stored", zap.String("orderId", order.ID), zap.String("orderNumber", order.OrderNumber))
	c.writeJSON(w, http.StatusCreated, map[string]string{"id": order.ID})
}

// RequireBearer resolves the Authorization header to a retailer and rejects
// the request otherwise.
func (c *Controller) RequireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			c.handleError(w, apperrors.NewUnauthorizedError("missing bearer token"))
			return
		}

		owner, err := c.store.Authenticate(token)
		if err != nil {
			c.handleError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ownerKey, owner)))
	})
}

func (c *Controller) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		c.logger.Warn("invalid JSON body", zap.String("path", r.URL.Path), zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return false
	}
	return true
}

func (c *Controller) handleError(w http.ResponseWriter, err error) {
	if _, ok := apperrors.IsUnauthorizedError(err); ok {
		c.writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeErrorResponse(w, http.StatusConflict, "CONFLICT", err.Error())
		return
	}

	c.logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

type errorResponse struct {
	TraceID   string                       `json:"traceId"`
	Error     string                       `json:"error"`
	Message   string                       `json:"message"`
	Details   []apperrors.ValidationDetail `json:"details,omitempty"`
	Timestamp time.Time                    `json:"timestamp"`
}

func (c *Controller) writeErrorResponse(w http.ResponseWriter, status int, code, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, status, errorResponse{
		TraceID:   uuid.New().String(),
		Error:     code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", message, details...)
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
