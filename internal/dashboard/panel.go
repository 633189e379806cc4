package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"lastdrop/internal/backend"
	"lastdrop/internal/domain"
)

const (
	MessageRegisterFailed = "Registration failed"
	MessageRegistered     = "Account created. You can now sign in."
	MessageLoginFailed    = "Invalid credentials"
	MessageSignedIn       = "Signed in"
	MessageOrderFailed    = "Order creation failed"
)

var (
	ErrClosed        = errors.New("dashboard panel closed")
	ErrAuthenticated = errors.New("already signed in")
)

type Backend interface {
	Register(ctx context.Context, reg backend.Registration) error
	Login(ctx context.Context, creds backend.Credentials) (string, error)
	ListOrders(ctx context.Context, token string) ([]domain.OrderSummary, error)
	CreateOrder(ctx context.Context, token string, order domain.Order) error
}

type Panel struct {
	backend Backend
	logger  *zap.Logger

	mu        sync.Mutex
	auth      domain.AuthState
	token     string
	orders    []domain.OrderSummary
	draft     domain.Order
	message   string
	authBusy  bool
	orderBusy bool
	closed    bool

	// generation changes on Logout and Close; responses carrying an older
	// generation are dropped.
	generation uint64
	// fetchSeq orders list refreshes so an older response never overwrites a
	// newer one.
	fetchSeq     uint64
	appliedFetch uint64
}

func NewPanel(b Backend, logger *zap.Logger) *Panel {
	return &Panel{
		backend: b,
		logger:  logger,
		auth:    domain.NewAuthState(),
		orders:  []domain.OrderSummary{},
		draft:   domain.NewOrder(),
	}
}

// View is a point-in-time copy of the panel for rendering. The password is
// never included.
type View struct {
	Stage         domain.Stage
	Authenticated bool
	Message       string
	Email         string
	Company       string
	ContactName   string
	Orders        []domain.OrderSummary
	Draft         domain.Order
	AuthBusy      bool
	OrderBusy     bool
}

func (p *Panel) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()

	orders := make([]domain.OrderSummary, len(p.orders))
	copy(orders, p.orders)

	return View{
		Stage:         p.auth.Stage,
		Authenticated: p.token != "",
		Message:       p.message,
		Email:         p.auth.Email,
		Company:       p.auth.Company,
		ContactName:   p.auth.ContactName,
		Orders:        orders,
		Draft:         p.draft.Clone(),
		AuthBusy:      p.authBusy,
		OrderBusy:     p.orderBusy,
	}
}

func (p *Panel) Authenticated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token != ""
}

func (p *Panel) SetStage(stage domain.Stage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.auth.Stage = stage
}

func (p *Panel) SetEmail(v string)       { p.updateAuth(func(a *domain.AuthState) { a.Email = v }) }
func (p *Panel) SetPassword(v string)    { p.updateAuth(func(a *domain.AuthState) { a.Password = v }) }
func (p *Panel) SetCompany(v string)     { p.updateAuth(func(a *domain.AuthState) { a.Company = v }) }
func (p *Panel) SetContactName(v string) { p.updateAuth(func(a *domain.AuthState) { a.ContactName = v }) }

func (p *Panel) updateAuth(fn func(*domain.AuthState)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&p.auth)
}

func (p *Panel) SetOrderNumber(v string) { p.updateDraft(func(o *domain.Order) { o.OrderNumber = v }) }
func (p *Panel) SetCurrency(v string)    { p.updateDraft(func(o *domain.Order) { o.Currency = v }) }
func (p *Panel) SetNotes(v string)       { p.updateDraft(func(o *domain.Order) { o.Notes = v }) }

func (p *Panel) SetTotalAmount(v decimal.Decimal) {
	p.updateDraft(func(o *domain.Order) { o.TotalAmount = v })
}

func (p *Panel) AddItem(item json.RawMessage) {
	p.updateDraft(func(o *domain.Order) { o.Items = append(o.Items, item) })
}

func (p *Panel) updateDraft(fn func(*domain.Order)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&p.draft)
}

// Logout forgets the token and the order list and returns to the login
// stage. The backend is not contacted.
func (p *Panel) Logout() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.resetSessionLocked()
	p.auth.Stage = domain.StageLogin
	p.message = ""
	p.logger.Info("signed out")
}

// Close tears the panel down. Requests still in flight resolve into nothing.
func (p *Panel) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.resetSessionLocked()
	p.auth = domain.NewAuthState()
	p.closed = true
}

func (p *Panel) resetSessionLocked() {
	p.generation++
	p.token = ""
	p.orders = []domain.OrderSummary{}
	p.authBusy = false
	p.orderBusy = false
}

// currentLocked reports whether a response started under gen may still be
// applied.
func (p *Panel) currentLocked(gen uint64) bool {
	return !p.closed && gen == p.generation
}
