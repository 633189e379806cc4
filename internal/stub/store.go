package stub

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	apperrors "lastdrop/internal/errors"
)

type Lead struct {
	ID        string
	Name      string
	Email     string
	Role      string
	Company   string
	Message   string
	Consent   bool
	CreatedAt time.Time
}

type Retailer struct {
	Email        string
	PasswordHash []byte
	Company      string
	ContactName  string
	CreatedAt    time.Time
}

type Order struct {
	ID          string
	Owner       string
	OrderNumber string
	Status      string
	TotalAmount decimal.Decimal
	Currency    string
	Items       []byte
	Notes       string
	CreatedAt   time.Time
}

// Store keeps every stub entity in memory for the life of the process.
type Store struct {
	mu        sync.RWMutex
	leads     []Lead
	retailers map[string]Retailer
	tokens    map[string]string
	orders    map[string][]Order
	now       func() time.Time
	hashCost  int
}

func NewStore() *Store {
	return &Store{
		retailers: make(map[string]Retailer),
		tokens:    make(map[string]string),
		orders:    make(map[string][]Order),
		now:       time.Now,
		hashCost:  bcrypt.DefaultCost,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Store) AddLead(lead Lead) Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead.ID = uuid.New().String()
	lead.CreatedAt = s.now().UTC()
	s.leads = append(s.leads, lead)
	return lead
}

func (s *Store) Leads() []Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

func (s *Store) Register(email, password, company, contactName string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return apperrors.NewInternalError("hashing password", err)
	}

	key := normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.retailers[key]; exists {
		return apperrors.NewConflictError("email already registered")
	}

	s.retailers[key] = Retailer{
		Email:        key,
		PasswordHash: hash,
		Company:      company,
		ContactName:  contactName,
		CreatedAt:    s.now().UTC(),
	}
	return nil
}

// Login issues a fresh opaque bearer token for valid credentials.
func (s *Store) Login(email, password string) (string, error) {
	key := normalizeEmail(email)

	s.mu.RLock()
	retailer, ok := s.retailers[key]
	s.mu.RUnlock()

	if !ok || bcrypt.CompareHashAndPassword(retailer.PasswordHash, []byte(password)) != nil {
		return "", apperrors.NewUnauthorizedError("invalid credentials")
	}

	token := uuid.New().String()

	s.mu.Lock()
	s.tokens[token] = key
	s.mu.Unlock()

	return token, nil
}

// Authenticate resolves a bearer token to the retailer's e-mail.
func (s *Store) Authenticate(token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email, ok := s.tokens[token]
	if !ok {
		return "", apperrors.NewUnauthorizedError("invalid token")
	}
	return email, nil
}

func (s *Store) CreateOrder(order Order) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.orders[order.Owner] {
		if existing.OrderNumber == order.OrderNumber {
			return Order{}, apperrors.NewConflictError("order_number already exists")
		}
	}

	order.ID = uuid.New().String()
	order.Status = "pending"
	order.CreatedAt = s.now().UTC()
	s.orders[order.Owner] = append(s.orders[order.Owner], order)
	return order, nil
}

// Orders returns the owner's orders, newest first.
func (s *Store) Orders(owner string) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, len(s.orders[owner]))
	copy(out, s.orders[owner])
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
