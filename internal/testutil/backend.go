package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// RecordedRequest is what the fake backend saw for one call.
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	RequestID     string
	Body          []byte
}

// FakeBackend is an httptest server that records every request and answers
// from per-route handlers. Unregistered routes answer 404.
type FakeBackend struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	handlers map[string]http.HandlerFunc
}

// NewFakeBackend starts a fake backend that is closed when t finishes.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	f := &FakeBackend{handlers: make(map[string]http.HandlerFunc)}

	r := chi.NewRouter()
	r.Use(f.record)
	r.HandleFunc("/*", f.dispatch)

	f.server = httptest.NewServer(r)
	t.Cleanup(f.server.Close)

	return f
}

func (f *FakeBackend) URL() string {
	return f.server.URL
}

func (f *FakeBackend) Client() *http.Client {
	return f.server.Client()
}

// Close shuts the server down early, e.g. to simulate an unreachable backend.
func (f *FakeBackend) Close() {
	f.server.Close()
}

func (f *FakeBackend) Handle(method, path string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[method+" "+path] = h
}

// Respond registers a fixed status and body for a route.
func (f *FakeBackend) Respond(method, path string, status int, body string) {
	f.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	})
}

func (f *FakeBackend) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// Matching returns the recorded requests for one route, in arrival order.
func (f *FakeBackend) Matching(method, path string) []RecordedRequest {
	var out []RecordedRequest
	for _, req := range f.Requests() {
		if req.Method == method && req.Path == path {
			out = append(out, req)
		}
	}
	return out
}

func (f *FakeBackend) Count(method, path string) int {
	return len(f.Matching(method, path))
}

func (f *FakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		f.mu.Lock()
		f.requests = append(f.requests, RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			RequestID:     r.Header.Get("X-Request-ID"),
			Body:          body,
		})
		f.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (f *FakeBackend) dispatch(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	h, ok := f.handlers[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}
