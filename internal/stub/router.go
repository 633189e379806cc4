package stub

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(ctrl *Controller, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/leads", ctrl.CreateLead)
		r.Post("/auth/register", ctrl.Register)
		r.Post("/auth/login", ctrl.Login)

		r.Group(func(r chi.Router) {
			r.Use(ctrl.RequireBearer)
			r.Get("/orders", ctrl.ListOrders)
			r.Post("/orders", ctrl.CreateOrder)
		})
	})

	return r
}

// NewModule wires a stub backend around a fresh in-memory store.
func NewModule(logger *zap.Logger) (http.Handler, *Store) {
	store := NewStore()
	return NewRouter(NewController(store, logger), logger), store
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("requestId", r.Header.Get("X-Request-ID")),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
