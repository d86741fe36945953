package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/roach88/dashview/internal/model"
	"github.com/roach88/dashview/internal/seed"
	"github.com/roach88/dashview/internal/session"
)

// maxBodyBytes bounds request bodies, including PUT /records.
const maxBodyBytes = 1 << 20

// Saver persists a replaced collection. *store.Store satisfies it.
type Saver interface {
	SaveCollection(ctx context.Context, records []model.Record) error
}

// Server serves one session.
type Server struct {
	sess    *session.Session
	saver   Saver
	logger  *slog.Logger
	metrics *Metrics
	access  io.Writer

	mu    sync.Mutex
	owner *seed.Owner

	handler http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for failed requests.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAccessLog writes Apache Common Log lines for every request to w.
func WithAccessLog(w io.Writer) Option {
	return func(s *Server) {
		s.access = w
	}
}

// WithSaver persists every collection accepted by PUT /records.
func WithSaver(saver Saver) Option {
	return func(s *Server) {
		s.saver = saver
	}
}

// WithOwner sets the account owner served at GET /owner.
func WithOwner(owner seed.Owner) Option {
	return func(s *Server) {
		s.owner = &owner
	}
}

// WithRegistry registers the server's metrics with reg instead of a private
// registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.metrics = NewMetrics(reg)
	}
}

// NewServer builds the router for sess.
func NewServer(sess *session.Session, opts ...Option) *Server {
	s := &Server{
		sess:   sess,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(prometheus.NewRegistry())
	}

	r := mux.NewRouter()
	r.Handle("/health", s.metrics.WrapHandler("health", s.health)).Methods(http.MethodGet)
	r.Handle("/state", s.metrics.WrapHandler("state", s.state)).Methods(http.MethodGet)
	r.Handle("/page", s.metrics.WrapHandler("page", s.page)).Methods(http.MethodGet)
	r.Handle("/aggregates", s.metrics.WrapHandler("aggregates", s.aggregates)).Methods(http.MethodGet)
	r.Handle("/owner", s.metrics.WrapHandler("owner", s.getOwner)).Methods(http.MethodGet)
	r.Handle("/query", s.metrics.WrapHandler("query", s.setQuery)).Methods(http.MethodPut)
	r.Handle("/sort", s.metrics.WrapHandler("sort", s.requestSort)).Methods(http.MethodPost)
	r.Handle("/sort", s.metrics.WrapHandler("sort", s.clearSort)).Methods(http.MethodDelete)
	r.Handle("/page", s.metrics.WrapHandler("page", s.goToPage)).Methods(http.MethodPut)
	r.Handle("/page-size", s.metrics.WrapHandler("page_size", s.setPageSize)).Methods(http.MethodPut)
	r.Handle("/records", s.metrics.WrapHandler("records", s.replaceRecords)).Methods(http.MethodPut)
	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	})

	var h http.Handler = r
	h = handlers.RecoveryHandler()(h)
	if s.access != nil {
		h = handlers.LoggingHandler(s.access, h)
	}
	s.handler = h
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	}
}
