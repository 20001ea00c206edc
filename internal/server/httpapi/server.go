// Package httpapi exposes the user service over a JSON HTTP API built on chi.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/devauth/internal/logging"
	"github.com/dmitrijs2005/devauth/internal/server/auth"
	"github.com/dmitrijs2005/devauth/internal/server/models"
)

// UserService is the part of services.UserService the handlers depend on.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (string, error)
	Authenticate(ctx context.Context, token string) (*auth.Identity, error)
}

type HTTPServer struct {
	address         string
	corsOrigins     []string
	shutdownTimeout time.Duration
	users           UserService
	logger          logging.Logger
}

func NewHTTPServer(a string, corsOrigins []string, shutdownTimeout time.Duration, l logging.Logger, us UserService) *HTTPServer {
	return &HTTPServer{
		address:         a,
		corsOrigins:     corsOrigins,
		shutdownTimeout: shutdownTimeout,
		users:           us,
		logger:          l.With("module", "http_server"),
	}
}

// Router builds the handler tree. It is exported for tests and embedding.
func (s *HTTPServer) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/register", s.register)
		r.Post("/login", s.login)
		r.With(s.accessTokenMiddleware).Get("/current", s.current)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (s *HTTPServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
