// Package httpserver assembles the router and runs the HTTP listener.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/tapbook/internal/config"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/deps"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/mw"
	"github.com/MrSnakeDoc/tapbook/internal/httpserver/routes"
	"github.com/MrSnakeDoc/tapbook/internal/logger"
)

// requestTimeout bounds a request, including a forced session flush.
const requestTimeout = 5 * time.Second

type Server struct {
	http   *http.Server
	logger logger.Logger
}

// NewRouter builds the router with global middlewares and every registered route.
func NewRouter(d deps.Deps, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.GetHead,
		middleware.CleanPath,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Timeout(requestTimeout),
		mw.Log(d.Logger),
		mw.CORS(corsOrigins),
	)

	routes.RegisterAll(r, d)
	d.Logger.Debug("routes mounted", logger.Strings("routes", routes.List(r)))
	return r
}

// New builds the http.Server around NewRouter.
func New(cfg *config.Config, loggerClient logger.Logger, d deps.Deps) *Server {
	return &Server{
		http: &http.Server{
			Addr:              cfg.ListenPort,
			Handler:           NewRouter(d, cfg.CORSOrigins),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
		logger: loggerClient,
	}
}

// Start listens on the configured address and serves until Stop.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve runs on an existing listener. A graceful shutdown returns nil.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("🌐 HTTP server listening", logger.String("addr", ln.Addr().String()))
	if err := s.http.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down...")
	return s.http.Shutdown(ctx)
}
