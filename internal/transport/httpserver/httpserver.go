package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hoanglm/portfolio_watch_bot/config"
)

// Server is the keep-alive HTTP endpoint: it exists so hosting platforms see
// the process as healthy, and carries no domain logic.
type Server struct {
	srv       *http.Server
	startedAt time.Time
}

func New(cfg *config.Config) *Server {
	s := &Server{startedAt: time.Now()}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealthz)

	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: r,
	}

	return s
}

func (s *Server) Start() {
	go func() {
		slog.Info("http server listening", slog.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", slog.String("err", err.Error()))
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	if err := s.srv.Shutdown(ctx); err != nil {
		slog.Error("http server shutdown error", slog.String("err", err.Error()))
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","uptime":"%s"}`, time.Since(s.startedAt).Round(time.Second))
}
