package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"taskloop/internal/domain"
	"taskloop/internal/ports"
	"taskloop/pkg/humandur"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type statusResp struct {
	Label    string       `json:"label"`
	Interval string       `json:"interval"`
	Cycles   uint64       `json:"cycles"`
	LastRun  *domain.Run  `json:"last_run,omitempty"`
	Recent   []domain.Run `json:"recent,omitempty"`
}

// Server exposes read-only observability over the in-memory run journal.
type Server struct {
	router *chi.Mux
}

func NewServer(j ports.Journal, interval time.Duration, label string) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/status", func(w http.ResponseWriter, _ *http.Request) {
		resp := statusResp{
			Label:    label,
			Interval: humandur.Format(interval),
			Cycles:   j.Cycles(),
			Recent:   j.Recent(10),
		}
		if last, ok := j.Last(); ok {
			resp.LastRun = &last
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})

	return &Server{router: r}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)

	httpServer := http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Ctx(ctx).Info().Msgf("status server serving on port %d", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
			return
		}
		errc <- nil
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Ctx(ctx).Info().Msg("status server shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("status server forced to shutdown: %w", err)
	}
	return <-errc
}
