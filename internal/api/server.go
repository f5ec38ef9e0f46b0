package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/govassist/ml-service/internal/config"
	"github.com/govassist/ml-service/internal/metrics"
	"github.com/govassist/ml-service/internal/nlp"
	"github.com/govassist/ml-service/internal/transcribe"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type Server struct {
	http *http.Server
	log  zerolog.Logger
}

// ServerOptions contains all dependencies for the HTTP server.
type ServerOptions struct {
	Config      *config.Config
	Model       *nlp.Model
	Transcriber transcribe.Provider
	Log         zerolog.Logger
}

func NewServer(opts ServerOptions) *Server {
	return &Server{
		http: &http.Server{
			Addr:         opts.Config.ListenAddr(),
			Handler:      NewRouter(opts),
			ReadTimeout:  opts.Config.ReadTimeout,
			WriteTimeout: opts.Config.WriteTimeout,
			IdleTimeout:  opts.Config.IdleTimeout,
		},
		log: opts.Log,
	}
}

// NewRouter builds the route tree. Exposed separately so tests can drive it
// without a listener.
func NewRouter(opts ServerOptions) *chi.Mux {
	cfg := opts.Config
	log := opts.Log

	r := chi.NewRouter()

	// Global middleware. Recoverer sits inside Logger so panics are logged
	// with the request logger and the access log sees the 500.
	r.Use(RequestID)
	r.Use(Logger(log))
	r.Use(Recoverer)
	r.Use(CORSWithOrigins(cfg.CORSOrigins))
	if cfg.MetricsEnabled {
		r.Use(metrics.InstrumentHandler)
	}
	if cfg.RateLimitRPS > 0 {
		r.Use(RateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	r.Get("/health", NewHealthHandler().ServeHTTP)
	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		NewDocumentsHandler(log).Routes(r)
		NewScheduleHandler(log).Routes(r)
		NewAssistantHandler(opts.Model, cfg.AssistantDelay, log).Routes(r)
		NewTranscribeHandler(opts.Transcriber, log).Routes(r)
	})

	return r
}

func (s *Server) Start() error {
	s.log.Info().Str("addr", s.http.Addr).Msg("http server starting")
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("http server shutting down")
	return s.http.Shutdown(ctx)
}
