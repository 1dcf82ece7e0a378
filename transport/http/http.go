package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sharedhouse/config"
	"sharedhouse/infras/kafka"
	"sharedhouse/infras/otel"
	"sharedhouse/infras/postgres"
	"sharedhouse/transport/http/response"
	"sharedhouse/transport/http/router"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 10 * time.Second
	healthTimeout     = 2 * time.Second
)

type HTTP struct {
	Config   *config.Config
	Router   router.Router
	db       *postgres.Connection
	redis    *goRedis.Client
	producer kafka.Producer
	otel     otel.Otel
	state    atomic.Int32
	server   *http.Server
}

func New(
	cfg *config.Config,
	r router.Router,
	db *postgres.Connection,
	redis *goRedis.Client,
	producer kafka.Producer,
	otel otel.Otel,
) *HTTP {
	return &HTTP{
		Config:   cfg,
		Router:   r,
		db:       db,
		redis:    redis,
		producer: producer,
		otel:     otel,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) Serve() {
	h.setup()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func (h *HTTP) setup() {
	mux := chi.NewRouter()
	h.Router.SetupRoutes(mux)
	mux.Get("/health", h.health)

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	h.setupGracefulShutdown()
	h.state.Store(int32(ServerStateReady))
}

// health reports 503 once shutdown has started so load balancers drain the
// instance during the grace period.
func (h *HTTP) health(w http.ResponseWriter, r *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("health check failed")
		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer h.cleanup()

	if h.Config.IsDevelopment() {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		_ = h.server.Close()

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.state.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	// Long lived event streams are cut when the deadline passes.
	if err := h.server.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("Server did not drain in time.")

		_ = h.server.Close()
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) cleanup() {
	if err := h.producer.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close kafka producer")
	}

	if err := h.redis.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close redis client")
	}

	h.db.Close()

	if err := h.otel.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Msg("failed to shutdown tracer provider")
	}
}
