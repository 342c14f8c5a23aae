package ingress

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ultimate-atpl/study-battle-bot/internal/attr"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// Server is the HTTP surface: the Telegram webhook plus health and
// metrics endpoints.
type Server struct {
	httpServer *http.Server
	parser     *Parser
	secret     string
	logger     *slog.Logger
}

// NewServer builds the HTTP server. secret is compared against the
// header Telegram attaches to every webhook call; empty disables the
// check for local development.
func NewServer(addr string, parser *Parser, secret string, registry *prometheus.Registry, logger *slog.Logger) *Server {
	s := &Server{
		parser: parser,
		secret: secret,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Post("/webhook", s.handleWebhook)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}
	return s
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("Starting webhook server", attr.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleWebhook accepts one Telegram update per request. Anything past
// authentication answers 200 so Telegram does not redeliver updates the
// bot has chosen to drop; delivery-worthy failures are retried on the
// event bus side, not the webhook side.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if s.secret != "" {
		got := r.Header.Get(secretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(s.secret)) != 1 {
			s.logger.Warn("Rejected webhook call with bad secret token")
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
	}

	var update Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		s.logger.Warn("Rejected undecodable webhook body", attr.Error(err))
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if err := s.parser.HandleUpdate(r.Context(), &update); err != nil {
		// Publishing failed; let Telegram redeliver the update.
		s.logger.Error("Failed to handle update", attr.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
