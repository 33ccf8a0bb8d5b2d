package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-playground/validator/v10"

	appdeck "github.com/preston-bernstein/nba-daily-deck/internal/app/deck"
	domaindeck "github.com/preston-bernstein/nba-daily-deck/internal/domain/deck"
	"github.com/preston-bernstein/nba-daily-deck/internal/logging"
	"github.com/preston-bernstein/nba-daily-deck/internal/poller"
	"github.com/preston-bernstein/nba-daily-deck/internal/providers/fixture"
)

// HeaderCache reports whether a deck came from the result cache.
const HeaderCache = "X-Cache"

// DefaultDeckTimeout bounds one deck request. It sits below the server's write timeout
// so a slow upstream still yields a response.
const DefaultDeckTimeout = 20 * time.Second

// DeckService builds the daily deck.
type DeckService interface {
	DailyDeck(ctx context.Context, requestedDate string) appdeck.Outcome
}

// Handler wires HTTP routes to the deck service.
type Handler struct {
	svc      DeckService
	logger   *slog.Logger
	statusFn func() poller.Status
	validate *validator.Validate
	sample   func() []domaindeck.Pair
	timeout  time.Duration
}

type deckQuery struct {
	Date string `validate:"omitempty,datetime=2006-01-02"`
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc DeckService, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
		validate: validator.New(),
		sample:   fixture.SamplePairs,
		timeout:  DefaultDeckTimeout,
	}
}

// WithDeckTimeout overrides the per-request deck deadline. d <= 0 keeps the current value.
func (h *Handler) WithDeckTimeout(d time.Duration) *Handler {
	if d > 0 {
		h.timeout = d
	}
	return h
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// DailyDeck serves the paired players for ?date=YYYY-MM-DD, or for the most
// recent date with completed games when date is absent. Every outcome is a 200;
// a message body replaces the array when there is nothing to pair.
func (h *Handler) DailyDeck(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	q := deckQuery{Date: r.URL.Query().Get("date")}
	if err := h.validate.StructCtx(r.Context(), q); err != nil {
		logging.Info(logger, "rejected deck date", slog.String(logging.FieldDate, q.Date))
		writeJSON(w, nethttp.StatusOK, domaindeck.NewMessageResponse(appdeck.InvalidDateMessage), h.logger)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()
	out := h.svc.DailyDeck(ctx, q.Date)
	if ctx.Err() == context.DeadlineExceeded {
		logging.Warn(logger, "deck request hit its deadline", slog.Duration("timeout", h.timeout))
	}
	if out.Message != "" {
		writeJSON(w, nethttp.StatusOK, domaindeck.NewMessageResponse(out.Message), h.logger)
		return
	}

	pairs := out.Pairs
	if pairs == nil {
		pairs = []domaindeck.Pair{}
	}
	if out.Cached {
		w.Header().Set(HeaderCache, "HIT")
	} else {
		w.Header().Set(HeaderCache, "MISS")
	}
	writeJSON(w, nethttp.StatusOK, pairs, h.logger)
}

// Sample returns a fixed deck that never touches the upstream.
func (h *Handler) Sample(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.sample(), h.logger)
}

// NotFound renders unknown routes as JSON.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed renders wrong-method requests as JSON.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}
