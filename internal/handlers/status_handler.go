package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Dias221467/Birthday_Wall/internal/realtime"
	"github.com/Dias221467/Birthday_Wall/internal/services"
	"github.com/sirupsen/logrus"
)

// Pinger reports whether the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type StatusHandler struct {
	DB    Pinger
	Stats *services.StatsService
	Hub   *realtime.Hub
}

func NewStatusHandler(db Pinger, stats *services.StatsService, hub *realtime.Hub) *StatusHandler {
	return &StatusHandler{DB: db, Stats: stats, Hub: hub}
}

// HealthHandler answers 200 when the database responds to a ping and 503 otherwise.
func (h *StatusHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	body := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}
	if h.Hub != nil {
		body["liveClients"] = h.Hub.Clients()
	}

	if err := h.DB.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("Health check failed")
		body["status"] = "database unavailable"
		respondJSON(w, http.StatusServiceUnavailable, body)
		return
	}
	respondJSON(w, http.StatusOK, body)
}

// StatsHandler returns wish, like and slide totals.
func (h *StatusHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.Collect(r.Context())
	if err != nil {
		respondError(w, err, "Failed to fetch stats")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// LiveHandler upgrades to a websocket streaming wish events.
func (h *StatusHandler) LiveHandler(w http.ResponseWriter, r *http.Request) {
	if h.Hub == nil {
		respondJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "Live feed unavailable"})
		return
	}
	h.Hub.Serve(w, r)
}
