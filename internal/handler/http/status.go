package http

import (
	"encoding/json"
	"net/http"

	"github.com/kirubhel/redcross-client/internal/logger"
)

// statusResponse extends the monitor snapshot with the live queue depth.
type statusResponse struct {
	IsOnline      bool   `json:"isOnline"`
	SyncStatus    string `json:"syncStatus"`
	PendingWrites int64  `json:"pendingWrites"`
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	snapshot := h.services.Monitor.Snapshot()

	pending, err := h.services.Queue.UnsyncedCount(ctx)
	if err != nil {
		log.Err(err).Msg("counting pending operations failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		IsOnline:      snapshot.IsOnline,
		SyncStatus:    string(snapshot.SyncStatus),
		PendingWrites: pending,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
