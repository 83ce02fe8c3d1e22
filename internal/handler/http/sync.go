package http

import (
	"net/http"

	"github.com/kirubhel/redcross-client/internal/logger"
)

// triggerSync runs one drain pass inline. A pass that is already running,
// or gated off by connectivity or auth, completes as a no-op; the returned
// snapshot tells the caller what actually happened.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.Sync.Sync(ctx); err != nil {
		log.Err(err).Msg("manual sync pass failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	snapshot := h.services.Monitor.Snapshot()
	writeJSON(w, http.StatusAccepted, snapshot)
}
