package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kirubhel/redcross-client/internal/logger"
	"github.com/kirubhel/redcross-client/internal/service"
	"github.com/kirubhel/redcross-client/models"
)

type cachedRecordResponse struct {
	ID int64 `json:"id"`
}

func (h *Handler) saveCachedRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	entityType := chi.URLParam(r, "entityType")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("reading request body failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !json.Valid(body) {
		log.Warn().Str("entity_type", entityType).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	id, err := h.services.Cache.SaveRecord(ctx, entityType, body)
	if err != nil {
		if errors.Is(err, service.ErrEmptyEntityType) {
			http.Error(w, "entity type is missing", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("caching record failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, cachedRecordResponse{ID: id})
}

func (h *Handler) getCachedRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	entityType := chi.URLParam(r, "entityType")

	records, err := h.services.Cache.Records(ctx, entityType)
	if err != nil {
		if errors.Is(err, service.ErrEmptyEntityType) {
			http.Error(w, "entity type is missing", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("reading cached records failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []models.OfflineDataRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}
