package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/kirubhel/redcross-client/internal/logger"
	"github.com/kirubhel/redcross-client/internal/service"
	"github.com/kirubhel/redcross-client/models"
)

type queueOperationRequest struct {
	Type models.OperationType `json:"type"`
	Data json.RawMessage      `json:"data"`
}

type queueOperationResponse struct {
	ID int64 `json:"id"`
}

func (h *Handler) queueOperation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req queueOperationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	id, err := h.services.Queue.QueueOperation(ctx, req.Type, req.Data)
	if err != nil {
		if errors.Is(err, service.ErrEmptyOperationType) {
			log.Err(err).Msg("operation type is missing")
			http.Error(w, "operation type is missing", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("queueing operation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, queueOperationResponse{ID: id})
}

func (h *Handler) listOperations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := operationFilterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid filter")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	operations, err := h.services.Queue.Operations(ctx, filter)
	if err != nil {
		log.Err(err).Msg("listing operations failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if operations == nil {
		operations = []models.PendingOperation{}
	}

	writeJSON(w, http.StatusOK, operations)
}

func operationFilterFromQuery(r *http.Request) (models.OperationFilter, error) {
	var filter models.OperationFilter

	if typeParam := r.URL.Query().Get("type"); typeParam != "" {
		opType := models.OperationType(typeParam)
		filter.Type = &opType
	}

	if syncedParam := r.URL.Query().Get("synced"); syncedParam != "" {
		synced, err := strconv.ParseBool(syncedParam)
		if err != nil {
			return models.OperationFilter{}, errors.New("synced must be a boolean")
		}
		filter.Synced = &synced
	}

	return filter, nil
}
