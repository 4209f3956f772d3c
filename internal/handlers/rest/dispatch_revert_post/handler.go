package dispatch_revert_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"celeris/internal/generated/dto"
	"celeris/internal/handlers/rest/shipmentview"
	"celeris/internal/service/dispatch"
	"celeris/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var revertDTO dto.DispatchRevertRequest
	err := json.NewDecoder(r.Body).Decode(&revertDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reverted, err := h.service.RevertDispatch(r.Context(), revertDTO.ShipmentID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidShipmentID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrShipmentNotEnRoute):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := shipmentview.FromEntity(reverted)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
