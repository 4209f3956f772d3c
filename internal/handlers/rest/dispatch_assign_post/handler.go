package dispatch_assign_post

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
	var assignDTO dto.DispatchAssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assigned, err := h.service.AssignDriver(r.Context(), assignDTO.ShipmentID, assignDTO.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidShipmentID),
			errors.Is(err, dispatch.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrShipmentNotFound),
			errors.Is(err, dispatch.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrShipmentNotPending),
			errors.Is(err, dispatch.ErrOverCapacity):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := shipmentview.FromEntity(assigned)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
