package delivery_incident_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"celeris/internal/generated/dto"
	"celeris/internal/handlers/rest/shipmentview"
	"celeris/internal/service/delivery"
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
	var incidentDTO dto.DeliveryIncidentRequest
	err := json.NewDecoder(r.Body).Decode(&incidentDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	flagged, err := h.service.ReportIncident(r.Context(), incidentDTO.ShipmentID, incidentDTO.Note)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidShipmentID),
			errors.Is(err, delivery.ErrMissingIncidentNote):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrShipmentNotEnRoute):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := shipmentview.FromEntity(flagged)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
