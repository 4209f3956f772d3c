package shipment_link_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"celeris/internal/generated/dto"
	"celeris/internal/handlers/rest/shipmentview"
	"celeris/internal/service/tracking"
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
	var linkDTO dto.ShipmentLinkRequest
	err := json.NewDecoder(r.Body).Decode(&linkDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var knownCodes []string
	if linkDTO.KnownCodes != nil {
		knownCodes = *linkDTO.KnownCodes
	}

	shipmentEntity, err := h.service.Link(r.Context(), linkDTO.TrackingCode, knownCodes)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrInvalidTrackingCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, tracking.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, tracking.ErrAlreadyTracked):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := shipmentview.TrackedFromEntity(shipmentEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
