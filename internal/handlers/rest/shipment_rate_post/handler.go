package shipment_rate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"celeris/internal/generated/dto"
	"celeris/internal/handlers/rest/shipmentview"
	"celeris/internal/service/rating"
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
	var rateDTO dto.ShipmentRateRequest
	err := json.NewDecoder(r.Body).Decode(&rateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	rated, err := h.service.Rate(r.Context(), rateDTO.ShipmentID, rateDTO.Stars)
	if err != nil {
		switch {
		case errors.Is(err, rating.ErrInvalidShipmentID),
			errors.Is(err, rating.ErrInvalidRating):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rating.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, rating.ErrShipmentNotDelivered),
			errors.Is(err, rating.ErrAlreadyRated):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := shipmentview.FromEntity(rated)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
