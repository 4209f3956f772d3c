package delivery_confirm_post

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
	var confirmDTO dto.DeliveryConfirmRequest
	err := json.NewDecoder(r.Body).Decode(&confirmDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var inputCode string
	if confirmDTO.SecurityCode != nil {
		inputCode = *confirmDTO.SecurityCode
	}

	delivered, err := h.service.ConfirmDelivery(r.Context(), confirmDTO.ShipmentID, inputCode)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidShipmentID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrInvalidSecurityCode):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, delivery.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrShipmentNotEnRoute):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := shipmentview.FromEntity(delivered)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
