package shipments_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"celeris/internal/entities"
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
	email := r.URL.Query().Get("email")

	var (
		shipments []entities.Shipment
		err       error
	)
	if email != "" {
		shipments, err = h.service.ListByCustomer(r.Context(), email)
	} else {
		shipments, err = h.service.ListAll(r.Context())
	}
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := shipmentview.ListFromEntities(shipments)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
