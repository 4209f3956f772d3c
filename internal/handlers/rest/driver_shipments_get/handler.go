package driver_shipments_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

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
	idStr := mux.Vars(r)["id"]
	driverID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	statuses, ok := parseStatuses(r.URL.Query().Get("statuses"))
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shipments, err := h.service.ListByDriver(r.Context(), driverID, statuses)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrInvalidDriverID):
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

// ?statuses=en_route или ?statuses=delivered,incident. Пустое значение —
// без фильтра, весь список водителя.
func parseStatuses(raw string) ([]entities.ShipmentStatusType, bool) {
	if raw == "" {
		return nil, true
	}

	parts := strings.Split(raw, ",")
	statuses := make([]entities.ShipmentStatusType, 0, len(parts))
	for _, part := range parts {
		status := entities.ShipmentStatusType(strings.TrimSpace(part))
		switch status {
		case entities.ShipmentReceived, entities.ShipmentEnRoute,
			entities.ShipmentDelivered, entities.ShipmentIncident:
			statuses = append(statuses, status)
		default:
			return nil, false
		}
	}
	return statuses, true
}
