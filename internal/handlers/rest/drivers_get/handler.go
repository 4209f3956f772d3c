package drivers_get

import (
	"encoding/json"
	"net/http"

	"celeris/internal/generated/dto"
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
	drivers, err := h.service.GetDrivers(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]dto.Driver, 0, len(drivers))
	for _, driverEntity := range drivers {
		response = append(response, dto.Driver{
			ID:            driverEntity.ID,
			Name:          driverEntity.Name,
			Phone:         driverEntity.Phone,
			CapacityKg:    driverEntity.CapacityKg,
			ActivityState: driverEntity.ActivityState.String(),
			Rating:        driverEntity.Rating,
			CreatedAt:     driverEntity.CreatedAt,
			UpdatedAt:     driverEntity.UpdatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
