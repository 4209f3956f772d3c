package driver_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"celeris/internal/entities"
	"celeris/internal/generated/dto"
	"celeris/internal/service/driver"
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
	var driverUpdateDTO dto.DriverUpdate
	err := json.NewDecoder(r.Body).Decode(&driverUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverModifyEntity := entities.DriverModify{
		ID: &driverUpdateDTO.ID,
	}

	// Опциональные параметры
	if driverUpdateDTO.Name != nil {
		driverModifyEntity.Name = driverUpdateDTO.Name
	}
	if driverUpdateDTO.Phone != nil {
		driverModifyEntity.Phone = driverUpdateDTO.Phone
	}
	if driverUpdateDTO.CapacityKg != nil {
		driverModifyEntity.CapacityKg = driverUpdateDTO.CapacityKg
	}
	if driverUpdateDTO.ActivityState != nil {
		activityState := entities.DriverActivityType(*driverUpdateDTO.ActivityState)
		driverModifyEntity.ActivityState = &activityState
	}

	res, err := h.service.UpdateDriver(r.Context(), driverModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrMissingRequiredFields),
			errors.Is(err, driver.ErrInvalidDriverID),
			errors.Is(err, driver.ErrInvalidName),
			errors.Is(err, driver.ErrInvalidPhone),
			errors.Is(err, driver.ErrInvalidCapacity),
			errors.Is(err, driver.ErrInvalidActivityState):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Driver{
		ID:            res.ID,
		Name:          res.Name,
		Phone:         res.Phone,
		CapacityKg:    res.CapacityKg,
		ActivityState: res.ActivityState.String(),
		Rating:        res.Rating,
		CreatedAt:     res.CreatedAt,
		UpdatedAt:     res.UpdatedAt,
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
