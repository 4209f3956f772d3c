package driver_activity_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"celeris/internal/entities"
	"celeris/internal/generated/dto"
	"celeris/internal/service/driver"
	"celeris/pkg/logger"
)

// Handler переключает состояние активности водителя (active/resting).
// Узкая ручка для самого водителя: профиль целиком правится менеджером
// через PUT /driver.
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
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var activityDTO dto.DriverActivityUpdate
	err = json.NewDecoder(r.Body).Decode(&activityDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	activityState := entities.DriverActivityType(activityDTO.ActivityState)
	driverModifyEntity := entities.DriverModify{
		ID:            &id,
		ActivityState: &activityState,
	}

	res, err := h.service.UpdateDriver(r.Context(), driverModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrInvalidDriverID),
			errors.Is(err, driver.ErrInvalidActivityState):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
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
