package shipment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"celeris/internal/entities"
	"celeris/internal/generated/dto"
	"celeris/internal/service/shipment"
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
	var shipmentCreateDTO dto.ShipmentCreate
	err := json.NewDecoder(r.Body).Decode(&shipmentCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shipmentModifyEntity := entities.ShipmentModify{
		Origin:        &shipmentCreateDTO.Origin,
		Destination:   &shipmentCreateDTO.Destination,
		Description:   &shipmentCreateDTO.Description,
		WeightKg:      &shipmentCreateDTO.WeightKg,
		CustomerName:  &shipmentCreateDTO.CustomerName,
		CustomerEmail: &shipmentCreateDTO.CustomerEmail,
	}

	created, err := h.service.CreateShipment(r.Context(), shipmentModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, shipment.ErrInvalidCity),
			errors.Is(err, shipment.ErrInvalidWeight),
			errors.Is(err, shipment.ErrInvalidEmail),
			errors.Is(err, shipment.ErrInvalidCustomerName),
			errors.Is(err, shipment.ErrInvalidDescription):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// security_code отдается единственный раз: приемщица диктует его
	// клиенту, дальше наружу код не выходит.
	response := dto.ShipmentCreateResponse{
		ID:           created.ID,
		TrackingCode: created.TrackingCode,
		Status:       created.Status.String(),
		Cost:         created.Cost,
		SecurityCode: created.SecurityCode,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
