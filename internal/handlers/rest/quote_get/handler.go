package quote_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"celeris/internal/generated/dto"
	"celeris/internal/service/pricing"
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
	query := r.URL.Query()

	origin := query.Get("origin")
	destination := query.Get("destination")

	weightKg, err := strconv.ParseFloat(query.Get("weight_kg"), 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cost, err := h.service.Quote(origin, destination, weightKg)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrUnknownCity),
			errors.Is(err, pricing.ErrInvalidWeight):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.QuoteResponse{
		Origin:      origin,
		Destination: destination,
		WeightKg:    weightKg,
		Cost:        cost,
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
