package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"celeris/internal/entities"
	"celeris/internal/repository"
	"celeris/internal/service/pricing"
)

// createAttempts — сколько раз перегенерировать tracking code при коллизии
// уникального индекса.
const createAttempts = 5

// Shipment регистрирует новые отправления со стойки приема: валидация,
// тарификация, генерация кодов, запись в received.
type Shipment struct {
	repository  Repository
	pricer      Pricer
	codeFactory CodeFactory
	notifier    Notifier
}

func New(repository Repository, pricer Pricer, codeFactory CodeFactory, notifier Notifier) *Shipment {
	return &Shipment{
		repository:  repository,
		pricer:      pricer,
		codeFactory: codeFactory,
		notifier:    notifier,
	}
}

// CreateShipment создает отправление. Цена считается ровно один раз и вместе
// с весом больше никогда не меняется; статус всегда received, водитель не
// назначен.
func (s *Shipment) CreateShipment(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	if shipmentModify.CustomerName == nil ||
		shipmentModify.CustomerEmail == nil ||
		shipmentModify.Origin == nil ||
		shipmentModify.Destination == nil ||
		shipmentModify.Description == nil ||
		shipmentModify.WeightKg == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidName(*shipmentModify.CustomerName) {
		return nil, ErrInvalidCustomerName
	}
	if !isValidEmail(*shipmentModify.CustomerEmail) {
		return nil, ErrInvalidEmail
	}
	if !isValidDescription(*shipmentModify.Description) {
		return nil, ErrInvalidDescription
	}

	cost, err := s.pricer.Quote(*shipmentModify.Origin, *shipmentModify.Destination, *shipmentModify.WeightKg)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrUnknownCity):
			return nil, ErrInvalidCity
		case errors.Is(err, pricing.ErrInvalidWeight):
			return nil, ErrInvalidWeight
		default:
			return nil, fmt.Errorf("quote: %w", err)
		}
	}

	status := entities.ShipmentReceived
	createdAt := time.Now().UTC()
	securityCode := s.codeFactory.NewSecurityCode()

	shipmentModify.Status = &status
	shipmentModify.Cost = &cost
	shipmentModify.SecurityCode = &securityCode
	shipmentModify.CreatedAt = &createdAt
	shipmentModify.DriverID = nil
	shipmentModify.IncidentNote = nil
	shipmentModify.Rating = nil

	created, err := s.createWithFreshCode(ctx, shipmentModify)
	if err != nil {
		return nil, err
	}

	s.notifier.ShipmentChanged(ctx, entities.ShipmentEvent{
		ShipmentID:    created.ID,
		TrackingCode:  created.TrackingCode,
		Status:        created.Status,
		CustomerEmail: created.CustomerEmail,
		OccurredAt:    time.Now().UTC(),
	})
	return created, nil
}

// StatusCounts — сводка по статусам для отчетов и фоновых метрик.
func (s *Shipment) StatusCounts(ctx context.Context) (map[entities.ShipmentStatusType]int64, error) {
	counts, err := s.repository.StatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	return counts, nil
}

// createWithFreshCode повторяет INSERT с новым кодом, пока уникальный индекс
// ругается на коллизию.
func (s *Shipment) createWithFreshCode(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	for attempt := 0; attempt < createAttempts; attempt++ {
		trackingCode := s.codeFactory.NewTrackingCode(*shipmentModify.Destination)
		shipmentModify.TrackingCode = &trackingCode

		created, err := s.repository.Create(ctx, shipmentModify)
		if err != nil {
			if errors.Is(err, repository.ErrTrackingCodeTaken) {
				continue
			}
			return nil, fmt.Errorf("create shipment: %w", err)
		}
		return created, nil
	}

	return nil, ErrTrackingCodeExhausted
}
