package tracking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"celeris/internal/entities"
	"celeris/internal/repository"
)

// Tracking — read-side ядра: поиск по коду, лента клиента, маршрут водителя
// и сводный список для менеджера. Ничего не мутирует.
type Tracking struct {
	repository Repository
}

func New(repository Repository) *Tracking {
	return &Tracking{
		repository: repository,
	}
}

// GetByTrackingCode находит отправление по публичному коду. Редактирование
// чувствительных полей для неаутентифицированных вызовов — забота
// транспортного слоя (DTO без security_code и customer_email).
func (t *Tracking) GetByTrackingCode(ctx context.Context, code string) (*entities.Shipment, error) {
	code = normalizeCode(code)
	if !isValidTrackingCode(code) {
		return nil, ErrInvalidTrackingCode
	}

	shipment, err := t.repository.GetShipmentByTrackingCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrShipmentNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("get by tracking code: %w", err)
	}
	return shipment, nil
}

// ListByCustomer возвращает отправления клиента, свежие первыми. Повторный
// запрос отдает актуальный полный список — это не курсор.
func (t *Tracking) ListByCustomer(ctx context.Context, email string) ([]entities.Shipment, error) {
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	shipments, err := t.repository.ListShipmentsByCustomerEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("list by customer: %w", err)
	}
	return shipments, nil
}

// ListByDriver отдает отправления водителя в заданных статусах: активный
// маршрут (en_route) либо историю (delivered, incident).
func (t *Tracking) ListByDriver(ctx context.Context, driverID int64, statuses []entities.ShipmentStatusType) ([]entities.Shipment, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}

	shipments, err := t.repository.ListShipmentsByDriver(ctx, driverID, statuses)
	if err != nil {
		return nil, fmt.Errorf("list by driver: %w", err)
	}
	return shipments, nil
}

// ListAll — read-only агрегатный доступ менеджера.
func (t *Tracking) ListAll(ctx context.Context) ([]entities.Shipment, error) {
	shipments, err := t.repository.ListShipments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all: %w", err)
	}
	return shipments, nil
}

// Link проверяет, можно ли добавить код в локальный список отслеживания
// вызывающего. Общее состояние не мутируется: "подписка" живет только на
// стороне клиента.
func (t *Tracking) Link(ctx context.Context, code string, knownCodes []string) (*entities.Shipment, error) {
	code = normalizeCode(code)
	if !isValidTrackingCode(code) {
		return nil, ErrInvalidTrackingCode
	}

	for _, known := range knownCodes {
		if normalizeCode(known) == code {
			return nil, ErrAlreadyTracked
		}
	}

	shipment, err := t.repository.GetShipmentByTrackingCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrShipmentNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, fmt.Errorf("link by tracking code: %w", err)
	}
	return shipment, nil
}

// Коды копируют из писем и чатов: терпим пробелы и нижний регистр.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
