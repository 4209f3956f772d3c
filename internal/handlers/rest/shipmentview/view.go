// Package shipmentview собирает DTO-представления отправления для REST-ручек.
// Вынесен отдельно, чтобы ручки не дублировали пятнадцать полей маппинга.
package shipmentview

import (
	"celeris/internal/entities"
	"celeris/internal/generated/dto"
)

func FromEntity(shipment *entities.Shipment) dto.Shipment {
	return dto.Shipment{
		ID:            shipment.ID,
		TrackingCode:  shipment.TrackingCode,
		Status:        shipment.Status.String(),
		Origin:        shipment.Origin,
		Destination:   shipment.Destination,
		Description:   shipment.Description,
		WeightKg:      shipment.WeightKg,
		Cost:          shipment.Cost,
		DriverID:      shipment.DriverID,
		IncidentNote:  shipment.IncidentNote,
		Rating:        shipment.Rating,
		CustomerName:  shipment.CustomerName,
		CustomerEmail: shipment.CustomerEmail,
		CreatedAt:     shipment.CreatedAt,
		UpdatedAt:     shipment.UpdatedAt,
	}
}

func ListFromEntities(shipments []entities.Shipment) []dto.Shipment {
	result := make([]dto.Shipment, 0, len(shipments))
	for i := range shipments {
		result = append(result, FromEntity(&shipments[i]))
	}
	return result
}

// TrackedFromEntity — публичное представление: без кода получения и
// контактов клиента, их наружу не отдаем.
func TrackedFromEntity(shipment *entities.Shipment) dto.TrackedShipment {
	return dto.TrackedShipment{
		TrackingCode: shipment.TrackingCode,
		Status:       shipment.Status.String(),
		Origin:       shipment.Origin,
		Destination:  shipment.Destination,
		CreatedAt:    shipment.CreatedAt,
	}
}
