package shipmentevents

import "celeris/internal/entities"

func fromDomain(event entities.ShipmentEvent) ShipmentEventMessage {
	return ShipmentEventMessage{
		ShipmentID:    event.ShipmentID,
		TrackingCode:  event.TrackingCode,
		Status:        event.Status.String(),
		DriverID:      event.DriverID,
		CustomerEmail: event.CustomerEmail,
		OccurredAt:    event.OccurredAt,
	}
}
