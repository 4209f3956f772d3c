package shipmentevents

import "time"

// ShipmentEventMessage — JSON-конверт события в топике. Контракт для
// внешних потребителей (почтовые уведомления, аналитика).
type ShipmentEventMessage struct {
	ShipmentID    int64     `json:"shipment_id"`
	TrackingCode  string    `json:"tracking_code"`
	Status        string    `json:"status"`
	DriverID      *int64    `json:"driver_id,omitempty"`
	CustomerEmail string    `json:"customer_email"`
	OccurredAt    time.Time `json:"occurred_at"`
}
