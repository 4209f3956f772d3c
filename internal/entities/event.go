package entities

import "time"

// ShipmentEvent — уведомление об изменении отправления. Публикуется после
// фиксации транзакции; потребители (дашборды, нотификации) сами решают,
// тянуть ли актуальное состояние по tracking code.
type ShipmentEvent struct {
	ShipmentID    int64
	TrackingCode  string
	Status        ShipmentStatusType
	DriverID      *int64
	CustomerEmail string
	OccurredAt    time.Time
}
