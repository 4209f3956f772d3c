package entities

import "time"

type Shipment struct {
	ID            int64
	TrackingCode  string
	Status        ShipmentStatusType
	Origin        string
	Destination   string
	Description   string
	WeightKg      float64
	Cost          float64
	DriverID      *int64
	SecurityCode  *string
	IncidentNote  *string
	Rating        *int32
	CustomerName  string
	CustomerEmail string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ShipmentStatusType string

const (
	ShipmentReceived  ShipmentStatusType = "received"
	ShipmentEnRoute   ShipmentStatusType = "en_route"
	ShipmentDelivered ShipmentStatusType = "delivered"
	ShipmentIncident  ShipmentStatusType = "incident"
)

func (s ShipmentStatusType) String() string {
	return string(s)
}

// IsTerminal сообщает, допускает ли статус дальнейшие переходы.
func (s ShipmentStatusType) IsTerminal() bool {
	return s == ShipmentDelivered || s == ShipmentIncident
}

type ShipmentModify struct {
	ID            *int64
	TrackingCode  *string
	Status        *ShipmentStatusType
	Origin        *string
	Destination   *string
	Description   *string
	WeightKg      *float64
	Cost          *float64
	DriverID      *int64
	SecurityCode  *string
	IncidentNote  *string
	Rating        *int32
	CustomerName  *string
	CustomerEmail *string
	CreatedAt     *time.Time
}

// DriverLoad — производная сводка занятости водителя: суммарный вес
// его активных (en_route) отправлений против паспортной грузоподъемности.
type DriverLoad struct {
	DriverID      int64
	DriverName    string
	CommittedKg   float64
	CapacityKg    float64
	ActiveParcels int64
}
