package shipment

import "time"

type ShipmentDB struct {
	ID            int64
	TrackingCode  string
	Status        string
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

type ShipmentModifyDB struct {
	ID            *int64
	TrackingCode  *string
	Status        *string
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

type DriverLoadDB struct {
	DriverID      int64
	DriverName    string
	CommittedKg   float64
	CapacityKg    float64
	ActiveParcels int64
}
