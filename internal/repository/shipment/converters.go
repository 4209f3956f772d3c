package shipment

import "celeris/internal/entities"

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}
	return &entities.Shipment{
		ID:            s.ID,
		TrackingCode:  s.TrackingCode,
		Status:        entities.ShipmentStatusType(s.Status),
		Origin:        s.Origin,
		Destination:   s.Destination,
		Description:   s.Description,
		WeightKg:      s.WeightKg,
		Cost:          s.Cost,
		DriverID:      s.DriverID,
		SecurityCode:  s.SecurityCode,
		IncidentNote:  s.IncidentNote,
		Rating:        s.Rating,
		CustomerName:  s.CustomerName,
		CustomerEmail: s.CustomerEmail,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func ToDomainList(models []ShipmentDB) []entities.Shipment {
	shipments := make([]entities.Shipment, 0, len(models))
	for i := range models {
		shipments = append(shipments, *ToDomain(&models[i]))
	}
	return shipments
}

func FromDomainModify(s *entities.ShipmentModify) *ShipmentModifyDB {
	if s == nil {
		return nil
	}
	shipmentModifyDB := &ShipmentModifyDB{
		ID:            s.ID,
		TrackingCode:  s.TrackingCode,
		Origin:        s.Origin,
		Destination:   s.Destination,
		Description:   s.Description,
		WeightKg:      s.WeightKg,
		Cost:          s.Cost,
		DriverID:      s.DriverID,
		SecurityCode:  s.SecurityCode,
		IncidentNote:  s.IncidentNote,
		Rating:        s.Rating,
		CustomerName:  s.CustomerName,
		CustomerEmail: s.CustomerEmail,
		CreatedAt:     s.CreatedAt,
	}

	if s.Status != nil {
		status := s.Status.String()
		shipmentModifyDB.Status = &status
	}

	return shipmentModifyDB
}

func ToDriverLoadDomain(l *DriverLoadDB) *entities.DriverLoad {
	if l == nil {
		return nil
	}
	return &entities.DriverLoad{
		DriverID:      l.DriverID,
		DriverName:    l.DriverName,
		CommittedKg:   l.CommittedKg,
		CapacityKg:    l.CapacityKg,
		ActiveParcels: l.ActiveParcels,
	}
}
