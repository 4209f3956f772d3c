package driver

import "celeris/internal/entities"

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}
	return &entities.Driver{
		ID:            d.ID,
		Name:          d.Name,
		Phone:         d.Phone,
		CapacityKg:    d.CapacityKg,
		ActivityState: entities.DriverActivityType(d.ActivityState),
		Rating:        d.Rating,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func ToDomainList(models []DriverDB) []entities.Driver {
	drivers := make([]entities.Driver, 0, len(models))
	for i := range models {
		drivers = append(drivers, *ToDomain(&models[i]))
	}
	return drivers
}

func FromDomainModify(d *entities.DriverModify) *DriverModifyDB {
	if d == nil {
		return nil
	}
	driverModifyDB := &DriverModifyDB{
		ID:         d.ID,
		Name:       d.Name,
		Phone:      d.Phone,
		CapacityKg: d.CapacityKg,
		Rating:     d.Rating,
	}

	if d.ActivityState != nil {
		state := d.ActivityState.String()
		driverModifyDB.ActivityState = &state
	}

	return driverModifyDB
}
