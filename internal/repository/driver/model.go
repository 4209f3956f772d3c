package driver

import "time"

type DriverDB struct {
	ID            int64
	Name          string
	Phone         string
	CapacityKg    float64
	ActivityState string
	Rating        float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type DriverModifyDB struct {
	ID            *int64
	Name          *string
	Phone         *string
	CapacityKg    *float64
	ActivityState *string
	Rating        *float64
}
