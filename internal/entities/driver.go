package entities

import "time"

type Driver struct {
	ID            int64
	Name          string
	Phone         string
	CapacityKg    float64
	ActivityState DriverActivityType
	Rating        float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type DriverActivityType string

const (
	DriverActive  DriverActivityType = "active"
	DriverResting DriverActivityType = "resting"
)

const DefaultActivityState = DriverActive

// DefaultDriverRating — стартовый рейтинг нового водителя; дальше его
// пересчитывает внешний сервис отзывов, ядро значение только читает.
const DefaultDriverRating = 5.0

func (t DriverActivityType) String() string {
	return string(t)
}

type DriverModify struct {
	ID            *int64
	Name          *string
	Phone         *string
	CapacityKg    *float64
	ActivityState *DriverActivityType
	Rating        *float64
}
