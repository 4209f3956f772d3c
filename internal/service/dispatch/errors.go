package dispatch

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidShipmentID = errors.New("invalid shipment id")
	ErrInvalidDriverID   = errors.New("invalid driver id")

	ErrShipmentNotFound = errors.New("shipment not found")
	ErrDriverNotFound   = errors.New("driver not found")

	// ErrShipmentNotPending — отправление не в статусе received,
	// назначать водителя не на что.
	ErrShipmentNotPending = errors.New("shipment is not pending dispatch")

	// ErrShipmentNotEnRoute — откатывать можно только активную доставку.
	ErrShipmentNotEnRoute = errors.New("shipment is not en route")

	ErrOverCapacity = errors.New("driver over capacity")
)

// OverCapacityError несет цифры отказа: сколько получилось бы и сколько
// влезает. errors.Is(err, ErrOverCapacity) продолжает работать через Unwrap.
type OverCapacityError struct {
	DriverID    int64
	ProjectedKg float64
	CapacityKg  float64
}

func (e *OverCapacityError) Error() string {
	return fmt.Sprintf("driver %d over capacity: projected %.2fkg exceeds %.2fkg",
		e.DriverID, e.ProjectedKg, e.CapacityKg)
}

func (e *OverCapacityError) Unwrap() error {
	return ErrOverCapacity
}
