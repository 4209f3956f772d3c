package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlekSi/pointer"

	"celeris/internal/entities"
	"celeris/internal/repository"
)

// Driver — реестр водителей: имя, телефон, грузоподъемность, состояние
// активности. Грузоподъемность здесь только хранится; инвариант нагрузки
// охраняет dispatch.
type Driver struct {
	repository Repository
}

func New(repository Repository) *Driver {
	return &Driver{
		repository: repository,
	}
}

func (s *Driver) CreateDriver(ctx context.Context, driverModify entities.DriverModify) (int64, error) {
	if driverModify.Name == nil ||
		driverModify.Phone == nil ||
		driverModify.CapacityKg == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*driverModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*driverModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidCapacity(*driverModify.CapacityKg) {
		return 0, ErrInvalidCapacity
	}

	if driverModify.ActivityState == nil {
		driverModify.ActivityState = pointer.To(entities.DefaultActivityState)
	} else if !isValidActivityState(driverModify.ActivityState.String()) {
		return 0, ErrInvalidActivityState
	}

	if driverModify.Rating == nil {
		driverModify.Rating = pointer.To(entities.DefaultDriverRating)
	} else if !isValidRating(*driverModify.Rating) {
		return 0, ErrInvalidRating
	}

	id, err := s.repository.Create(ctx, driverModify)
	if err != nil {
		if errors.Is(err, repository.ErrDriverPhoneTaken) {
			return 0, ErrConflict
		}
		return 0, fmt.Errorf("create driver: %w", err)
	}

	return id, nil
}

func (s *Driver) UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.ID == nil || *driverModify.ID <= 0 {
		return nil, ErrInvalidDriverID
	}

	if driverModify.Name == nil &&
		driverModify.Phone == nil &&
		driverModify.CapacityKg == nil &&
		driverModify.ActivityState == nil &&
		driverModify.Rating == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if driverModify.Name != nil && !isValidName(*driverModify.Name) {
		return nil, ErrInvalidName
	}
	if driverModify.Phone != nil && !isValidPhone(*driverModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if driverModify.CapacityKg != nil && !isValidCapacity(*driverModify.CapacityKg) {
		return nil, ErrInvalidCapacity
	}
	if driverModify.ActivityState != nil && !isValidActivityState(driverModify.ActivityState.String()) {
		return nil, ErrInvalidActivityState
	}
	if driverModify.Rating != nil && !isValidRating(*driverModify.Rating) {
		return nil, ErrInvalidRating
	}

	driver, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDriverNotFound):
			return nil, ErrDriverNotFound
		case errors.Is(err, repository.ErrDriverPhoneTaken):
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("update driver: %w", err)
	}
	return driver, nil
}

func (s *Driver) GetDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	if id <= 0 {
		return nil, ErrInvalidDriverID
	}

	driver, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDriverNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, fmt.Errorf("get driver: %w", err)
	}

	return driver, nil
}

func (s *Driver) GetDrivers(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get drivers: %w", err)
	}

	return drivers, nil
}
