package access

import "celeris/internal/entities"

// Checker отвечает на один вопрос: разрешена ли роли данная операция.
// Проверка явная и тестируемая — вместо вывода отказа из "ноль строк
// изменилось" на уровне хранилища.
type Checker struct{}

func New() *Checker {
	return &Checker{}
}

var roleCapabilities = map[entities.Role]map[entities.Capability]struct{}{
	entities.RoleReceptionist: {
		entities.CapCreateShipment: {},
		entities.CapTrack:          {},
	},
	entities.RoleWarehouse: {
		entities.CapDispatch: {},
		entities.CapTrack:    {},
	},
	entities.RoleDriver: {
		entities.CapConfirmDelivery: {},
		entities.CapTrack:           {},
		entities.CapToggleActivity:  {},
	},
	entities.RoleCustomer: {
		entities.CapTrack: {},
		entities.CapRate:  {},
	},
	entities.RoleManager: {
		entities.CapTrack:         {},
		entities.CapReadReports:   {},
		entities.CapManageDrivers: {},
	},
}

// Check возвращает nil, если роль владеет capability. Построчные права
// (водитель трогает только свои отправления, клиент — только свой email)
// остаются предусловием вызывающей стороны.
func (c *Checker) Check(role entities.Role, capability entities.Capability) error {
	caps, ok := roleCapabilities[role]
	if !ok {
		return ErrUnknownRole
	}

	if _, ok := caps[capability]; !ok {
		return ErrPermissionDenied
	}
	return nil
}
