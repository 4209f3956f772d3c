package entities

// Role — роль вызывающей стороны. Аутентификация живет снаружи (hosted
// auth), ядро получает роль как уже проверенное утверждение.
type Role string

const (
	RoleReceptionist Role = "receptionist"
	RoleWarehouse    Role = "warehouse"
	RoleDriver       Role = "driver"
	RoleCustomer     Role = "customer"
	RoleManager      Role = "manager"
)

func (r Role) String() string {
	return string(r)
}

// Capability — операция ядра, на которую роль должна иметь право.
type Capability string

const (
	CapCreateShipment  Capability = "create_shipment"
	CapDispatch        Capability = "dispatch"
	CapConfirmDelivery Capability = "confirm_delivery"
	CapTrack           Capability = "track"
	CapRate            Capability = "rate"
	CapReadReports     Capability = "read_reports"
	CapManageDrivers   Capability = "manage_drivers"

	// CapToggleActivity покрывает только переключение собственного
	// состояния активности водителем; владение строкой остается
	// предусловием вызывающей стороны.
	CapToggleActivity Capability = "toggle_activity"
)

func (c Capability) String() string {
	return string(c)
}
