package pricing

// Обслуживаемые города Тласкалы. Тарифная матрица в pricing.go
// опирается именно на эти значения.
const (
	CityTlaxcalaCentro = "Tlaxcala Centro"
	CityApizaco        = "Apizaco"
	CityHuamantla      = "Huamantla"
	CityChiautempan    = "Chiautempan"
	CityCalpulalpan    = "Calpulalpan"
)

func Cities() []string {
	return []string{
		CityTlaxcalaCentro,
		CityApizaco,
		CityHuamantla,
		CityChiautempan,
		CityCalpulalpan,
	}
}

func IsKnownCity(city string) bool {
	switch city {
	case CityTlaxcalaCentro, CityApizaco, CityHuamantla, CityChiautempan, CityCalpulalpan:
		return true
	default:
		return false
	}
}
