package pricing

// Engine считает стоимость отправления. Чистая функция от маршрута и веса:
// никаких обращений к БД, одинаковые аргументы всегда дают одинаковую цену.
type Engine struct{}

func New() *Engine {
	return &Engine{}
}

const (
	baseFareLocal    = 50.0
	baseFareNearby   = 70.0
	baseFareFarZone  = 200.0
	baseFareMidZone  = 150.0
	baseFareStandard = 120.0

	perKgRate = 15.0
)

// Quote возвращает цену маршрута: базовый тариф по неупорядоченной паре
// городов плюс надбавка за вес. Вес 0 означает "еще не тарифицировано"
// и дает цену 0, а не ошибку.
func (e *Engine) Quote(origin, destination string, weightKg float64) (float64, error) {
	if !IsKnownCity(origin) || !IsKnownCity(destination) {
		return 0, ErrUnknownCity
	}
	if weightKg < 0 {
		return 0, ErrInvalidWeight
	}
	if weightKg == 0 {
		return 0, nil
	}

	return baseFare(origin, destination) + weightKg*perKgRate, nil
}

// baseFare симметричен: fare(a,b) == fare(b,a).
func baseFare(origin, destination string) float64 {
	switch {
	case origin == destination:
		return baseFareLocal
	case isPair(origin, destination, CityTlaxcalaCentro, CityChiautempan):
		return baseFareNearby
	case origin == CityCalpulalpan || destination == CityCalpulalpan:
		return baseFareFarZone
	case origin == CityHuamantla || destination == CityHuamantla:
		return baseFareMidZone
	default:
		return baseFareStandard
	}
}

func isPair(a, b, x, y string) bool {
	return (a == x && b == y) || (a == y && b == x)
}
