package driver

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") || len(phone) < 2 {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidCapacity(capacityKg float64) bool {
	return capacityKg > 0
}

func isValidActivityState(state string) bool {
	switch state {
	case "active", "resting":
		return true
	default:
		return false
	}
}

// Рейтинг — скользящее среднее из внешнего сервиса отзывов; здесь лишь
// границы шкалы.
func isValidRating(rating float64) bool {
	return rating >= 1 && rating <= 5
}
