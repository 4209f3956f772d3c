package shipment

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidDescription(description string) bool {
	return strings.TrimSpace(description) != ""
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
