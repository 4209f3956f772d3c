package tracking

import (
	"regexp"
	"strings"
)

// TLX-<3 буквы города назначения>-<4 цифры>, например TLX-API-8206.
var trackingCodePattern = regexp.MustCompile(`^TLX-[A-Z]{3}-\d{4}$`)

func isValidTrackingCode(code string) bool {
	return trackingCodePattern.MatchString(code)
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
