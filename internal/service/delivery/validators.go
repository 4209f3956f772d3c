package delivery

import "strings"

func isValidIncidentNote(note string) bool {
	return strings.TrimSpace(note) != ""
}
