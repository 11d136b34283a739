package utils

import "strings"

// FormatPhone formats a stored phone number for display. Stored values are
// left untouched; this is a presentation concern applied at the API boundary.
// Numbers that don't look like 10-digit North American numbers come back
// unchanged.
func FormatPhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	switch {
	case len(d) == 10:
		return "(" + d[0:3] + ") " + d[3:6] + "-" + d[6:]
	case len(d) == 11 && d[0] == '1':
		return "+1 (" + d[1:4] + ") " + d[4:7] + "-" + d[7:]
	default:
		return phone
	}
}
