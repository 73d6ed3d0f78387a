package validators

import "strings"

// IsEmailShapeValid checks the minimal local@domain shape. No DNS lookups
// here; deliverability is not this service's problem.
func IsEmailShapeValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.ContainsAny(email, " \t") {
		return false
	}

	return true
}

// Normalize lowercases and trims an email so lookups and unique indexes see
// one canonical form.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
