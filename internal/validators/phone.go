package validators

import "strings"

// SanitizePhone descarta todo lo que no sea dígito.
// "+54 911-2233" → "549112233".
func SanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsPhoneValid acepta teléfonos de 8 a 15 dígitos ya sanitizados
// (incluyendo código de país).
func IsPhoneValid(sanitized string) bool {
	return len(sanitized) >= 8 && len(sanitized) <= 15
}
