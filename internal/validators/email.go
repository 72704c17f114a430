package validators

import "strings"

// El email del cliente es opcional; la validación es solo sintáctica
// para no hacer ninguna llamada de red antes de persistir.
func IsEmailValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t")
}
