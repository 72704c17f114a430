package notify

import (
	"fmt"
	"net/url"

	"github.com/barbertrap/booking-api/internal/validators"
)

// Link arma un deep-link wa.me listo para abrir desde el panel.
// Devuelve "" si el teléfono queda vacío después de sanitizar:
// sin número no hay link, y el caller simplemente no lo muestra.
func Link(phone, message string) string {
	digits := validators.SanitizePhone(phone)
	if digits == "" {
		return ""
	}

	q := url.Values{}
	q.Set("text", message)

	return fmt.Sprintf("https://wa.me/%s?%s", digits, q.Encode())
}
