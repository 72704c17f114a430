package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/barbertrap/booking-api/internal/httperr"
)

// Mensajes para el usuario final, en castellano.
var businessMessages = map[string]string{
	"missing_client_name":      "Por favor, completa tu nombre y teléfono.",
	"invalid_phone":            "El formato del teléfono no es válido. Ingresa solo números, incluyendo código de país.",
	"invalid_email":            "El email no parece válido.",
	"invalid_date_or_time":     "Fecha u hora inválida.",
	"service_not_found":        "Servicio no encontrado.",
	"invalid_service_duration": "El servicio no tiene una duración válida.",
	"barber_not_found":         "Barbero no encontrado.",
	"too_soon":                 "Ese horario ya no está disponible, elige otro.",
	"closed_day":               "Ese día el local está cerrado.",
	"invalid_business_hours":   "El horario de atención está mal configurado.",
	"outside_business_hours":   "Fuera del horario de atención.",
	"time_conflict":            "Ese horario acaba de ser reservado, elige otro.",
	"booking_not_found":        "Turno no encontrado.",
	"invalid_status":           "Estado inválido.",
	"invalid_state":            "El turno no admite ese cambio de estado.",
	"unknown_setting_key":      "Clave de configuración desconocida.",
}

// mapBookingError traduce errores de negocio a 400 y el resto a 500.
func mapBookingError(c *gin.Context, err error) {
	for code, msg := range businessMessages {
		if httperr.IsBusiness(err, code) {
			if code == "booking_not_found" {
				httperr.NotFound(c, code, msg)
				return
			}
			httperr.BadRequest(c, code, msg)
			return
		}
	}

	if httperr.IsExclusionConflict(err) || httperr.IsUniqueViolation(err) {
		httperr.BadRequest(c, "time_conflict", businessMessages["time_conflict"])
		return
	}

	httperr.Internal(c, "internal_error", "Algo salió mal, intenta de nuevo.")
}
