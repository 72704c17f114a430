package notify

import (
	"fmt"
	"time"
)

// Mensajes en castellano, el idioma del negocio.

var spanishWeekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

func weekdayES(t time.Time) string {
	return spanishWeekdays[int(t.Weekday())]
}

// "sábado 07/02"
func formatDayMonth(t time.Time) string {
	return fmt.Sprintf("%s %s", weekdayES(t), t.Format("02/01"))
}

// "sábado 07/02/2026"
func formatLongDate(t time.Time) string {
	return fmt.Sprintf("%s %s", weekdayES(t), t.Format("02/01/2006"))
}

// ===============================
// WhatsApp (cliente / admin)
// ===============================

func NewBookingMessage(appName, clientName, serviceName, clientPhone string, start time.Time) string {
	return fmt.Sprintf(
		"*Nueva Reserva - %s* 💈\n\n*Cliente:* %s\n*Servicio:* %s\n*Fecha:* %s\n*Hora:* %s\n*Teléfono:* %s",
		appName, clientName, serviceName,
		formatDayMonth(start), start.Format("15:04"), clientPhone,
	)
}

func ConfirmedMessage(appName, clientName, serviceName string, start time.Time) string {
	return fmt.Sprintf(
		"*¡Turno Confirmado en %s!* ✅\n\n¡Hola %s!\n\nTe confirmamos tu turno para el servicio de *%s*.\n\n*Fecha:* %s\n*Hora:* %s\n\n¡Te esperamos!",
		appName, clientName, serviceName,
		formatLongDate(start), start.Format("15:04"),
	)
}

func CancelledMessage(appName, clientName string) string {
	return fmt.Sprintf(
		"Hola %s, te escribimos de *%s*.\n\nLo sentimos no estamos disponibles esa fecha ¿para cuando podriamos reprogramar? , disculpa las molestias",
		clientName, appName,
	)
}

// ===============================
// Panel interno
// ===============================

func InternalNewBooking(clientName, serviceName, clientPhone string, start time.Time) string {
	return fmt.Sprintf(
		"Nueva Reserva! Cliente: %s, Fecha: %s a las %s, Servicio: %s, Teléfono: %s.",
		clientName, start.Format("02/01/2006"), start.Format("15:04"),
		serviceName, clientPhone,
	)
}

func InternalConfirmed(clientName string) string {
	return fmt.Sprintf("Turno de %s ha sido confirmado.", clientName)
}

func InternalCancelled(clientName, serviceName string) string {
	return fmt.Sprintf("Turno de %s (%s) ha sido cancelado.", clientName, serviceName)
}

func InternalCompleted(clientName, serviceName string) string {
	return fmt.Sprintf("Turno de %s (%s) completado y archivado.", clientName, serviceName)
}

func InternalServiceAdded(name string) string {
	return fmt.Sprintf("Nuevo servicio %q añadido.", name)
}

func InternalServiceUpdated(name string) string {
	return fmt.Sprintf("Servicio %q actualizado.", name)
}

func InternalServiceRemoved(name string) string {
	return fmt.Sprintf("Servicio %q eliminado.", name)
}
