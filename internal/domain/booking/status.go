package booking

import "github.com/barbertrap/booking-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pendiente"
	StatusConfirmed Status = "confirmado"
	StatusCancelled Status = "cancelado"
	StatusCompleted Status = "completado"
)

func InitialStatus() Status {
	return StatusPending
}

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal: cancelado y completado no admiten más transiciones
func IsTerminal(s Status) bool {
	return s == StatusCancelled || s == StatusCompleted
}

// ===============================
// Transitions
// ===============================

// CanTransition valida el ciclo de vida del turno:
//
//	pendiente  → confirmado | cancelado | completado
//	confirmado → completado | cancelado
func CanTransition(from, to Status) error {
	if !IsValid(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	if IsTerminal(from) || from == to {
		return httperr.ErrBusiness("invalid_state")
	}

	switch from {
	case StatusPending:
		return nil
	case StatusConfirmed:
		if to == StatusCompleted || to == StatusCancelled {
			return nil
		}
	}

	return httperr.ErrBusiness("invalid_state")
}
