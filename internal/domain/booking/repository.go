package booking

import (
	"context"
	"time"

	"github.com/barbertrap/booking-api/internal/models"
)

type Repository interface {
	// -------- Reference data --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	GetBarber(
		ctx context.Context,
		barberID uint,
	) (*models.Barber, error)

	// -------- Client --------
	UpsertClientByPhone(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Booking (create / conflict) --------
	// CreateBooking inserta el turno re-validando superposición dentro
	// de una transacción; devuelve ErrBusiness("time_conflict") si otro
	// turno ganó el horario.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Availability / listings --------
	// ListBookingsForDay devuelve los turnos no cancelados del barbero
	// que arrancan en [start, end), ordenados por inicio.
	ListBookingsForDay(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
