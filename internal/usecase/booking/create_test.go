package booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barbertrap/booking-api/internal/domain/booking"
	"github.com/barbertrap/booking-api/internal/httperr"
	"github.com/barbertrap/booking-api/internal/models"
)

// Las fechas de prueba están lejos en el futuro para que la antelación
// mínima (relativa al reloj real) nunca moleste: martes 3/9/2030.
const futureTuesday = "2030-09-03"

func seededRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.services[1] = &models.Service{ID: 1, Name: "Corte", Price: 8000, DurationMin: 30, Active: true}
	repo.services[2] = &models.Service{ID: 2, Name: "Viejo", Price: 5000, DurationMin: 30, Active: false}
	repo.barbers[1] = &models.Barber{ID: 1, Name: "Barbero Principal"}
	return repo
}

func newCreate(repo *fakeRepo, cfg stubSettings, rec *recorder) *CreateBooking {
	return NewCreateBooking(repo, cfg, rec, "UTC")
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		ClientName:  "Juan",
		ClientPhone: "+54 911-2233",
		ClientEmail: "juan@example.com",
		ServiceID:   1,
		BarberID:    1,
		Date:        futureTuesday,
		Time:        "14:00",
	}
}

func TestCreateBooking_OK(t *testing.T) {
	repo := seededRepo()
	rec := &recorder{}
	uc := newCreate(repo, defaultSettings(), rec)

	res, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	b := res.Booking
	assert.Equal(t, string(domain.StatusPending), b.Status)
	assert.Equal(t, time.Date(2030, time.September, 3, 14, 0, 0, 0, time.UTC), b.StartTime)
	assert.Equal(t, time.Date(2030, time.September, 3, 14, 30, 0, 0, time.UTC), b.EndTime)

	// el cliente quedó con el teléfono sanitizado
	client, ok := repo.clients["549112233"]
	require.True(t, ok)
	assert.Equal(t, "Juan", client.Name)
	assert.Equal(t, client.ID, b.ClientID)

	// link para el admin + aviso en el panel
	assert.True(t, strings.HasPrefix(res.WhatsAppURL, "https://wa.me/5491100000000?"))
	require.Len(t, rec.messages, 1)
	assert.Contains(t, rec.messages[0], "Nueva Reserva")
	assert.Contains(t, rec.messages[0], "Juan")
}

func TestCreateBooking_NoAdminPhone(t *testing.T) {
	cfg := defaultSettings()
	cfg.cfg.AdminPhone = ""

	uc := newCreate(seededRepo(), cfg, &recorder{})

	res, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "", res.WhatsAppURL)
}

func TestCreateBooking_UpsertsExistingClient(t *testing.T) {
	repo := seededRepo()
	repo.clients["549112233"] = &models.Client{ID: 7, Name: "J.", Phone: "549112233"}

	uc := newCreate(repo, defaultSettings(), &recorder{})

	res, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, uint(7), res.Booking.ClientID)
	assert.Equal(t, "Juan", repo.clients["549112233"].Name)
	assert.Len(t, repo.clients, 1)
}

func TestCreateBooking_RejectsBeforeTouchingStore(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*CreateBookingInput)
		code string
	}{
		{"sin nombre", func(in *CreateBookingInput) { in.ClientName = "  " }, "missing_client_name"},
		{"teléfono corto", func(in *CreateBookingInput) { in.ClientPhone = "123" }, "invalid_phone"},
		{"teléfono sin dígitos", func(in *CreateBookingInput) { in.ClientPhone = "no tengo" }, "invalid_phone"},
		{"email roto", func(in *CreateBookingInput) { in.ClientEmail = "no-es-un-mail" }, "invalid_email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := seededRepo()
			uc := newCreate(repo, defaultSettings(), &recorder{})

			in := validInput()
			tc.mut(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)

			assert.Empty(t, repo.clients)
			assert.Empty(t, repo.bookings)
		})
	}
}

func TestCreateBooking_BusinessRules(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*CreateBookingInput)
		code string
	}{
		{"servicio inexistente", func(in *CreateBookingInput) { in.ServiceID = 99 }, "service_not_found"},
		{"servicio dado de baja", func(in *CreateBookingInput) { in.ServiceID = 2 }, "service_not_found"},
		{"barbero inexistente", func(in *CreateBookingInput) { in.BarberID = 99 }, "barber_not_found"},
		{"fecha ilegible", func(in *CreateBookingInput) { in.Date = "03/09/2030" }, "invalid_date_or_time"},
		{"muy encima", func(in *CreateBookingInput) { in.Date = "2020-01-07" }, "too_soon"},
		{"domingo", func(in *CreateBookingInput) { in.Date = "2030-09-01" }, "closed_day"},
		{"antes de abrir", func(in *CreateBookingInput) { in.Time = "08:00" }, "outside_business_hours"},
		{"termina después del cierre", func(in *CreateBookingInput) { in.Time = "18:45" }, "outside_business_hours"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newCreate(seededRepo(), defaultSettings(), &recorder{})

			in := validInput()
			tc.mut(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}

func TestCreateBooking_ClosingBoundary(t *testing.T) {
	uc := newCreate(seededRepo(), defaultSettings(), &recorder{})

	// 18:30 + 30min termina exactamente a las 19:00: válido
	in := validInput()
	in.Time = "18:30"

	_, err := uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateBooking_TimeConflict(t *testing.T) {
	repo := seededRepo()
	repo.bookings = append(repo.bookings, &models.Booking{
		ID:        50,
		BarberID:  1,
		StartTime: time.Date(2030, time.September, 3, 13, 45, 0, 0, time.UTC),
		EndTime:   time.Date(2030, time.September, 3, 14, 15, 0, 0, time.UTC),
		Status:    string(domain.StatusConfirmed),
	})

	rec := &recorder{}
	uc := newCreate(repo, defaultSettings(), rec)

	_, err := uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "time_conflict"), "got %v", err)
	assert.Empty(t, rec.messages)
}

func TestCreateBooking_CancelledDoesNotBlock(t *testing.T) {
	repo := seededRepo()
	repo.bookings = append(repo.bookings, &models.Booking{
		ID:        50,
		BarberID:  1,
		StartTime: time.Date(2030, time.September, 3, 14, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2030, time.September, 3, 14, 30, 0, 0, time.UTC),
		Status:    string(domain.StatusCancelled),
	})

	uc := newCreate(repo, defaultSettings(), &recorder{})

	_, err := uc.Execute(context.Background(), validInput())
	assert.NoError(t, err)
}
