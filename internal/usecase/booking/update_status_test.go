package booking

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barbertrap/booking-api/internal/domain/booking"
	"github.com/barbertrap/booking-api/internal/httperr"
	"github.com/barbertrap/booking-api/internal/models"
)

func repoWithBooking(status domain.Status) *fakeRepo {
	repo := newFakeRepo()
	repo.bookings = append(repo.bookings, &models.Booking{
		ID:        10,
		ClientID:  1,
		Client:    models.Client{ID: 1, Name: "Juan", Phone: "549112233"},
		ServiceID: 1,
		Service:   models.Service{ID: 1, Name: "Corte", Price: 8000, DurationMin: 30, Active: true},
		BarberID:  1,
		StartTime: time.Date(2030, time.September, 3, 14, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2030, time.September, 3, 14, 30, 0, 0, time.UTC),
		Status:    string(status),
	})
	return repo
}

func newUpdate(repo *fakeRepo, rec *recorder) *UpdateStatus {
	return NewUpdateStatus(repo, defaultSettings(), rec, "UTC")
}

func waText(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	return u.Query().Get("text")
}

func TestUpdateStatus_Confirm(t *testing.T) {
	repo := repoWithBooking(domain.StatusPending)
	rec := &recorder{}
	uc := newUpdate(repo, rec)

	res, err := uc.Execute(context.Background(), 10, domain.StatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), res.Booking.Status)
	assert.Equal(t, string(domain.StatusConfirmed), repo.bookings[0].Status)

	// mensaje de confirmación al teléfono del cliente
	require.True(t, strings.HasPrefix(res.WhatsAppURL, "https://wa.me/549112233?"))
	text := waText(t, res.WhatsAppURL)
	assert.Contains(t, text, "¡Hola Juan!")
	assert.Contains(t, text, "*Corte*")

	require.Len(t, rec.messages, 1)
	assert.Contains(t, rec.messages[0], "confirmado")
}

func TestUpdateStatus_CancelAsksToReschedule(t *testing.T) {
	repo := repoWithBooking(domain.StatusConfirmed)
	rec := &recorder{}
	uc := newUpdate(repo, rec)

	res, err := uc.Execute(context.Background(), 10, domain.StatusCancelled)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), res.Booking.Status)
	require.NotNil(t, res.Booking.CancelledAt)

	text := waText(t, res.WhatsAppURL)
	assert.Contains(t, text, "Hola Juan")
	assert.Contains(t, text, "reprogramar")

	require.Len(t, rec.messages, 1)
	assert.Contains(t, rec.messages[0], "cancelado")
}

func TestUpdateStatus_CompleteIsInternalOnly(t *testing.T) {
	repo := repoWithBooking(domain.StatusPending)
	rec := &recorder{}
	uc := newUpdate(repo, rec)

	res, err := uc.Execute(context.Background(), 10, domain.StatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), res.Booking.Status)
	require.NotNil(t, res.Booking.CompletedAt)

	// completar no le escribe al cliente
	assert.Equal(t, "", res.WhatsAppURL)

	require.Len(t, rec.messages, 1)
	assert.Contains(t, rec.messages[0], "completado")
}

func TestUpdateStatus_TerminalIsFinal(t *testing.T) {
	for _, terminal := range []domain.Status{domain.StatusCancelled, domain.StatusCompleted} {
		repo := repoWithBooking(terminal)
		uc := newUpdate(repo, &recorder{})

		_, err := uc.Execute(context.Background(), 10, domain.StatusConfirmed)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "desde %s: %v", terminal, err)
	}
}

func TestUpdateStatus_UnknownBooking(t *testing.T) {
	uc := newUpdate(newFakeRepo(), &recorder{})

	_, err := uc.Execute(context.Background(), 999, domain.StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"), "got %v", err)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := repoWithBooking(domain.StatusPending)
	uc := newUpdate(repo, &recorder{})

	_, err := uc.Execute(context.Background(), 10, domain.Status("programado"))
	assert.True(t, httperr.IsBusiness(err, "invalid_status"), "got %v", err)

	// el turno quedó como estaba
	assert.Equal(t, string(domain.StatusPending), repo.bookings[0].Status)
}

func TestUpdateStatus_DanglingServiceUsesGenericName(t *testing.T) {
	repo := repoWithBooking(domain.StatusConfirmed)
	repo.bookings[0].Service = models.Service{}

	uc := newUpdate(repo, &recorder{})

	res, err := uc.Execute(context.Background(), 10, domain.StatusCancelled)
	require.NoError(t, err)
	require.NotEmpty(t, res.WhatsAppURL)
}
