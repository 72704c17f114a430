package booking

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/barbertrap/booking-api/internal/domain/booking"
	"github.com/barbertrap/booking-api/internal/httperr"
	"github.com/barbertrap/booking-api/internal/models"
	"github.com/barbertrap/booking-api/internal/settings"
)

// ======================================================
// Fakes en memoria para los use cases
// ======================================================

type fakeRepo struct {
	services map[uint]*models.Service
	barbers  map[uint]*models.Barber
	clients  map[string]*models.Client
	bookings []*models.Booking

	nextID uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services: map[uint]*models.Service{},
		barbers:  map[uint]*models.Barber{},
		clients:  map[string]*models.Client{},
	}
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	b, ok := r.barbers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *fakeRepo) UpsertClientByPhone(_ context.Context, name, phone, email string) (*models.Client, error) {
	if c, ok := r.clients[phone]; ok {
		c.Name = name
		c.Email = email
		return c, nil
	}

	r.nextID++
	c := &models.Client{ID: r.nextID, Name: name, Phone: phone, Email: email}
	r.clients[phone] = c
	return c, nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	for _, other := range r.bookings {
		if other.BarberID != b.BarberID {
			continue
		}
		if other.Status == string(domain.StatusCancelled) {
			continue
		}
		if b.StartTime.Before(other.EndTime) && other.StartTime.Before(b.EndTime) {
			return httperr.ErrBusiness("time_conflict")
		}
	}

	r.nextID++
	b.ID = r.nextID
	r.bookings = append(r.bookings, b)
	return nil
}

func (r *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	for i, other := range r.bookings {
		if other.ID == b.ID {
			r.bookings[i] = b
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListBookingsForDay(_ context.Context, barberID uint, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BarberID != barberID || b.Status == string(domain.StatusCancelled) {
			continue
		}
		if b.StartTime.Before(start) || !b.StartTime.Before(end) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeRepo) ListBookingsForPeriod(_ context.Context, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.StartTime.Before(start) || !b.StartTime.Before(end) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

// ------------------------------------------------------

type stubSettings struct {
	cfg settings.Settings
	err error
}

func (s stubSettings) Load(context.Context) (settings.Settings, error) {
	return s.cfg, s.err
}

func defaultSettings() stubSettings {
	return stubSettings{cfg: settings.Settings{
		AdminPhone: "5491100000000",
		HoursStart: 9,
		HoursEnd:   19,
		AppName:    "Barber Trap",
	}}
}

// ------------------------------------------------------

type recorder struct {
	messages []string
}

func (r *recorder) Dispatch(message string) {
	r.messages = append(r.messages, message)
}
