package booking

import (
	"context"
	"strings"
	"time"

	domain "github.com/barbertrap/booking-api/internal/domain/booking"
	"github.com/barbertrap/booking-api/internal/httperr"
	"github.com/barbertrap/booking-api/internal/models"
	"github.com/barbertrap/booking-api/internal/notify"
	"github.com/barbertrap/booking-api/internal/timezone"
	"github.com/barbertrap/booking-api/internal/validators"
)

// ======================================================
// INPUT / RESULT
// ======================================================

type CreateBookingInput struct {
	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint
	BarberID  uint

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

type CreateBookingResult struct {
	Booking *models.Booking

	// Link wa.me para avisarle al admin; vacío si no hay
	// admin_phone_number configurado.
	WhatsAppURL string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	settings SettingsProvider
	notifier Notifier
	tz       string
}

func NewCreateBooking(
	repo domain.Repository,
	settings SettingsProvider,
	notifier Notifier,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		settings: settings,
		notifier: notifier,
		tz:       tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*CreateBookingResult, error) {

	// --------------------------------------------------
	// Validación, antes de tocar el store
	// --------------------------------------------------
	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		return nil, httperr.ErrBusiness("missing_client_name")
	}

	phone := validators.SanitizePhone(in.ClientPhone)
	if !validators.IsPhoneValid(phone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	email := strings.TrimSpace(in.ClientEmail)
	if email != "" && !validators.IsEmailValid(email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	// --------------------------------------------------
	// Configuración y fecha en el timezone del negocio
	// --------------------------------------------------
	cfg, err := uc.settings.Load(ctx)
	if err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(uc.tz),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// Servicio: tiene que existir y estar activo
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if service.DurationMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_service_duration")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// La duración vigente al crear queda congelada en el turno.
	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// Antelación mínima
	// --------------------------------------------------
	now := timezone.NowIn(uc.tz)
	if start.Before(now.Add(domain.MinAdvanceHours * time.Hour)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// Día cerrado y horario de atención
	// --------------------------------------------------
	if domain.ClosedWeekdays[start.Weekday()] {
		return nil, httperr.ErrBusiness("closed_day")
	}

	if cfg.HoursStart >= cfg.HoursEnd {
		return nil, httperr.ErrBusiness("invalid_business_hours")
	}

	loc := start.Location()
	open := time.Date(start.Year(), start.Month(), start.Day(), cfg.HoursStart, 0, 0, 0, loc)
	close := time.Date(start.Year(), start.Month(), start.Day(), cfg.HoursEnd, 0, 0, 0, loc)
	if start.Before(open) || end.After(close) {
		return nil, httperr.ErrBusiness("outside_business_hours")
	}

	// --------------------------------------------------
	// Cliente (upsert por teléfono)
	// --------------------------------------------------
	client, err := uc.repo.UpsertClientByPhone(ctx, name, phone, email)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Creación (el repo re-valida superposición en la tx)
	// --------------------------------------------------
	b := &models.Booking{
		ClientID:  client.ID,
		ServiceID: service.ID,
		BarberID:  barber.ID,
		StartTime: start,
		EndTime:   end,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	b.Client = *client
	b.Service = *service
	b.Barber = *barber

	// --------------------------------------------------
	// Notificaciones
	// --------------------------------------------------
	uc.notifier.Dispatch(notify.InternalNewBooking(name, service.Name, phone, start))

	var waURL string
	if cfg.AdminPhone != "" {
		waURL = notify.Link(
			cfg.AdminPhone,
			notify.NewBookingMessage(cfg.AppName, name, service.Name, phone, start),
		)
	}

	return &CreateBookingResult{Booking: b, WhatsAppURL: waURL}, nil
}
