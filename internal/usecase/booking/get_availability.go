package booking

import (
	"context"
	"log"
	"time"

	domain "github.com/barbertrap/booking-api/internal/domain/booking"
	"github.com/barbertrap/booking-api/internal/httperr"
	"github.com/barbertrap/booking-api/internal/timezone"
)

type AvailabilityInput struct {
	ServiceID uint
	BarberID  uint
	Date      time.Time
}

type GetAvailability struct {
	repo     domain.Repository
	settings SettingsProvider
	tz       string
}

func NewGetAvailability(
	repo domain.Repository,
	settings SettingsProvider,
	tz string,
) *GetAvailability {
	return &GetAvailability{repo: repo, settings: settings, tz: tz}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]domain.TimeSlot, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	cfg, err := uc.settings.Load(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.HoursStart >= cfg.HoursEnd {
		// Configuración rota: sin slots, pero no es un error del cliente.
		log.Printf("invalid business hours: start=%d end=%d", cfg.HoursStart, cfg.HoursEnd)
		return []domain.TimeSlot{}, nil
	}

	loc := in.Date.Location()
	dayStart := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	existing, err := uc.repo.ListBookingsForDay(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	booked := make([]domain.TimeRange, 0, len(existing))
	for _, b := range existing {
		booked = append(booked, domain.TimeRange{Start: b.StartTime, End: b.EndTime})
	}

	duration := time.Duration(service.DurationMin) * time.Minute

	starts := domain.GenerateSlots(domain.SlotQuery{
		DurationMin:    service.DurationMin,
		Date:           in.Date,
		HoursStart:     cfg.HoursStart,
		HoursEnd:       cfg.HoursEnd,
		ClosedWeekdays: domain.ClosedWeekdays,
		MinAdvance:     domain.MinAdvanceHours * time.Hour,
		Now:            timezone.NowIn(uc.tz),
		Booked:         booked,
	})

	slots := make([]domain.TimeSlot, 0, len(starts))
	for _, s := range starts {
		slots = append(slots, domain.TimeSlot{
			Start: s.Format("15:04"),
			End:   s.Add(duration).Format("15:04"),
		})
	}

	return slots, nil
}
