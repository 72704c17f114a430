package booking

import (
	"context"

	domain "github.com/barbertrap/booking-api/internal/domain/booking"
	"github.com/barbertrap/booking-api/internal/httperr"
	"github.com/barbertrap/booking-api/internal/models"
	"github.com/barbertrap/booking-api/internal/notify"
	"github.com/barbertrap/booking-api/internal/timezone"
)

type UpdateStatusResult struct {
	Booking *models.Booking

	// Mensaje para el cliente (confirmación o pedido de reprogramación);
	// vacío cuando la transición no genera aviso al cliente.
	WhatsAppURL string
}

type UpdateStatus struct {
	repo     domain.Repository
	settings SettingsProvider
	notifier Notifier
	tz       string
}

func NewUpdateStatus(
	repo domain.Repository,
	settings SettingsProvider,
	notifier Notifier,
	tz string,
) *UpdateStatus {
	return &UpdateStatus{
		repo:     repo,
		settings: settings,
		notifier: notifier,
		tz:       tz,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	bookingID uint,
	newStatus domain.Status,
) (*UpdateStatusResult, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(uc.tz)

	switch newStatus {
	case domain.StatusConfirmed:
		err = domain.Confirm(b)
	case domain.StatusCancelled:
		err = domain.Cancel(b, now)
	case domain.StatusCompleted:
		err = domain.Complete(b, now)
	default:
		err = httperr.ErrBusiness("invalid_status")
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	cfg, err := uc.settings.Load(ctx)
	if err != nil {
		return nil, err
	}

	// Referencia colgante: el servicio pudo haber sido borrado antes
	// del soft-delete; se muestra un genérico.
	serviceName := b.Service.Name
	if serviceName == "" {
		serviceName = "servicio"
	}

	var waURL string

	switch newStatus {
	case domain.StatusConfirmed:
		uc.notifier.Dispatch(notify.InternalConfirmed(b.Client.Name))
		waURL = notify.Link(
			b.Client.Phone,
			notify.ConfirmedMessage(cfg.AppName, b.Client.Name, serviceName, b.StartTime),
		)

	case domain.StatusCancelled:
		uc.notifier.Dispatch(notify.InternalCancelled(b.Client.Name, serviceName))
		waURL = notify.Link(
			b.Client.Phone,
			notify.CancelledMessage(cfg.AppName, b.Client.Name),
		)

	case domain.StatusCompleted:
		// Completar no avisa al cliente, solo queda en el panel.
		uc.notifier.Dispatch(notify.InternalCompleted(b.Client.Name, serviceName))
	}

	return &UpdateStatusResult{Booking: b, WhatsAppURL: waURL}, nil
}
