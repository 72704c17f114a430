package booking

import (
	"context"

	"github.com/barbertrap/booking-api/internal/settings"
)

// SettingsProvider entrega la configuración vigente del negocio.
// Lo implementa settings.Service.
type SettingsProvider interface {
	Load(ctx context.Context) (settings.Settings, error)
}

// Notifier recibe los mensajes del panel interno.
// Lo implementa notifications.Dispatcher.
type Notifier interface {
	Dispatch(message string)
}
