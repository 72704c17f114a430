package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barbertrap/booking-api/internal/httperr"
	"github.com/barbertrap/booking-api/internal/httpresp"
	"github.com/barbertrap/booking-api/internal/settings"
	"github.com/barbertrap/booking-api/internal/validators"
)

// settingsStore es lo que el handler necesita del servicio de
// configuración; lo implementa settings.Service.
type settingsStore interface {
	Load(ctx context.Context) (settings.Settings, error)
	Upsert(ctx context.Context, key, value string) error
}

type SettingsHandler struct {
	settings settingsStore
}

func NewSettingsHandler(settingsSvc settingsStore) *SettingsHandler {
	return &SettingsHandler{settings: settingsSvc}
}

type UpdateSettingsRequest struct {
	AdminPhone *string `json:"admin_phone_number,omitempty"`
	HoursStart *int    `json:"business_hours_start,omitempty"`
	HoursEnd   *int    `json:"business_hours_end,omitempty"`
	AppName    *string `json:"app_name,omitempty"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	cfg, err := h.settings.Load(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_settings", "Error al cargar la configuración.")
		return
	}

	httpresp.OK(c, cfg)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ctx := c.Request.Context()

	// La ventana resultante se valida contra lo ya guardado: cambiar
	// una sola de las dos horas no puede dejar apertura >= cierre.
	if req.HoursStart != nil || req.HoursEnd != nil {
		current, err := h.settings.Load(ctx)
		if err != nil {
			httperr.Internal(c, "failed_to_load_settings", "Error al cargar la configuración.")
			return
		}

		start, end := current.HoursStart, current.HoursEnd
		if req.HoursStart != nil {
			start = *req.HoursStart
		}
		if req.HoursEnd != nil {
			end = *req.HoursEnd
		}

		if start >= end {
			httperr.BadRequest(c, "invalid_business_hours", "La apertura debe ser anterior al cierre.")
			return
		}
	}

	if req.AdminPhone != nil {
		// Solo dígitos, sin símbolo adelante; vacío deshabilita los links.
		digits := validators.SanitizePhone(*req.AdminPhone)
		if *req.AdminPhone != "" && !validators.IsPhoneValid(digits) {
			httperr.BadRequest(c, "invalid_phone", "Teléfono inválido.")
			return
		}
		if err := h.settings.Upsert(ctx, settings.KeyAdminPhone, digits); err != nil {
			mapBookingError(c, err)
			return
		}
	}

	if req.HoursStart != nil {
		if err := h.settings.Upsert(ctx, settings.KeyHoursStart, strconv.Itoa(*req.HoursStart)); err != nil {
			mapBookingError(c, err)
			return
		}
	}

	if req.HoursEnd != nil {
		if err := h.settings.Upsert(ctx, settings.KeyHoursEnd, strconv.Itoa(*req.HoursEnd)); err != nil {
			mapBookingError(c, err)
			return
		}
	}

	if req.AppName != nil {
		if err := h.settings.Upsert(ctx, settings.KeyAppName, *req.AppName); err != nil {
			mapBookingError(c, err)
			return
		}
	}

	cfg, err := h.settings.Load(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_load_settings", "Error al cargar la configuración.")
		return
	}

	httpresp.OK(c, cfg)
}
