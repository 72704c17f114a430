package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbertrap/booking-api/internal/httperr"
	"github.com/barbertrap/booking-api/internal/httpresp"
	"github.com/barbertrap/booking-api/internal/models"
	"github.com/barbertrap/booking-api/internal/settings"
	ucBooking "github.com/barbertrap/booking-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db           *gorm.DB
	settings     *settings.Service
	availability *ucBooking.GetAvailability
	create       *ucBooking.CreateBooking
	tz           string
}

func NewPublicHandler(
	db *gorm.DB,
	settingsSvc *settings.Service,
	availability *ucBooking.GetAvailability,
	create *ucBooking.CreateBooking,
	tz string,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		settings:     settingsSvc,
		availability: availability,
		create:       create,
		tz:           tz,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	BarberID    uint   `json:"barber_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
}

////////////////////////////////////////////////////////
// CONFIG (shell de la SPA)
////////////////////////////////////////////////////////

func (h *PublicHandler) GetConfig(c *gin.Context) {
	cfg, err := h.settings.Load(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_settings", "Error al cargar la configuración.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"app_name":             cfg.AppName,
		"business_hours_start": cfg.HoursStart,
		"business_hours_end":   cfg.HoursEnd,
	})
}

////////////////////////////////////////////////////////
// SERVICES / BARBERS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Error al listar servicios.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Order("id ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Error al listar barberos.")
		return
	}

	httpresp.List(c, barbers)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")
	barberIDStr := c.Query("barber_id")

	if dateStr == "" || serviceIDStr == "" || barberIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Fecha, servicio y barbero obligatorios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Servicio inválido.")
		return
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbero inválido.")
		return
	}

	date, err := parseDateIn(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		ucBooking.AvailabilityInput{
			ServiceID: uint(serviceID),
			BarberID:  uint(barberID),
			Date:      date,
		},
	)

	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	result, err := h.create.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ClientEmail: req.ClientEmail,
			ServiceID:   req.ServiceID,
			BarberID:    req.BarberID,
			Date:        req.Date,
			Time:        req.Time,
		},
	)

	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking":      result.Booking,
		"whatsapp_url": result.WhatsAppURL,
	})
}
