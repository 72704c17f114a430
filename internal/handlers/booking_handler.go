package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/barbertrap/booking-api/internal/domain/booking"
	"github.com/barbertrap/booking-api/internal/httperr"
	"github.com/barbertrap/booking-api/internal/httpresp"
	"github.com/barbertrap/booking-api/internal/timezone"
	ucBooking "github.com/barbertrap/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *ucBooking.CreateBooking
	updateStatus *ucBooking.UpdateStatus
	list         *ucBooking.ListBookings
	tz           string
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	updateStatus *ucBooking.UpdateStatus,
	list *ucBooking.ListBookings,
	tz string,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		updateStatus: updateStatus,
		list:         list,
		tz:           tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	BarberID    uint   `json:"barber_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE (reserva manual del admin, mismo core que la pública)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
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

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Fecha obligatoria.")
		return
	}

	date, err := parseDateIn(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	bookings, err := h.list.ByDate(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Error al listar turnos.")
		return
	}

	httpresp.OK(c, bookings)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Año y mes son obligatorios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Año inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mes inválido.")
		return
	}

	bookings, err := h.list.ByMonth(
		c.Request.Context(),
		year,
		time.Month(month),
		timezone.Location(h.tz),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Error al listar turnos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":     year,
		"month":    month,
		"bookings": bookings,
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Turno inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	result, err := h.updateStatus.Execute(
		c.Request.Context(),
		uint(id),
		domain.Status(req.Status),
	)

	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking":      result.Booking,
		"whatsapp_url": result.WhatsAppURL,
	})
}
