package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barbertrap/booking-api/internal/domain/booking"
	"github.com/barbertrap/booking-api/internal/httperr"
	"github.com/barbertrap/booking-api/internal/models"
	"github.com/barbertrap/booking-api/internal/timezone"
)

type StatsHandler struct {
	db *gorm.DB
	tz string
}

func NewStatsHandler(db *gorm.DB, tz string) *StatsHandler {
	return &StatsHandler{db: db, tz: tz}
}

// ======================================================
// RESUMEN MENSUAL
// ======================================================

// Month arma el resumen del panel: turnos del mes por estado y
// recaudación de los confirmados, con el precio vigente del servicio.
func (h *StatsHandler) Month(c *gin.Context) {
	now := timezone.NowIn(h.tz)

	year := now.Year()
	month := int(now.Month())

	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2000 || n > 2100 {
			httperr.BadRequest(c, "invalid_year", "Año inválido.")
			return
		}
		year = n
	}

	if v := c.Query("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			httperr.BadRequest(c, "invalid_month", "Mes inválido.")
			return
		}
		month = n
	}

	loc := timezone.Location(h.tz)
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	var bookings []models.Booking
	if err := h.db.
		Preload("Service").
		Where("start_time >= ? AND start_time < ?", start, end).
		Find(&bookings).Error; err != nil {

		httperr.Internal(c, "failed_to_load_stats", "Error al calcular el resumen.")
		return
	}

	byStatus := map[string]int{}
	var revenue float64

	for _, b := range bookings {
		byStatus[b.Status]++
		if b.Status == string(domain.StatusConfirmed) {
			revenue += b.Service.Price
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"year":      year,
		"month":     month,
		"total":     len(bookings),
		"by_status": byStatus,
		"revenue":   revenue,
	})
}
