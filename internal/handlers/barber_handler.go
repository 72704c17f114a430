package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/barbertrap/booking-api/internal/domain/booking"
	"github.com/barbertrap/booking-api/internal/httpresp"
	"github.com/barbertrap/booking-api/internal/models"
	"github.com/barbertrap/booking-api/internal/timezone"
)

type BarberHandler struct {
	db *gorm.DB
	tz string
}

func NewBarberHandler(db *gorm.DB, tz string) *BarberHandler {
	return &BarberHandler{db: db, tz: tz}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateBarberRequest struct {
	Name *string `json:"name,omitempty"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Order("id ASC").
		Find(&barbers).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_barbers"})
		return
	}

	httpresp.OK(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	barber := models.Barber{Name: req.Name}
	if err := h.db.Create(&barber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_barber"})
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "barber_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_barber"})
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}

	if err := h.db.Save(&barber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_barber"})
		return
	}

	httpresp.OK(c, barber)
}

// Delete rechaza la baja mientras el barbero tenga turnos futuros
// activos: primero hay que cancelarlos o reasignarlos.
func (h *BarberHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "barber_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_barber"})
		return
	}

	var upcoming int64
	h.db.Model(&models.Booking{}).
		Where(
			"barber_id = ? AND status IN ? AND start_time > ?",
			barber.ID,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
			timezone.NowIn(h.tz),
		).
		Count(&upcoming)

	if upcoming > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "barber_has_upcoming_bookings"})
		return
	}

	if err := h.db.Delete(&barber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_barber"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
