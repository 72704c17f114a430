package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbertrap/booking-api/internal/httpresp"
	"github.com/barbertrap/booking-api/internal/models"
	"github.com/barbertrap/booking-api/internal/notifications"
	"github.com/barbertrap/booking-api/internal/notify"
)

type ServiceHandler struct {
	db       *gorm.DB
	notifier *notifications.Dispatcher
}

func NewServiceHandler(db *gorm.DB, notifier *notifications.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, notifier: notifier}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"min=0"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	activeStr := c.Query("active")

	q := h.db.Session(&gorm.Session{})
	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var services []models.Service
	if err := q.
		Order("id ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	service := models.Service{
		Name:        req.Name,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Active:      true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	h.notifier.Dispatch(notify.InternalServiceAdded(service.Name))

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_service"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_price"})
			return
		}
		service.Price = *req.Price
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_duration"})
			return
		}
		// Los turnos existentes conservan su end_time original.
		service.DurationMin = *req.DurationMin
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	h.notifier.Dispatch(notify.InternalServiceUpdated(service.Name))

	httpresp.OK(c, service)
}

// Delete desactiva el servicio en lugar de borrarlo: los turnos
// históricos siguen resolviendo su referencia.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_service"})
		return
	}

	service.Active = false
	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_service"})
		return
	}

	h.notifier.Dispatch(notify.InternalServiceRemoved(service.Name))

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
