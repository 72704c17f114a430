package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbertrap/booking-api/internal/cache"
	"github.com/barbertrap/booking-api/internal/config"
	"github.com/barbertrap/booking-api/internal/handlers"
	infraRepo "github.com/barbertrap/booking-api/internal/infra/repository"
	"github.com/barbertrap/booking-api/internal/middleware"
	"github.com/barbertrap/booking-api/internal/notifications"
	"github.com/barbertrap/booking-api/internal/settings"
	ucBooking "github.com/barbertrap/booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	settingsCache := cache.New(cfg.RedisAddr)
	settingsSvc := settings.NewService(db, settingsCache)

	notificationStore := notifications.New(db)
	notifier := notifications.NewDispatcher(notificationStore)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		settingsSvc,
		notifier,
		cfg.Timezone,
	)

	updateStatusUC := ucBooking.NewUpdateStatus(
		bookingRepo,
		settingsSvc,
		notifier,
		cfg.Timezone,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		settingsSvc,
		cfg.Timezone,
	)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)

	publicHandler := handlers.NewPublicHandler(
		db,
		settingsSvc,
		availabilityUC,
		createBookingUC,
		cfg.Timezone,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateStatusUC,
		listBookingsUC,
		cfg.Timezone,
	)

	serviceHandler := handlers.NewServiceHandler(db, notifier)
	barberHandler := handlers.NewBarberHandler(db, cfg.Timezone)
	clientHandler := handlers.NewClientHandler(db)
	settingsHandler := handlers.NewSettingsHandler(settingsSvc)
	notificationHandler := handlers.NewNotificationHandler(notificationStore)
	statsHandler := handlers.NewStatsHandler(db, cfg.Timezone)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (flujo de reserva)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/config", publicHandler.GetConfig)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA (panel admin)
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/bookings", bookingHandler.ListByDate)
			secured.GET("/bookings/month", bookingHandler.ListByMonth)
			secured.POST("/bookings", bookingHandler.Create)
			secured.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/barbers", barberHandler.List)
			secured.POST("/barbers", barberHandler.Create)
			secured.PATCH("/barbers/:id", barberHandler.Update)
			secured.DELETE("/barbers/:id", barberHandler.Delete)

			secured.GET("/clients", clientHandler.List)

			secured.GET("/settings", settingsHandler.Get)
			secured.PUT("/settings", settingsHandler.Update)

			secured.GET("/notifications", notificationHandler.List)
			secured.POST("/notifications/read", notificationHandler.MarkAllRead)

			secured.GET("/stats", statsHandler.Month)
		}
	}
}
