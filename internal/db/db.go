package db

import (
	"log"
	"time"

	"github.com/barbertrap/booking-api/internal/config"
	"github.com/barbertrap/booking-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barber{},
		&models.Service{},
		&models.Client{},
		&models.Booking{},
		&models.Setting{},
		&models.Notification{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedDefaults(db)

	return db
}

// seedDefaults deja el negocio operable en el primer arranque.
func seedDefaults(db *gorm.DB) {
	var barbers int64
	db.Model(&models.Barber{}).Count(&barbers)
	if barbers == 0 {
		db.Create(&models.Barber{Name: "Barbero Principal"})
	}

	defaults := []models.Setting{
		{Key: "business_hours_start", Value: "9"},
		{Key: "business_hours_end", Value: "19"},
		{Key: "app_name", Value: "Barber Trap"},
	}
	for _, s := range defaults {
		var count int64
		db.Model(&models.Setting{}).Where("key = ?", s.Key).Count(&count)
		if count == 0 {
			db.Create(&s)
		}
	}
}
