package notifications

import (
	"context"

	"gorm.io/gorm"

	"github.com/barbertrap/booking-api/internal/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Log(message string) error {
	n := models.Notification{Message: message}
	return s.db.Create(&n).Error
}

func (s *Store) List(ctx context.Context, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 50
	}

	var rows []models.Notification
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (s *Store) MarkAllRead(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("read = ?", false).
		Update("read", true).Error
}
