package models

import "time"

// Notificación interna del panel de administración.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Message string `gorm:"size:500;not null" json:"message"`
	Read    bool   `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
