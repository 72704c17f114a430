package models

import "time"

type Service struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`

	// Baja lógica: los turnos históricos conservan la referencia.
	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
