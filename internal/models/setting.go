package models

import "time"

// Par clave/valor de configuración del negocio.
// Claves reconocidas: admin_phone_number, business_hours_start,
// business_hours_end, app_name.
type Setting struct {
	Key   string `gorm:"primaryKey;size:50" json:"key"`
	Value string `gorm:"size:255" json:"value"`

	UpdatedAt time.Time `json:"updated_at"`
}
