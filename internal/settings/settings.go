package settings

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/barbertrap/booking-api/internal/cache"
	"github.com/barbertrap/booking-api/internal/httperr"
	"github.com/barbertrap/booking-api/internal/models"
)

// Claves reconocidas del negocio.
const (
	KeyAdminPhone = "admin_phone_number"
	KeyHoursStart = "business_hours_start"
	KeyHoursEnd   = "business_hours_end"
	KeyAppName    = "app_name"
)

// Defaults cuando la clave no existe.
const (
	DefaultHoursStart = 9
	DefaultHoursEnd   = 19
	DefaultAppName    = "Barber Trap"
)

const (
	cacheKey = "settings:v1"
	cacheTTL = 5 * time.Minute
)

// Settings es la vista tipada de la tabla clave/valor.
type Settings struct {
	AdminPhone string `json:"admin_phone_number"`
	HoursStart int    `json:"business_hours_start"`
	HoursEnd   int    `json:"business_hours_end"`
	AppName    string `json:"app_name"`
}

type Service struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewService(db *gorm.DB, c *cache.Cache) *Service {
	return &Service{db: db, cache: c}
}

// Load arma la configuración con defaults para claves ausentes.
func (s *Service) Load(ctx context.Context) (Settings, error) {
	if raw, ok := s.cache.Get(ctx, cacheKey); ok {
		var cached Settings
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
	}

	var rows []models.Setting
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return Settings{}, err
	}

	out := Settings{
		HoursStart: DefaultHoursStart,
		HoursEnd:   DefaultHoursEnd,
		AppName:    DefaultAppName,
	}

	for _, row := range rows {
		switch row.Key {
		case KeyAdminPhone:
			out.AdminPhone = row.Value
		case KeyAppName:
			if row.Value != "" {
				out.AppName = row.Value
			}
		case KeyHoursStart:
			if v, err := strconv.Atoi(row.Value); err == nil {
				out.HoursStart = v
			}
		case KeyHoursEnd:
			if v, err := strconv.Atoi(row.Value); err == nil {
				out.HoursEnd = v
			}
		}
	}

	if raw, err := json.Marshal(out); err == nil {
		s.cache.Set(ctx, cacheKey, string(raw), cacheTTL)
	}

	return out, nil
}

// Upsert guarda una clave reconocida y descarta la copia cacheada.
func (s *Service) Upsert(ctx context.Context, key, value string) error {
	switch key {
	case KeyAdminPhone, KeyAppName:
		// strings libres
	case KeyHoursStart, KeyHoursEnd:
		v, err := strconv.Atoi(value)
		if err != nil || v < 0 || v > 23 {
			return httperr.ErrBusiness("invalid_business_hours")
		}
	default:
		return httperr.ErrBusiness("unknown_setting_key")
	}

	row := models.Setting{Key: key, Value: value}
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error; err != nil {
		return err
	}

	s.cache.Delete(ctx, cacheKey)
	return nil
}
