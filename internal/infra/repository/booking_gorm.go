package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barbertrap/booking-api/internal/domain/booking"
	"github.com/barbertrap/booking-api/internal/httperr"
	"github.com/barbertrap/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, serviceID).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	barberID uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, barberID).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

// UpsertClientByPhone: el teléfono identifica al cliente; una nueva
// reserva pisa nombre y email con lo último que cargó.
func (r *BookingGormRepository) UpsertClientByPhone(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	client := models.Client{
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "email", "updated_at"}),
		}).
		Create(&client).Error; err != nil {
		return nil, err
	}

	if client.ID == 0 {
		if err := r.db.WithContext(ctx).
			Where("phone = ?", phone).
			First(&client).Error; err != nil {
			return nil, err
		}
	}

	return &client, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

// CreateBooking re-valida la superposición dentro de la transacción,
// bloqueando los turnos en conflicto. La lista de slots que vio el
// cliente puede estar vieja; esta es la verificación autoritativa.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
				b.BarberID,
				string(domain.StatusCancelled),
				b.EndTime,
				b.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Create(b).Error
	})
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		First(&b, bookingID).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Availability / listings
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"barber_id = ? AND status <> ? AND start_time >= ? AND start_time < ?",
			barberID, string(domain.StatusCancelled), start, end,
		).
		Order("start_time ASC").
		Find(&bs).Error; err != nil {
		return nil, err
	}

	return bs, nil
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bs []models.Booking

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Barber").
		Where(
			"start_time >= ? AND start_time < ?",
			start,
			end,
		).
		Order("start_time ASC").
		Find(&bs).Error

	if err != nil {
		return nil, err
	}

	return bs, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
