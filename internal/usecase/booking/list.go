package booking

import (
	"context"
	"time"

	domain "github.com/barbertrap/booking-api/internal/domain/booking"
	"github.com/barbertrap/booking-api/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) ByDate(
	ctx context.Context,
	date time.Time,
) ([]models.Booking, error) {

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24 * time.Hour)

	return uc.repo.ListBookingsForPeriod(ctx, start, end)
}

func (uc *ListBookings) ByMonth(
	ctx context.Context,
	year int,
	month time.Month,
	loc *time.Location,
) ([]models.Booking, error) {

	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	return uc.repo.ListBookingsForPeriod(ctx, start, end)
}
