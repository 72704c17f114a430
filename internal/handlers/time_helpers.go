package handlers

import (
	"time"

	"github.com/barbertrap/booking-api/internal/timezone"
)

func parseDateIn(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(tz),
	)
}
