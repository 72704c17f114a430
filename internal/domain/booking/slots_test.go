package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// martes 1 de septiembre de 2026, día hábil
var testDay = time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(2026, time.September, 1, hour, min, 0, 0, time.UTC)
}

func baseQuery() SlotQuery {
	return SlotQuery{
		DurationMin:    30,
		Date:           testDay,
		HoursStart:     9,
		HoursEnd:       19,
		ClosedWeekdays: ClosedWeekdays,
		MinAdvance:     MinAdvanceHours * time.Hour,
		Now:            at(8, 0),
	}
}

func TestGenerateSlots_FullDay(t *testing.T) {
	q := baseQuery()
	q.Booked = []TimeRange{{Start: at(10, 0), End: at(10, 30)}}

	slots := GenerateSlots(q)
	require.NotEmpty(t, slots)

	// now=08:00 + 2h de antelación → nada antes de las 10:00; el turno
	// de 10:00-10:30 tapa los candidatos de 10:00 y 10:15.
	assert.Equal(t, at(10, 30), slots[0])
	assert.Equal(t, at(10, 45), slots[1])

	// último inicio posible: 18:30, que termina justo a las 19:00
	assert.Equal(t, at(18, 30), slots[len(slots)-1])

	// 10:30..18:30 cada 15 minutos
	assert.Len(t, slots, 33)

	assert.NotContains(t, slots, at(10, 0))
	assert.NotContains(t, slots, at(10, 15))
	assert.NotContains(t, slots, at(18, 45))
}

func TestGenerateSlots_EndAtCloseIsAllowed(t *testing.T) {
	q := baseQuery()
	q.DurationMin = 60
	q.Now = at(0, 0)

	slots := GenerateSlots(q)
	require.NotEmpty(t, slots)

	// 18:00 + 60min = 19:00 exacto, entra; 18:15 ya se pasa.
	assert.Equal(t, at(18, 0), slots[len(slots)-1])
	assert.NotContains(t, slots, at(18, 15))
}

func TestGenerateSlots_MinAdvanceBoundary(t *testing.T) {
	q := baseQuery()

	slots := GenerateSlots(q)
	require.NotEmpty(t, slots)

	// exactamente now+2h se permite, un paso antes no
	assert.Equal(t, at(10, 0), slots[0])
	assert.NotContains(t, slots, at(9, 45))
}

func TestGenerateSlots_TouchingEdgesDoNotConflict(t *testing.T) {
	q := baseQuery()
	q.Now = at(0, 0)
	q.MinAdvance = 0
	q.Booked = []TimeRange{{Start: at(10, 0), End: at(10, 30)}}

	slots := GenerateSlots(q)

	// termina 10:00 en punto: no choca con el turno que arranca 10:00
	assert.Contains(t, slots, at(9, 30))
	// arranca 10:30 en punto: tampoco choca
	assert.Contains(t, slots, at(10, 30))

	assert.NotContains(t, slots, at(9, 45))
	assert.NotContains(t, slots, at(10, 0))
	assert.NotContains(t, slots, at(10, 15))
}

func TestGenerateSlots_DegenerateInputs(t *testing.T) {
	t.Run("duración cero", func(t *testing.T) {
		q := baseQuery()
		q.DurationMin = 0
		assert.Empty(t, GenerateSlots(q))
	})

	t.Run("duración negativa", func(t *testing.T) {
		q := baseQuery()
		q.DurationMin = -15
		assert.Empty(t, GenerateSlots(q))
	})

	t.Run("horario invertido", func(t *testing.T) {
		q := baseQuery()
		q.HoursStart = 19
		q.HoursEnd = 9
		assert.Empty(t, GenerateSlots(q))
	})

	t.Run("horario vacío", func(t *testing.T) {
		q := baseQuery()
		q.HoursStart = 10
		q.HoursEnd = 10
		assert.Empty(t, GenerateSlots(q))
	})

	t.Run("duración más larga que el día", func(t *testing.T) {
		q := baseQuery()
		q.DurationMin = 11 * 60
		assert.Empty(t, GenerateSlots(q))
	})
}

func TestGenerateSlots_ClosedDays(t *testing.T) {
	sunday := time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

	for _, day := range []time.Time{sunday, monday} {
		q := baseQuery()
		q.Date = day
		q.Now = day.Add(-48 * time.Hour)
		assert.Empty(t, GenerateSlots(q), day.Weekday())
	}
}

func TestGenerateSlots_NeverOverlapsBooked(t *testing.T) {
	q := baseQuery()
	q.DurationMin = 50
	q.Now = at(0, 0)
	q.Booked = []TimeRange{
		{Start: at(9, 30), End: at(10, 20)},
		{Start: at(13, 0), End: at(14, 0)},
		{Start: at(18, 15), End: at(19, 0)},
	}

	slots := GenerateSlots(q)
	require.NotEmpty(t, slots)

	duration := 50 * time.Minute
	for _, s := range slots {
		end := s.Add(duration)
		assert.False(t, end.After(at(19, 0)), "slot %v termina después del cierre", s)
		for _, b := range q.Booked {
			conflict := s.Before(b.End) && b.Start.Before(end)
			assert.False(t, conflict, "slot %v pisa el turno %v-%v", s, b.Start, b.End)
		}
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	q := baseQuery()
	q.Booked = []TimeRange{{Start: at(12, 0), End: at(12, 45)}}

	first := GenerateSlots(q)
	second := GenerateSlots(q)

	assert.Equal(t, first, second)
}
