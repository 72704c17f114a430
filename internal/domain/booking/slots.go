package booking

import "time"

// ===============================
// Reglas fijas del negocio
// ===============================

const (
	// Paso fijo entre candidatos, no configurable por servicio.
	SlotStrideMinutes = 15

	// Antelación mínima para reservar.
	MinAdvanceHours = 2
)

// Domingo y lunes cerrado.
var ClosedWeekdays = map[time.Weekday]bool{
	time.Sunday: true,
	time.Monday: true,
}

// ===============================
// Types
// ===============================

// Intervalo [Start, End) de un turno existente.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SlotQuery reúne todas las entradas del cálculo de disponibilidad.
// Booked debe traer solo los turnos del barbero para ese día.
type SlotQuery struct {
	DurationMin    int
	Date           time.Time
	HoursStart     int
	HoursEnd       int
	ClosedWeekdays map[time.Weekday]bool
	MinAdvance     time.Duration
	Now            time.Time
	Booked         []TimeRange
}

// ===============================
// Slot generation
// ===============================

// GenerateSlots devuelve los horarios de inicio válidos para un día,
// en orden cronológico. Es una función pura: mismos inputs, mismo output.
//
// Un candidato sobrevive si:
//   - termina a la hora de cierre o antes (igualdad permitida)
//   - empieza en now+MinAdvance o después (igualdad permitida)
//   - no se superpone con ningún turno existente; los extremos que se
//     tocan no cuentan como conflicto (intervalos semiabiertos)
func GenerateSlots(q SlotQuery) []time.Time {
	if q.DurationMin <= 0 {
		return nil
	}
	if q.ClosedWeekdays[q.Date.Weekday()] {
		return nil
	}
	if q.HoursStart >= q.HoursEnd {
		return nil
	}

	loc := q.Date.Location()
	dayStart := time.Date(q.Date.Year(), q.Date.Month(), q.Date.Day(), q.HoursStart, 0, 0, 0, loc)
	dayEnd := time.Date(q.Date.Year(), q.Date.Month(), q.Date.Day(), q.HoursEnd, 0, 0, 0, loc)

	duration := time.Duration(q.DurationMin) * time.Minute
	earliest := q.Now.Add(q.MinAdvance)

	var slots []time.Time

	for cur := dayStart; cur.Before(dayEnd); cur = cur.Add(SlotStrideMinutes * time.Minute) {
		end := cur.Add(duration)

		if end.After(dayEnd) {
			continue
		}
		if cur.Before(earliest) {
			continue
		}
		if overlapsAny(cur, end, q.Booked) {
			continue
		}

		slots = append(slots, cur)
	}

	return slots
}

func overlapsAny(start, end time.Time, booked []TimeRange) bool {
	for _, b := range booked {
		if start.Before(b.End) && b.Start.Before(end) {
			return true
		}
	}
	return false
}
