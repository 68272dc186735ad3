package pricing

import "quinta-booking/internal/domain/booking"

// HolidayCalendar maps ISO dates to holiday names for one country and
// year set. Days with a holiday name take the weekend rate.
type HolidayCalendar map[string]string

func (h HolidayCalendar) NameOf(d booking.Date) (string, bool) {
	name, ok := h[d.Key()]
	return name, ok
}

func (h HolidayCalendar) IsHoliday(d booking.Date) bool {
	_, ok := h[d.Key()]
	return ok
}

// ArgentinaHolidays is the national holiday set for 2026.
func ArgentinaHolidays() HolidayCalendar {
	return HolidayCalendar{
		"2026-01-01": "Año Nuevo",
		"2026-02-16": "Carnaval",
		"2026-02-17": "Carnaval",
		"2026-03-24": "Día de la Memoria",
		"2026-04-02": "Malvinas",
		"2026-04-03": "Viernes Santo",
		"2026-05-01": "Día del Trabajador",
		"2026-05-25": "Revolución de Mayo",
		"2026-06-20": "Día de la Bandera",
		"2026-07-09": "Día de la Independencia",
		"2026-12-08": "Inmaculada Concepción",
		"2026-12-25": "Navidad",
	}
}
