package datemath

import (
	"fmt"
	"time"
)

// ISODateFormat is the canonical date layout used across the service.
const ISODateFormat = "2006-01-02"

// Resolver converts relative day offsets to absolute dates in a fixed timezone.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string.
// e.g. "America/Sao_Paulo"
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// StartOfDay returns midnight at the start of the given day in the resolver's timezone.
func (r *Resolver) StartOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

// OffsetISO returns the ISO date `days` days after the base time.
func (r *Resolver) OffsetISO(base time.Time, days int) string {
	return r.StartOfDay(base.AddDate(0, 0, days)).Format(ISODateFormat)
}

// TodayISO returns the ISO date of the base time's day.
func (r *Resolver) TodayISO(base time.Time) string {
	return r.OffsetISO(base, 0)
}

// TomorrowISO returns the ISO date of the day after the base time.
func (r *Resolver) TomorrowISO(base time.Time) string {
	return r.OffsetISO(base, 1)
}

// WeekStartISO returns the ISO date of the start of the base time's week.
// Weeks start on Sunday (weekday 0).
func (r *Resolver) WeekStartISO(base time.Time) string {
	base = base.In(r.location)
	return r.OffsetISO(base, -int(base.Weekday()))
}

// ParseISO parses an ISO date into midnight of that day in the resolver's timezone.
func (r *Resolver) ParseISO(iso string) (time.Time, error) {
	t, err := time.ParseInLocation(ISODateFormat, iso, r.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO date %q: %w", iso, err)
	}
	return t, nil
}

// Location returns the resolver's timezone.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// Go carries no pt-BR locale data, so calendar names are spelled out here.
var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

var monthNames = map[time.Month]string{
	time.January:   "janeiro",
	time.February:  "fevereiro",
	time.March:     "março",
	time.April:     "abril",
	time.May:       "maio",
	time.June:      "junho",
	time.July:      "julho",
	time.August:    "agosto",
	time.September: "setembro",
	time.October:   "outubro",
	time.November:  "novembro",
	time.December:  "dezembro",
}

// WeekdayName returns the Portuguese name of the weekday.
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

// MonthName returns the Portuguese name of the month.
func MonthName(m time.Month) string {
	return monthNames[m]
}
