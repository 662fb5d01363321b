package nlu

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"jarvis-assistant/pkg/datemath"
)

// Formatter renders ISO dates and times back into Portuguese phrasing for
// reply messages.
type Formatter struct {
	dates *datemath.Resolver
	now   func() time.Time
}

// NewFormatter creates a formatter bound to the resolver's timezone.
func NewFormatter(dates *datemath.Resolver) *Formatter {
	return &Formatter{dates: dates, now: time.Now}
}

// FormatDate returns "hoje" for the current date, "amanhã" for the next day,
// and a long-form weekday phrase otherwise, e.g. "sexta-feira, 4 de setembro".
func (f *Formatter) FormatDate(iso string) string {
	now := f.now()
	switch iso {
	case f.dates.TodayISO(now):
		return "hoje"
	case f.dates.TomorrowISO(now):
		return "amanhã"
	}

	t, err := f.dates.ParseISO(iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%s, %d de %s",
		datemath.WeekdayName(t.Weekday()), t.Day(), datemath.MonthName(t.Month()))
}

// FormatTime appends the day period to an HH:MM time: "da manhã" before noon,
// "da tarde" from 12:00 up to 18:00, "da noite" from 18:00 on.
func (f *Formatter) FormatTime(hhmm string) string {
	hh, _, ok := strings.Cut(hhmm, ":")
	if !ok {
		return hhmm
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return hhmm
	}

	switch {
	case hour < 12:
		return hhmm + " da manhã"
	case hour < 18:
		return hhmm + " da tarde"
	default:
		return hhmm + " da noite"
	}
}

// TodayISO returns the current date as YYYY-MM-DD.
func (f *Formatter) TodayISO() string {
	return f.dates.TodayISO(f.now())
}

// WeekStartISO returns the date of the start of the current week (Sunday).
func (f *Formatter) WeekStartISO() string {
	return f.dates.WeekStartISO(f.now())
}
