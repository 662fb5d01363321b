package datemath_test

import (
	"testing"
	"time"

	"jarvis-assistant/pkg/datemath"
)

func TestResolverOffsets(t *testing.T) {
	r, err := datemath.NewResolver("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	// Late evening, so naive UTC math would roll the date over.
	base := time.Date(2026, 9, 1, 23, 30, 0, 0, r.Location())

	if got := r.TodayISO(base); got != "2026-09-01" {
		t.Errorf("TodayISO = %q, want 2026-09-01", got)
	}
	if got := r.TomorrowISO(base); got != "2026-09-02" {
		t.Errorf("TomorrowISO = %q, want 2026-09-02", got)
	}
	if got := r.OffsetISO(base, 2); got != "2026-09-03" {
		t.Errorf("OffsetISO(+2) = %q, want 2026-09-03", got)
	}
	if got := r.OffsetISO(base, 30); got != "2026-10-01" {
		t.Errorf("OffsetISO(+30) = %q, want 2026-10-01", got)
	}
}

func TestWeekStart(t *testing.T) {
	r, err := datemath.NewResolver("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	// 2026-09-01 is a Tuesday; the week starts on the preceding Sunday.
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, r.Location())
	if got := r.WeekStartISO(base); got != "2026-08-30" {
		t.Errorf("WeekStartISO = %q, want 2026-08-30", got)
	}

	// A Sunday is its own week start.
	sunday := time.Date(2026, 8, 30, 10, 0, 0, 0, r.Location())
	if got := r.WeekStartISO(sunday); got != "2026-08-30" {
		t.Errorf("WeekStartISO(sunday) = %q, want 2026-08-30", got)
	}
}

func TestInvalidTimezone(t *testing.T) {
	if _, err := datemath.NewResolver("Not/AZone"); err == nil {
		t.Error("expected error for invalid timezone")
	}
}

func TestParseISO(t *testing.T) {
	r, _ := datemath.NewResolver("UTC")

	got, err := r.ParseISO("2026-09-04")
	if err != nil {
		t.Fatalf("ParseISO: %v", err)
	}
	if got.Weekday() != time.Friday {
		t.Errorf("weekday = %v, want Friday", got.Weekday())
	}

	if _, err := r.ParseISO("04/09/2026"); err == nil {
		t.Error("expected error for non-ISO input")
	}
}

func TestPortugueseNames(t *testing.T) {
	if got := datemath.WeekdayName(time.Friday); got != "sexta-feira" {
		t.Errorf("WeekdayName(Friday) = %q, want sexta-feira", got)
	}
	if got := datemath.MonthName(time.September); got != "setembro" {
		t.Errorf("MonthName(September) = %q, want setembro", got)
	}
}
