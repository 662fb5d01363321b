package usecase

import (
	"context"
	"time"

	"jarvis-assistant/pkg/gcalendar"
)

// scheduleCalendarEvent mirrors a dated-and-timed create into the configured
// calendar, best-effort: failures are logged and never surfaced to the user.
func (uc *implUseCase) scheduleCalendarEvent(ctx context.Context, summary, date, clock string) {
	if uc.calendar == nil || date == "" || clock == "" {
		return
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, uc.dates.Location())
	if err != nil {
		uc.l.Warnf(ctx, "assistant: invalid calendar instant %q %q: %v", date, clock, err)
		return
	}

	_, err = uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: uc.calendarID,
		Summary:    summary,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Timezone:   uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "assistant: calendar event for %q not created: %v", summary, err)
	}
}
