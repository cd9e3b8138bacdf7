package feed

import (
	"fmt"
	"io"
	"time"

	"homeroom/models"

	"github.com/emersion/go-ical"
)

// parseICal flattens every VEVENT of an iCal stream into calendar events.
// DATE-valued (all-day) starts produce events with a nil end. Malformed
// event data is a hard error; a silently corrupted schedule is worse than a
// failed request.
func parseICal(r io.Reader, loc *time.Location) ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent

	dec := ical.NewDecoder(r)
	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode calendar: %w", err)
		}

		for _, ev := range cal.Events() {
			summary, err := ev.Props.Text(ical.PropSummary)
			if err != nil {
				return nil, fmt.Errorf("failed to read event summary: %w", err)
			}
			start, err := ev.DateTimeStart(loc)
			if err != nil {
				return nil, fmt.Errorf("failed to read start of %q: %w", summary, err)
			}

			event := models.CalendarEvent{Summary: summary, Start: start}
			if allDayEvent(ev) {
				events = append(events, event)
				continue
			}
			end, err := ev.DateTimeEnd(loc)
			if err != nil {
				return nil, fmt.Errorf("failed to read end of %q: %w", summary, err)
			}
			if end.After(start) {
				event.End = &end
			}
			events = append(events, event)
		}
	}
	return events, nil
}

// allDayEvent reports whether the event is an all-day marker: a DATE-valued
// start, or no end specification at all.
func allDayEvent(ev ical.Event) bool {
	startProp := ev.Props.Get(ical.PropDateTimeStart)
	if startProp != nil && startProp.ValueType() == ical.ValueDate {
		return true
	}
	return ev.Props.Get(ical.PropDateTimeEnd) == nil && ev.Props.Get(ical.PropDuration) == nil
}
