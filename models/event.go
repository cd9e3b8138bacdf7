package models

import "time"

// CalendarEvent is a flattened upstream feed event. A nil End marks an
// all-day event.
type CalendarEvent struct {
	Summary string     `json:"summary"`
	Start   time.Time  `json:"start"`
	End     *time.Time `json:"end,omitempty"`
}

// OnDay reports whether the event touches the given calendar day
// [dayStart, dayEnd).
func (e CalendarEvent) OnDay(dayStart, dayEnd time.Time) bool {
	if e.End == nil {
		return !e.Start.Before(dayStart) && e.Start.Before(dayEnd)
	}
	return e.Start.Before(dayEnd) && e.End.After(dayStart)
}

// EnclosesDay reports whether the event's span fully encloses the day, or
// the event is an all-day marker on that day.
func (e CalendarEvent) EnclosesDay(dayStart, dayEnd time.Time) bool {
	if e.End == nil {
		return !e.Start.Before(dayStart) && e.Start.Before(dayEnd)
	}
	return !e.Start.After(dayStart) && !e.End.Before(dayEnd)
}
