package models

import "time"

// ScheduleClass is the class attached to a schedule entry. It is either a
// user-configured class, a portal-derived class (alias-resolved or ad-hoc
// with a hash-derived color), or a generated placeholder for an unconfigured
// block. Value type; never mutated after construction.
type ScheduleClass struct {
	Name     string  `json:"name"`
	Teacher  Teacher `json:"teacher"`
	Type     string  `json:"type"`
	Block    string  `json:"block"`
	Color    string  `json:"color"`
	TextDark bool    `json:"textIsDark"`
}

// ScheduleEntry is one time block of a synthesized day.
type ScheduleEntry struct {
	Class ScheduleClass `json:"class"`
	Start time.Time     `json:"start"`
	End   time.Time     `json:"end"`
}

// FullSchedule is the synthesized schedule for one user and one date.
// Classes is sorted by start time and pairwise non-overlapping. Special
// signals that the block template was abandoned in favor of the raw feed.
type FullSchedule struct {
	Day     *int            `json:"day"`
	Special bool            `json:"special"`
	Classes []ScheduleEntry `json:"classes"`
	AllDay  []string        `json:"allDay"`
}
