package schedule

import (
	"regexp"
	"strings"
	"time"

	"homeroom/models"
	"homeroom/utils"
)

// specialKeywords marks personal-calendar events that signal a non-standard
// schedule day. Matched case-insensitively as substrings.
var specialKeywords = []string{"special", "modified"}

// portalSuffixRe strips the school-calendar qualifier the portal appends to
// exported event summaries, e.g. "Book Fair (US)".
var portalSuffixRe = regexp.MustCompile(`(?i)\s*\((?:us|ms|ls|all school)\)\s*$`)

// blockSuffixRe extracts a trailing block code from a classes-feed summary,
// e.g. "AP Statistics - D" or "English 10 (C Block)".
var blockSuffixRe = regexp.MustCompile(`(?i)(?:-|\()\s*([a-g])\s*(?:block)?\s*\)?\s*$`)

// overlayContext carries the per-request alias snapshot and the ad-hoc class
// cache. The cache guarantees that the same raw summary resolves to the same
// derived class (and so the same color) within one synthesis call. It is
// owned by a single request and discarded afterwards.
type overlayContext struct {
	aliases map[string]models.Class
	adhoc   map[string]models.ScheduleClass
}

func newOverlayContext(aliases []models.ClassAlias, classes []models.Class) *overlayContext {
	byID := make(map[string]models.Class, len(classes))
	for _, c := range classes {
		byID[c.ID] = c
	}
	byRaw := make(map[string]models.Class, len(aliases))
	for _, a := range aliases {
		if c, ok := byID[a.ClassID]; ok {
			byRaw[a.Raw] = c
		}
	}
	return &overlayContext{
		aliases: byRaw,
		adhoc:   make(map[string]models.ScheduleClass),
	}
}

// blockOf derives the block letter for a raw feed summary: the aliased
// class's block when an alias exists, otherwise the trailing block code.
func (oc *overlayContext) blockOf(summary string) string {
	if c, ok := oc.aliases[summary]; ok {
		return c.Block
	}
	if m := blockSuffixRe.FindStringSubmatch(summary); m != nil {
		return strings.ToLower(m[1])
	}
	return ""
}

// resolveClass maps a raw feed summary to a schedule class. Alias hits use
// the user's configured class; anything else becomes an ad-hoc class with a
// color derived from the summary hash, cached for the rest of the call.
func (oc *overlayContext) resolveClass(summary string) models.ScheduleClass {
	if c, ok := oc.aliases[summary]; ok {
		return scheduleClass(c)
	}
	if c, ok := oc.adhoc[summary]; ok {
		return c
	}

	name := cleanSummary(summary)
	color := utils.ClassColor(summary)
	c := models.ScheduleClass{
		Name:     name,
		Type:     models.ClassTypeOther,
		Block:    oc.blockOf(summary),
		Color:    color,
		TextDark: utils.TextIsDark(color),
	}
	if c.Block == "" {
		c.Block = models.BlockOther
	}
	oc.adhoc[summary] = c
	return c
}

func cleanSummary(summary string) string {
	return strings.TrimSpace(portalSuffixRe.ReplaceAllString(summary, ""))
}

func hasSpecialKeyword(summary string) bool {
	lower := strings.ToLower(summary)
	for _, kw := range specialKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}

// ClassesOverlay converts classes-feed events falling strictly inside the
// requested day into schedule entries, resolving each summary through the
// alias map or the ad-hoc cache. All-day events are folded into the allDay
// list instead.
func (oc *overlayContext) ClassesOverlay(date time.Time, events []models.CalendarEvent) (entries []models.ScheduleEntry, allDay []string) {
	dayStart, dayEnd := dayBounds(date)
	for _, e := range events {
		if !e.OnDay(dayStart, dayEnd) {
			continue
		}
		if e.EnclosesDay(dayStart, dayEnd) {
			allDay = append(allDay, cleanSummary(e.Summary))
			continue
		}
		if e.End == nil || e.Start.Before(dayStart) || e.End.After(dayEnd) {
			continue
		}
		entries = append(entries, models.ScheduleEntry{
			Class: oc.resolveClass(e.Summary),
			Start: e.Start,
			End:   *e.End,
		})
	}
	return entries, allDay
}

// CalendarOverlay scans the personal-calendar feed for the requested day:
// special-schedule keywords flag the day special, day-enclosing events become
// allDay announcements, and events contained in the school-day window become
// school-wide overrides laid over the synthesized schedule.
func (oc *overlayContext) CalendarOverlay(date time.Time, events []models.CalendarEvent) (special bool, allDay []string, overrides []models.ScheduleEntry, err error) {
	dayStart, dayEnd := dayBounds(date)
	schoolStart, err := blockTime(date, defaultSchoolStart)
	if err != nil {
		return false, nil, nil, err
	}
	schoolEnd, err := blockTime(date, defaultSchoolEnd)
	if err != nil {
		return false, nil, nil, err
	}

	for _, e := range events {
		if !e.OnDay(dayStart, dayEnd) {
			continue
		}
		if hasSpecialKeyword(e.Summary) {
			special = true
			continue
		}
		if e.EnclosesDay(dayStart, dayEnd) {
			allDay = append(allDay, cleanSummary(e.Summary))
			continue
		}
		if e.End != nil && !e.Start.Before(schoolStart) && !e.End.After(schoolEnd) {
			overrides = append(overrides, models.ScheduleEntry{
				Class: oc.resolveClass(e.Summary),
				Start: e.Start,
				End:   *e.End,
			})
		}
	}
	return special, allDay, overrides, nil
}
