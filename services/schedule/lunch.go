package schedule

import (
	"time"

	"homeroom/models"
)

// lunchPolicy names the behavior applied when the live feed matches neither
// lunch variant cleanly (characteristic of late-start days, where the feed
// times drift from both template variants).
type lunchPolicy int

const (
	// policyPreferSpecial keeps the default variant and provisionally flags
	// the day special rather than silently guessing the user's lunch.
	policyPreferSpecial lunchPolicy = iota
)

// ambiguousLunchPolicy is the active policy for contradictory feed data.
const ambiguousLunchPolicy = policyPreferSpecial

// ResolveLunch decides which lunch variant of a block template applies and
// strips the entries of every other variant. The day's template carries
// alternative layouts for the lunch span (early/late lunch, each pairing the
// lunch block with the class block that shares the span); the classes feed
// tells us when that paired class actually meets, and the variant whose
// lunch does not collide with it is the user's real lunch.
//
// Returns the filtered template and whether the day should be provisionally
// flagged special because the feed contradicted both variants.
func ResolveLunch(template []models.BlockDescriptor, date time.Time, feed []models.CalendarEvent, blockOf func(string) string) ([]models.BlockDescriptor, bool, error) {
	variants := map[string]models.BlockDescriptor{}
	pairedBlock := ""
	for _, b := range template {
		v := b.Variant()
		if v == "" {
			continue
		}
		if b.Block == models.BlockLunch {
			variants[v] = b
		} else {
			pairedBlock = b.Block
		}
	}
	if len(variants) < 2 {
		return template, false, nil
	}

	feedInterval, found, err := pairedClassInterval(date, feed, pairedBlock, blockOf)
	if err != nil {
		return nil, false, err
	}

	chosen := defaultVariant(template, variants)
	ambiguous := false
	if found {
		var clear []string
		for name, lunch := range variants {
			start, err := blockTime(date, lunch.Start)
			if err != nil {
				return nil, false, err
			}
			end, err := blockTime(date, lunch.End)
			if err != nil {
				return nil, false, err
			}
			// Exact touching counts as non-overlap.
			if !(feedInterval.start.Before(end) && start.Before(feedInterval.end)) {
				clear = append(clear, name)
			}
		}
		if len(clear) == 1 {
			chosen = clear[0]
		} else if ambiguousLunchPolicy == policyPreferSpecial {
			ambiguous = true
		}
	}

	out := make([]models.BlockDescriptor, 0, len(template))
	for _, b := range template {
		if v := b.Variant(); v == "" || v == chosen {
			out = append(out, b)
		}
	}
	return out, ambiguous, nil
}

type interval struct {
	start, end time.Time
}

// pairedClassInterval finds the feed event for the class block paired with
// the lunch span and returns its interval.
func pairedClassInterval(date time.Time, feed []models.CalendarEvent, pairedBlock string, blockOf func(string) string) (interval, bool, error) {
	if pairedBlock == "" {
		return interval{}, false, nil
	}
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	for _, e := range feed {
		if e.End == nil || !e.OnDay(dayStart, dayEnd) {
			continue
		}
		if blockOf(e.Summary) != pairedBlock {
			continue
		}
		return interval{start: e.Start, end: *e.End}, true, nil
	}
	return interval{}, false, nil
}

// defaultVariant picks the flagged default variant, or the chronologically
// first lunch entry when no flag is set.
func defaultVariant(template []models.BlockDescriptor, variants map[string]models.BlockDescriptor) string {
	for name, lunch := range variants {
		if lunch.DefaultVariant {
			return name
		}
	}
	first := ""
	for _, b := range template {
		if b.Block != models.BlockLunch || b.Variant() == "" {
			continue
		}
		if first == "" || b.Start < variants[first].Start {
			first = b.Variant()
		}
	}
	return first
}
