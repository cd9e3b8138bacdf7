package schedule

import (
	"sort"

	"homeroom/models"
)

// Merge combines two lists of schedule entries. Overlay entries win: each is
// laid over the accumulated result and may trim, split, or delete entries
// already there. The result is sorted by start time and pairwise
// non-overlapping; entries reduced to zero or negative length are dropped.
//
// The merge builds a new list per overlay entry instead of splicing the base
// in place, so no index bookkeeping is needed.
func Merge(base, overlay []models.ScheduleEntry) []models.ScheduleEntry {
	result := make([]models.ScheduleEntry, len(base))
	copy(result, base)

	for _, over := range overlay {
		next := make([]models.ScheduleEntry, 0, len(result)+1)
		for _, cur := range result {
			switch {
			case !over.Start.Before(cur.End) || !over.End.After(cur.Start):
				// Disjoint (touching counts as disjoint): keep as is.
				next = append(next, cur)
			case !over.Start.After(cur.Start) && !over.End.Before(cur.End):
				// Overlay covers the whole entry: delete it. An identical
				// span lands here too (exact replacement).
			case !over.Start.After(cur.Start):
				// Overlay covers the head: trim the start.
				trimmed := cur
				trimmed.Start = over.End
				next = append(next, trimmed)
			case over.End.Before(cur.End):
				// Overlay sits strictly inside: split around it. The right
				// half is a value copy of the original entry.
				left, right := cur, cur
				left.End = over.Start
				right.Start = over.End
				next = append(next, left, right)
			default:
				// Overlay covers the tail: trim the end.
				trimmed := cur
				trimmed.End = over.Start
				next = append(next, trimmed)
			}
		}
		result = append(next, over)
	}

	kept := result[:0]
	for _, e := range result {
		if e.End.After(e.Start) {
			kept = append(kept, e)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Start.Before(kept[j].Start)
	})
	return kept
}
