package schedule

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"homeroom/models"
)

//go:embed data/blocks.json
var blocksJSON []byte

// blockTables holds the static rotation-day block templates, keyed by school
// level, then rotation day ("1".."6"). Loaded once at init and never mutated.
var blockTables map[string]map[string]dayTemplate

type dayTemplate struct {
	Regular   []models.BlockDescriptor `json:"regular"`
	LateStart []models.BlockDescriptor `json:"lateStart"`
}

func init() {
	if err := json.Unmarshal(blocksJSON, &blockTables); err != nil {
		log.Fatalf("failed to load block templates: %v", err)
	}
}

// upperclassGrade is the first grade treated as an upperclassman.
const upperclassGrade = 11

// LookupBlocks returns the block template for the given school level, grade,
// rotation day (1..6) and late-start flag, or nil when the level has no
// modeled schedule (lower school) or the day is out of range. For the upper
// school, blocks restricted by class standing are filtered against the grade.
func LookupBlocks(level string, grade, day int, lateStart bool) []models.BlockDescriptor {
	days, ok := blockTables[level]
	if !ok {
		return nil
	}
	tmpl, ok := days[fmt.Sprintf("%d", day)]
	if !ok {
		return nil
	}
	blocks := tmpl.Regular
	if lateStart && len(tmpl.LateStart) > 0 {
		blocks = tmpl.LateStart
	}

	out := make([]models.BlockDescriptor, 0, len(blocks))
	for _, b := range blocks {
		if b.UnderclassOnly && grade >= upperclassGrade {
			continue
		}
		if b.UpperclassOnly && grade < upperclassGrade {
			continue
		}
		out = append(out, b)
	}
	return out
}

// blockTime converts a "HH:MM" time of day to a timestamp on the given date,
// in the date's location. Unparseable times are a data error and fail fast.
func blockTime(date time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed block time %q: %w", hhmm, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
