package schedule

import (
	"testing"

	"homeroom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockOf(t *testing.T) {
	classes := []models.Class{{ID: "c1", Name: "AP Statistics", Block: "d"}}
	aliases := []models.ClassAlias{{ID: "a1", Raw: "AP Statistics S2", ClassID: "c1"}}
	oc := newOverlayContext(aliases, classes)

	tests := []struct {
		summary string
		want    string
	}{
		{"AP Statistics S2", "d"}, // alias hit
		{"English 10 - C", "c"},
		{"English 10 - c", "c"},
		{"Physics (E Block)", "e"},
		{"Physics (F)", "f"},
		{"Chorus", ""},
		{"Grade 10 Assembly", ""}, // trailing digit is not a block code
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, oc.blockOf(tt.summary), "summary %q", tt.summary)
	}
}

func TestCleanSummary(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Book Fair (US)", "Book Fair"},
		{"Spirit Week (All School)", "Spirit Week"},
		{"Band Concert (MS)", "Band Concert"},
		{"Robotics Club", "Robotics Club"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanSummary(tt.in))
	}
}

func TestResolveClassAliasHit(t *testing.T) {
	classes := []models.Class{{
		ID: "c1", Name: "AP Statistics", Block: "d",
		Type: models.ClassTypeAcademic, Color: "#AA3366",
	}}
	aliases := []models.ClassAlias{{ID: "a1", Raw: "AP Statistics S2", ClassID: "c1"}}
	oc := newOverlayContext(aliases, classes)

	got := oc.resolveClass("AP Statistics S2")
	assert.Equal(t, "AP Statistics", got.Name)
	assert.Equal(t, "#AA3366", got.Color)
	assert.Equal(t, "d", got.Block)
}

func TestResolveClassAdHocIsStable(t *testing.T) {
	oc := newOverlayContext(nil, nil)

	first := oc.resolveClass("Jazz Ensemble - F")
	second := oc.resolveClass("Jazz Ensemble - F")
	assert.Equal(t, first, second)
	assert.Equal(t, "Jazz Ensemble - F", first.Name)
	assert.Equal(t, "f", first.Block)
	assert.NotEmpty(t, first.Color)
}

func TestClassesOverlay(t *testing.T) {
	oc := newOverlayContext(nil, nil)
	events := []models.CalendarEvent{
		feedEvent("English 10 - C", "09:00", "09:50"),
		{Summary: "Picture Day", Start: at("00:00")}, // all-day, nil end
		feedEvent("Tomorrow Class - A", "09:00", "09:50"),
	}
	events[2].Start = events[2].Start.AddDate(0, 0, 1)
	e := events[2].End.AddDate(0, 0, 1)
	events[2].End = &e

	entries, allDay := oc.ClassesOverlay(testDay, events)
	require.Len(t, entries, 1)
	assert.Equal(t, "English 10 - C", entries[0].Class.Name)
	assert.Equal(t, at("09:00"), entries[0].Start)
	assert.Equal(t, []string{"Picture Day"}, allDay)
}

func TestCalendarOverlaySpecialKeyword(t *testing.T) {
	oc := newOverlayContext(nil, nil)
	events := []models.CalendarEvent{
		feedEvent("Special Schedule (US)", "08:00", "15:15"),
	}
	special, allDay, overrides, err := oc.CalendarOverlay(testDay, events)
	require.NoError(t, err)
	assert.True(t, special)
	assert.Empty(t, allDay)
	// Keyword events flag the day; they are not placed on the schedule.
	assert.Empty(t, overrides)
}

func TestCalendarOverlayModifiedKeyword(t *testing.T) {
	oc := newOverlayContext(nil, nil)
	events := []models.CalendarEvent{{Summary: "Modified Day", Start: at("00:00")}}
	special, _, _, err := oc.CalendarOverlay(testDay, events)
	require.NoError(t, err)
	assert.True(t, special)
}

func TestCalendarOverlayOverridesAndAllDay(t *testing.T) {
	oc := newOverlayContext(nil, nil)
	events := []models.CalendarEvent{
		feedEvent("All School Assembly", "10:00", "11:00"),
		{Summary: "Book Fair (US)", Start: at("00:00")},
		// Outside the school-day window: ignored.
		feedEvent("Evening Recital", "18:00", "20:00"),
	}
	special, allDay, overrides, err := oc.CalendarOverlay(testDay, events)
	require.NoError(t, err)
	assert.False(t, special)
	assert.Equal(t, []string{"Book Fair"}, allDay)
	require.Len(t, overrides, 1)
	assert.Equal(t, "All School Assembly", overrides[0].Class.Name)
	assert.Equal(t, at("10:00"), overrides[0].Start)
}

func TestCalendarOverlayIgnoresOtherDays(t *testing.T) {
	oc := newOverlayContext(nil, nil)
	ev := feedEvent("Special Schedule", "08:00", "09:00")
	ev.Start = ev.Start.AddDate(0, 0, -1)
	e := ev.End.AddDate(0, 0, -1)
	ev.End = &e

	special, allDay, overrides, err := oc.CalendarOverlay(testDay, []models.CalendarEvent{ev})
	require.NoError(t, err)
	assert.False(t, special)
	assert.Empty(t, allDay)
	assert.Empty(t, overrides)
}
