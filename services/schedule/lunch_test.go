package schedule

import (
	"testing"

	"homeroom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lunchTemplate mirrors the upper-school lunch span: the early variant eats
// first and takes D block after, the late (default) variant takes D block
// first and eats after.
func lunchTemplate() []models.BlockDescriptor {
	return []models.BlockDescriptor{
		{Block: "c", Start: "11:10", End: "12:00"},
		{Block: models.BlockLunch, Start: "12:05", End: "12:40", EarlyLunch: true},
		{Block: "d", Start: "12:45", End: "13:35", EarlyLunch: true},
		{Block: "d", Start: "12:05", End: "12:55", LateLunch: true},
		{Block: models.BlockLunch, Start: "13:00", End: "13:35", LateLunch: true, DefaultVariant: true},
		{Block: "e", Start: "13:40", End: "14:30"},
	}
}

func feedEvent(summary, start, end string) models.CalendarEvent {
	e := at(end)
	return models.CalendarEvent{Summary: summary, Start: at(start), End: &e}
}

func suffixBlockOf(summary string) string {
	oc := newOverlayContext(nil, nil)
	return oc.blockOf(summary)
}

func variantNames(t *testing.T, template []models.BlockDescriptor) []string {
	t.Helper()
	var out []string
	for _, b := range template {
		if v := b.Variant(); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func TestResolveLunchNoFeedKeepsDefault(t *testing.T) {
	resolved, ambiguous, err := ResolveLunch(lunchTemplate(), testDay, nil, suffixBlockOf)
	require.NoError(t, err)
	assert.False(t, ambiguous)

	for _, v := range variantNames(t, resolved) {
		assert.Equal(t, "late", v)
	}
	require.Len(t, resolved, 4)
}

func TestResolveLunchFeedSelectsEarly(t *testing.T) {
	// D block meets 12:45-13:35, which collides with the late lunch but not
	// the early one.
	feed := []models.CalendarEvent{feedEvent("AP Statistics - D", "12:45", "13:35")}

	resolved, ambiguous, err := ResolveLunch(lunchTemplate(), testDay, feed, suffixBlockOf)
	require.NoError(t, err)
	assert.False(t, ambiguous)

	for _, v := range variantNames(t, resolved) {
		assert.Equal(t, "early", v)
	}
}

func TestResolveLunchFeedSelectsLate(t *testing.T) {
	feed := []models.CalendarEvent{feedEvent("AP Statistics - D", "12:05", "12:55")}

	resolved, ambiguous, err := ResolveLunch(lunchTemplate(), testDay, feed, suffixBlockOf)
	require.NoError(t, err)
	assert.False(t, ambiguous)

	for _, v := range variantNames(t, resolved) {
		assert.Equal(t, "late", v)
	}
}

func TestResolveLunchContradictoryFeedIsAmbiguous(t *testing.T) {
	// The feed interval collides with both lunch variants; keep the default
	// and flag the day.
	feed := []models.CalendarEvent{feedEvent("AP Statistics - D", "12:30", "13:10")}

	resolved, ambiguous, err := ResolveLunch(lunchTemplate(), testDay, feed, suffixBlockOf)
	require.NoError(t, err)
	assert.True(t, ambiguous)

	for _, v := range variantNames(t, resolved) {
		assert.Equal(t, "late", v)
	}
}

func TestResolveLunchTouchingDoesNotCollide(t *testing.T) {
	// Ends exactly when the late lunch starts; touching is not a collision,
	// so both variants are clear and the result is ambiguous.
	feed := []models.CalendarEvent{feedEvent("AP Statistics - D", "12:40", "13:00")}

	_, ambiguous, err := ResolveLunch(lunchTemplate(), testDay, feed, suffixBlockOf)
	require.NoError(t, err)
	assert.True(t, ambiguous)
}

func TestResolveLunchIgnoresOtherDays(t *testing.T) {
	e := at("13:35").AddDate(0, 0, 1)
	feed := []models.CalendarEvent{{
		Summary: "AP Statistics - D",
		Start:   at("12:45").AddDate(0, 0, 1),
		End:     &e,
	}}

	resolved, ambiguous, err := ResolveLunch(lunchTemplate(), testDay, feed, suffixBlockOf)
	require.NoError(t, err)
	assert.False(t, ambiguous)
	for _, v := range variantNames(t, resolved) {
		assert.Equal(t, "late", v)
	}
}

func TestResolveLunchSingleVariantPassthrough(t *testing.T) {
	template := []models.BlockDescriptor{
		{Block: "a", Start: "08:00", End: "08:50"},
		{Block: models.BlockLunch, Start: "11:45", End: "12:20"},
	}
	resolved, ambiguous, err := ResolveLunch(template, testDay, nil, suffixBlockOf)
	require.NoError(t, err)
	assert.False(t, ambiguous)
	assert.Equal(t, template, resolved)
}

func TestResolveLunchDefaultFallsBackToEarliest(t *testing.T) {
	template := lunchTemplate()
	for i := range template {
		template[i].DefaultVariant = false
	}
	resolved, ambiguous, err := ResolveLunch(template, testDay, nil, suffixBlockOf)
	require.NoError(t, err)
	assert.False(t, ambiguous)

	// With no flagged default the chronologically first lunch wins.
	for _, v := range variantNames(t, resolved) {
		assert.Equal(t, "early", v)
	}
}

func TestResolvedTemplateBindsWithoutOverlap(t *testing.T) {
	resolved, _, err := ResolveLunch(lunchTemplate(), testDay, nil, suffixBlockOf)
	require.NoError(t, err)

	entries, err := BindTemplate(resolved, nil, testDay)
	require.NoError(t, err)
	assertWellFormed(t, entries)
}

func TestBindTemplateUsesConfiguredClass(t *testing.T) {
	classes := map[string]models.Class{
		"c": {Name: "Chemistry", Block: "c", Type: models.ClassTypeScience, Color: "#336699"},
	}
	entries, err := BindTemplate(lunchTemplate()[:1], classes, testDay)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Chemistry", entries[0].Class.Name)
	assert.Equal(t, "#336699", entries[0].Class.Color)
	assert.Equal(t, at("11:10"), entries[0].Start)
}

func TestBindTemplatePlaceholder(t *testing.T) {
	entries, err := BindTemplate(lunchTemplate()[:1], nil, testDay)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Block C", entries[0].Class.Name)
	assert.NotEmpty(t, entries[0].Class.Color)

	// The same block always renders the same placeholder.
	again, err := BindTemplate(lunchTemplate()[:1], nil, testDay)
	require.NoError(t, err)
	assert.Equal(t, entries[0].Class, again[0].Class)
}

func TestBindTemplateMalformedTime(t *testing.T) {
	_, err := BindTemplate([]models.BlockDescriptor{{Block: "a", Start: "8 am", End: "08:50"}}, nil, testDay)
	assert.Error(t, err)
}

func TestResolveLunchAliasBlockLookup(t *testing.T) {
	// The feed summary has no block suffix; the alias supplies the block.
	classes := []models.Class{{ID: "c1", Name: "AP Statistics", Block: "d"}}
	aliases := []models.ClassAlias{{ID: "a1", Raw: "AP Statistics S2", ClassID: "c1"}}
	oc := newOverlayContext(aliases, classes)

	feed := []models.CalendarEvent{feedEvent("AP Statistics S2", "12:45", "13:35")}
	resolved, ambiguous, err := ResolveLunch(lunchTemplate(), testDay, feed, oc.blockOf)
	require.NoError(t, err)
	assert.False(t, ambiguous)
	for _, v := range variantNames(t, resolved) {
		assert.Equal(t, "early", v)
	}
}
