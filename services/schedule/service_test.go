package schedule

import (
	"context"
	"testing"
	"time"

	"homeroom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFeed scripts the feed service: separate results for cached and forced
// fetches, with call counting for the retry-once assertion.
type stubFeed struct {
	day       *int
	lateStart bool

	classes       []models.CalendarEvent
	classesOK     bool
	forcedClasses []models.CalendarEvent
	forcedOK      bool

	calendar   []models.CalendarEvent
	calendarOK bool

	classesCalls int
	forcedCalls  int
}

func (f *stubFeed) ClassesFeed(ctx context.Context, user *models.User, forceRefresh bool) ([]models.CalendarEvent, bool, error) {
	if forceRefresh {
		f.forcedCalls++
		return f.forcedClasses, f.forcedOK, nil
	}
	f.classesCalls++
	return f.classes, f.classesOK, nil
}

func (f *stubFeed) CalendarFeed(ctx context.Context, user *models.User, forceRefresh bool) ([]models.CalendarEvent, bool, error) {
	return f.calendar, f.calendarOK, nil
}

func (f *stubFeed) RotationDay(ctx context.Context, date time.Time, forceRefresh bool) (*int, bool, error) {
	return f.day, f.lateStart, nil
}

// stubClassRepo serves a fixed class and alias list.
type stubClassRepo struct {
	classes []models.Class
	aliases []models.ClassAlias
}

func (r *stubClassRepo) GetByUser(userID string) ([]models.Class, error) { return r.classes, nil }
func (r *stubClassRepo) GetByID(id string) (*models.Class, error) {
	for i := range r.classes {
		if r.classes[i].ID == id {
			return &r.classes[i], nil
		}
	}
	return nil, nil
}
func (r *stubClassRepo) Upsert(class *models.Class) error { return nil }
func (r *stubClassRepo) Delete(id string) error           { return nil }
func (r *stubClassRepo) GetAliasesByUser(userID string) ([]models.ClassAlias, error) {
	return r.aliases, nil
}
func (r *stubClassRepo) UpsertAlias(alias *models.ClassAlias) error { return nil }
func (r *stubClassRepo) DeleteAlias(id string) error                { return nil }

func intp(n int) *int { return &n }

// juniorUser is in grade 11 relative to testDay (March 2026).
func juniorUser() *models.User {
	return &models.User{ID: "u1", Email: "a@b.c", GradYear: 2027}
}

func newTestService(f *stubFeed, repo *stubClassRepo) *DefaultScheduleService {
	if repo == nil {
		repo = &stubClassRepo{}
	}
	return &DefaultScheduleService{Feeds: f, Classes: repo}
}

func names(entries []models.ScheduleEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Class.Name)
	}
	return out
}

func TestGetScheduleNilUser(t *testing.T) {
	svc := newTestService(&stubFeed{day: intp(4)}, nil)

	got, err := svc.GetSchedule(context.Background(), nil, testDay)
	require.NoError(t, err)
	require.NotNil(t, got.Day)
	assert.Equal(t, 4, *got.Day)
	require.Len(t, got.Classes, 1)
	assert.Equal(t, "School", got.Classes[0].Class.Name)
	assert.Equal(t, at("08:00"), got.Classes[0].Start)
	assert.Equal(t, at("15:15"), got.Classes[0].End)
	assert.False(t, got.Special)
}

func TestGetScheduleNoGradYear(t *testing.T) {
	svc := newTestService(&stubFeed{day: intp(6)}, nil)

	got, err := svc.GetSchedule(context.Background(), &models.User{ID: "faculty"}, testDay)
	require.NoError(t, err)
	require.Len(t, got.Classes, 1)
	assert.Equal(t, "School", got.Classes[0].Class.Name)
}

func TestGetScheduleNoSchoolDay(t *testing.T) {
	svc := newTestService(&stubFeed{day: nil}, nil)

	got, err := svc.GetSchedule(context.Background(), juniorUser(), testDay)
	require.NoError(t, err)
	assert.Nil(t, got.Day)
	assert.Empty(t, got.Classes)
	assert.NotNil(t, got.AllDay)
}

func TestGetScheduleNoLiveFeed(t *testing.T) {
	svc := newTestService(&stubFeed{day: intp(1), classesOK: false}, nil)

	got, err := svc.GetSchedule(context.Background(), juniorUser(), testDay)
	require.NoError(t, err)
	assert.False(t, got.Special)
	assertWellFormed(t, got.Classes)

	// Template-only synthesis: placeholders for unconfigured blocks and the
	// default lunch variant.
	got1 := names(got.Classes)
	assert.Contains(t, got1, "Block A")
	assert.Contains(t, got1, "Lunch")
	for _, e := range got.Classes {
		if e.Class.Block == models.BlockLunch {
			assert.Equal(t, at("13:00"), e.Start)
		}
	}
}

func TestGetScheduleUnmodeledLevelFallsBack(t *testing.T) {
	// Grade 3 has no block templates; a rotation day still yields the single
	// School block.
	svc := newTestService(&stubFeed{day: intp(6)}, nil)
	thirdGrader := &models.User{ID: "u2", GradYear: 2035}

	got, err := svc.GetSchedule(context.Background(), thirdGrader, testDay)
	require.NoError(t, err)
	require.Len(t, got.Classes, 1)
	assert.Equal(t, "School", got.Classes[0].Class.Name)
}

func TestGetScheduleEmptyFeedRetriesOnce(t *testing.T) {
	feed := &stubFeed{day: intp(1), classes: nil, classesOK: true, forcedClasses: nil, forcedOK: true}
	svc := newTestService(feed, nil)

	got, err := svc.GetSchedule(context.Background(), juniorUser(), testDay)
	require.NoError(t, err)

	// One cached fetch, exactly one forced refetch, then template fallback.
	assert.Equal(t, 1, feed.classesCalls)
	assert.Equal(t, 1, feed.forcedCalls)
	assert.Contains(t, names(got.Classes), "Block A")
	assertWellFormed(t, got.Classes)
}

func TestGetScheduleEmptyFeedRetrySucceeds(t *testing.T) {
	feed := &stubFeed{
		day:       intp(1),
		classesOK: true,
		forcedOK:  true,
		forcedClasses: []models.CalendarEvent{
			feedEvent("AP Statistics - E", "12:05", "12:55"),
		},
	}
	svc := newTestService(feed, nil)

	got, err := svc.GetSchedule(context.Background(), juniorUser(), testDay)
	require.NoError(t, err)
	assert.Equal(t, 1, feed.forcedCalls)
	assert.Contains(t, names(got.Classes), "AP Statistics - E")
	assertWellFormed(t, got.Classes)
}

func TestGetScheduleFeedOverlay(t *testing.T) {
	// Day 1 pairs the lunch span with E block. The feed has E meeting
	// 12:05-12:55, which selects the late lunch and replaces the placeholder.
	feed := &stubFeed{
		day:       intp(1),
		classesOK: true,
		classes: []models.CalendarEvent{
			feedEvent("AP Statistics - E", "12:05", "12:55"),
		},
	}
	svc := newTestService(feed, nil)

	got, err := svc.GetSchedule(context.Background(), juniorUser(), testDay)
	require.NoError(t, err)
	assert.False(t, got.Special)
	assertWellFormed(t, got.Classes)

	got1 := names(got.Classes)
	assert.Contains(t, got1, "AP Statistics - E")
	assert.NotContains(t, got1, "Block E")

	// Late lunch variant selected.
	for _, e := range got.Classes {
		if e.Class.Block == models.BlockLunch {
			assert.Equal(t, at("13:00"), e.Start)
		}
	}
}

func TestGetScheduleAliasedFeedClass(t *testing.T) {
	repo := &stubClassRepo{
		classes: []models.Class{{
			ID: "c1", UserID: "u1", Name: "AP Statistics", Block: "e",
			Type: models.ClassTypeAcademic, Color: "#336699",
		}},
		aliases: []models.ClassAlias{{ID: "a1", UserID: "u1", Raw: "AP Stats S2", ClassID: "c1"}},
	}
	feed := &stubFeed{
		day:       intp(1),
		classesOK: true,
		classes: []models.CalendarEvent{
			feedEvent("AP Stats S2", "12:05", "12:55"),
		},
	}
	svc := newTestService(feed, repo)

	got, err := svc.GetSchedule(context.Background(), juniorUser(), testDay)
	require.NoError(t, err)
	assertWellFormed(t, got.Classes)

	var found bool
	for _, e := range got.Classes {
		if e.Class.Name == "AP Statistics" && e.Start.Equal(at("12:05")) {
			found = true
			assert.Equal(t, "#336699", e.Class.Color)
		}
	}
	assert.True(t, found, "aliased feed class not placed")
}

func TestGetScheduleSpecialDay(t *testing.T) {
	feed := &stubFeed{
		day:       intp(1),
		classesOK: true,
		classes: []models.CalendarEvent{
			feedEvent("Assembly Schedule - A", "09:00", "09:45"),
		},
		calendarOK: true,
		calendar: []models.CalendarEvent{
			{Summary: "Special Schedule (US)", Start: at("00:00")},
		},
	}
	svc := newTestService(feed, nil)

	got, err := svc.GetSchedule(context.Background(), juniorUser(), testDay)
	require.NoError(t, err)
	assert.True(t, got.Special)
	assertWellFormed(t, got.Classes)

	// The template is abandoned; only the feed remains.
	got1 := names(got.Classes)
	assert.NotContains(t, got1, "Block B")
	assert.NotContains(t, got1, "Lunch")
	assert.Contains(t, got1, "Assembly Schedule - A")
}

func TestGetScheduleAllDayAnnouncements(t *testing.T) {
	feed := &stubFeed{
		day:       intp(1),
		classesOK: true,
		classes: []models.CalendarEvent{
			feedEvent("AP Statistics - E", "12:05", "12:55"),
		},
		calendarOK: true,
		calendar: []models.CalendarEvent{
			{Summary: "Book Fair (US)", Start: at("00:00")},
		},
	}
	svc := newTestService(feed, nil)

	got, err := svc.GetSchedule(context.Background(), juniorUser(), testDay)
	require.NoError(t, err)
	assert.Equal(t, []string{"Book Fair"}, got.AllDay)
}

func TestGetScheduleCalendarOverrideWins(t *testing.T) {
	feed := &stubFeed{
		day:       intp(1),
		classesOK: true,
		classes: []models.CalendarEvent{
			feedEvent("AP Statistics - E", "12:05", "12:55"),
		},
		calendarOK: true,
		calendar: []models.CalendarEvent{
			feedEvent("College Counseling", "12:05", "12:55"),
		},
	}
	svc := newTestService(feed, nil)

	got, err := svc.GetSchedule(context.Background(), juniorUser(), testDay)
	require.NoError(t, err)
	assertWellFormed(t, got.Classes)

	// The personal-calendar override replaces the identical feed span.
	got1 := names(got.Classes)
	assert.Contains(t, got1, "College Counseling")
	assert.NotContains(t, got1, "AP Statistics - E")
}
