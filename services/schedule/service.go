package schedule

import (
	"context"
	"sync"
	"time"

	classesRepo "homeroom/database/repository/classes"
	"homeroom/models"
	"homeroom/services/feed"
	"homeroom/utils"

	"go.uber.org/zap"
)

// Default school-day window; also the single fallback "School" block served
// when no block template applies.
const (
	defaultSchoolStart = "08:00"
	defaultSchoolEnd   = "15:15"
)

// ScheduleService synthesizes one user's schedule for one date. The result
// is recomputed on every call and never persisted.
type ScheduleService interface {
	GetSchedule(ctx context.Context, user *models.User, date time.Time) (*models.FullSchedule, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Feeds   feed.Service
	Classes classesRepo.ClassRepository
}

// synthState drives the fallback behavior of one synthesis call. The only
// transition is feedEmpty -> (refetch once) -> feedEmpty|feedOK; a second
// empty result degrades to noLiveFeed, never another retry.
type synthState int

const (
	stateNoLiveFeed synthState = iota
	stateFeedEmpty
	stateFeedOK
)

// snapshot holds everything one synthesis call fetched up front. It is owned
// by that call and discarded with it.
type snapshot struct {
	day       *int
	lateStart bool

	classes []models.Class
	aliases []models.ClassAlias

	classesFeed  []models.CalendarEvent
	classesOK    bool
	calendarFeed []models.CalendarEvent
	calendarOK   bool
}

// GetSchedule fans out all external fetches, classifies the fallback state,
// and runs the synthesis pipeline: lunch resolution, template binding, feed
// overlay, interval merge.
func (s *DefaultScheduleService) GetSchedule(ctx context.Context, user *models.User, date time.Time) (*models.FullSchedule, error) {
	logger := utils.GetLogger()

	snap, err := s.fetch(ctx, user, date)
	if err != nil {
		return nil, err
	}

	grade := 0
	if user != nil {
		grade = user.GradeLevel(date)
	}
	if user == nil || grade == 0 {
		return defaultSchedule(snap.day, date)
	}

	var template []models.BlockDescriptor
	if snap.day != nil {
		template = LookupBlocks(models.SchoolLevel(grade), grade, *snap.day, snap.lateStart)
	}

	state := classifyFeeds(snap)
	if state == stateFeedEmpty {
		// The live feed exists but came back empty; refetch once with the
		// portal-broken flag forcing a cache bypass. A second empty result
		// is treated as having no live feed at all.
		logger.Warn("classes feed empty, forcing one refetch",
			zap.String("userId", user.ID), zap.Time("date", date))
		if err := s.refetchFeeds(ctx, user, snap); err != nil {
			return nil, err
		}
		if state = classifyFeeds(snap); state == stateFeedEmpty {
			state = stateNoLiveFeed
		}
	}

	oc := newOverlayContext(snap.aliases, snap.classes)

	if state == stateNoLiveFeed {
		if len(template) == 0 {
			return defaultSchedule(snap.day, date)
		}
		// Without a feed the lunch resolver keeps the default variant.
		resolved, _, err := ResolveLunch(template, date, nil, oc.blockOf)
		if err != nil {
			return nil, err
		}
		classes, err := BindTemplate(resolved, classesByBlock(snap.classes), date)
		if err != nil {
			return nil, err
		}
		return &models.FullSchedule{
			Day:     snap.day,
			Classes: classes,
			AllDay:  []string{},
		}, nil
	}

	resolved, ambiguous, err := ResolveLunch(template, date, snap.classesFeed, oc.blockOf)
	if err != nil {
		return nil, err
	}
	base, err := BindTemplate(resolved, classesByBlock(snap.classes), date)
	if err != nil {
		return nil, err
	}

	special, allDay, overrides, err := oc.CalendarOverlay(date, snap.calendarFeed)
	if err != nil {
		return nil, err
	}
	feedEntries, feedAllDay := oc.ClassesOverlay(date, snap.classesFeed)
	allDay = append(allDay, feedAllDay...)

	var classes []models.ScheduleEntry
	if special {
		// Special day: the template is abandoned and the feed is the
		// schedule.
		classes = Merge(feedEntries, overrides)
	} else {
		classes = Merge(Merge(base, feedEntries), overrides)
	}

	if allDay == nil {
		allDay = []string{}
	}
	return &models.FullSchedule{
		Day: snap.day,
		// An ambiguous lunch flags the day special without abandoning the
		// template (policyPreferSpecial).
		Special: special || ambiguous,
		Classes: classes,
		AllDay:  allDay,
	}, nil
}

// classifyFeeds maps the classes-feed fetch outcome to a synthesis state.
func classifyFeeds(snap *snapshot) synthState {
	if !snap.classesOK {
		return stateNoLiveFeed
	}
	if len(snap.classesFeed) == 0 {
		return stateFeedEmpty
	}
	return stateFeedOK
}

// fetch starts every external lookup concurrently and joins them. Partial
// results are never surfaced; the first error fails the whole call.
func (s *DefaultScheduleService) fetch(ctx context.Context, user *models.User, date time.Time) (*snapshot, error) {
	snap := &snapshot{}
	var wg sync.WaitGroup
	errs := make(chan error, 5)

	wg.Add(1)
	go func() {
		defer wg.Done()
		day, lateStart, err := s.Feeds.RotationDay(ctx, date, false)
		if err != nil {
			errs <- err
			return
		}
		snap.day, snap.lateStart = day, lateStart
	}()

	if user != nil {
		wg.Add(4)
		go func() {
			defer wg.Done()
			classes, err := s.Classes.GetByUser(user.ID)
			if err != nil {
				errs <- err
				return
			}
			snap.classes = classes
		}()
		go func() {
			defer wg.Done()
			aliases, err := s.Classes.GetAliasesByUser(user.ID)
			if err != nil {
				errs <- err
				return
			}
			snap.aliases = aliases
		}()
		go func() {
			defer wg.Done()
			events, ok, err := s.Feeds.ClassesFeed(ctx, user, false)
			if err != nil {
				errs <- err
				return
			}
			snap.classesFeed, snap.classesOK = events, ok
		}()
		go func() {
			defer wg.Done()
			events, ok, err := s.Feeds.CalendarFeed(ctx, user, false)
			if err != nil {
				errs <- err
				return
			}
			snap.calendarFeed, snap.calendarOK = events, ok
		}()
	}

	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		return nil, err
	}
	return snap, nil
}

// refetchFeeds re-runs only the two feed fetches, bypassing the cache.
func (s *DefaultScheduleService) refetchFeeds(ctx context.Context, user *models.User, snap *snapshot) error {
	var wg sync.WaitGroup
	errs := make(chan error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		events, ok, err := s.Feeds.ClassesFeed(ctx, user, true)
		if err != nil {
			errs <- err
			return
		}
		snap.classesFeed, snap.classesOK = events, ok
	}()
	go func() {
		defer wg.Done()
		events, ok, err := s.Feeds.CalendarFeed(ctx, user, true)
		if err != nil {
			errs <- err
			return
		}
		snap.calendarFeed, snap.calendarOK = events, ok
	}()

	wg.Wait()
	close(errs)
	return <-errs
}

// defaultSchedule is the terminal fallback: a single "School" block when a
// rotation day exists, an empty schedule otherwise.
func defaultSchedule(day *int, date time.Time) (*models.FullSchedule, error) {
	fs := &models.FullSchedule{Day: day, Classes: []models.ScheduleEntry{}, AllDay: []string{}}
	if day == nil {
		return fs, nil
	}
	start, err := blockTime(date, defaultSchoolStart)
	if err != nil {
		return nil, err
	}
	end, err := blockTime(date, defaultSchoolEnd)
	if err != nil {
		return nil, err
	}
	color := utils.ClassColor("School")
	fs.Classes = append(fs.Classes, models.ScheduleEntry{
		Class: models.ScheduleClass{
			Name:     "School",
			Type:     models.ClassTypeOther,
			Block:    models.BlockOther,
			Color:    color,
			TextDark: utils.TextIsDark(color),
		},
		Start: start,
		End:   end,
	})
	return fs, nil
}
