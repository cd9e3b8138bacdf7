package feed

import (
	"context"
	"time"

	"homeroom/models"
)

// Service fetches and caches the remote iCal calendar feeds the schedule
// engine consumes. The boolean result reports whether live data exists at
// all for the user: a user with no portal feed URL configured, or an
// unreachable upstream, yields (nil, false, nil) rather than an error.
// forceRefresh bypasses the cache (the engine's portal-broken retry).
type Service interface {
	// ClassesFeed returns the user's per-block class events.
	ClassesFeed(ctx context.Context, user *models.User, forceRefresh bool) ([]models.CalendarEvent, bool, error)
	// CalendarFeed returns the user's personal portal calendar events.
	CalendarFeed(ctx context.Context, user *models.User, forceRefresh bool) ([]models.CalendarEvent, bool, error)
	// RotationDay resolves the school-wide rotation day (1..6) and
	// late-start flag for a date. A nil day means no school that day.
	RotationDay(ctx context.Context, date time.Time, forceRefresh bool) (*int, bool, error)
}
