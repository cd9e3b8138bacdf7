package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"homeroom/config"
	"homeroom/models"
	"homeroom/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// dayEventRe matches rotation-calendar day markers like "Day 4".
var dayEventRe = regexp.MustCompile(`(?i)^day\s*([1-6])\b`)

// lateStartMarker flags a late-start day in the rotation calendar.
const lateStartMarker = "late start"

// rotationCacheKey caches the school-wide rotation calendar.
const rotationCacheKey = utils.FeedCachePrefix + "rotation"

// DefaultFeedService fetches iCal feeds over HTTP and caches the flattened
// events in Redis.
type DefaultFeedService struct {
	Cache *redis.Client
	// Client is the HTTP client used for upstream fetches; defaults to a
	// 10s-timeout client when nil.
	Client *http.Client
}

// NewDefaultFeedService wires the feed service with the shared cache client.
func NewDefaultFeedService(cache *redis.Client) *DefaultFeedService {
	return &DefaultFeedService{
		Cache:  cache,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// ClassesFeed returns the user's per-block class events.
func (s *DefaultFeedService) ClassesFeed(ctx context.Context, user *models.User, forceRefresh bool) ([]models.CalendarEvent, bool, error) {
	if user == nil || user.PortalURLClasses == "" {
		return nil, false, nil
	}
	key := utils.FeedCachePrefix + "classes:" + user.ID
	return s.feedEvents(ctx, key, user.PortalURLClasses, forceRefresh)
}

// CalendarFeed returns the user's personal portal calendar events.
func (s *DefaultFeedService) CalendarFeed(ctx context.Context, user *models.User, forceRefresh bool) ([]models.CalendarEvent, bool, error) {
	if user == nil || user.PortalURLCalendar == "" {
		return nil, false, nil
	}
	key := utils.FeedCachePrefix + "calendar:" + user.ID
	return s.feedEvents(ctx, key, user.PortalURLCalendar, forceRefresh)
}

// RotationDay resolves the rotation day and late-start flag for a date from
// the school-wide rotation calendar.
func (s *DefaultFeedService) RotationDay(ctx context.Context, date time.Time, forceRefresh bool) (*int, bool, error) {
	url := config.AppConfig.RotationCalendarURL
	if url == "" {
		return nil, false, nil
	}
	events, ok, err := s.feedEvents(ctx, rotationCacheKey, url, forceRefresh)
	if err != nil || !ok {
		return nil, false, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var day *int
	lateStart := false
	for _, e := range events {
		if !e.OnDay(dayStart, dayEnd) {
			continue
		}
		if m := dayEventRe.FindStringSubmatch(e.Summary); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil {
				day = &n
			}
			continue
		}
		if strings.Contains(strings.ToLower(e.Summary), lateStartMarker) {
			lateStart = true
		}
	}
	return day, lateStart, nil
}

// feedEvents returns the cached events for key, fetching and re-caching on
// miss or forced refresh. An unreachable upstream degrades to "no live
// data"; a feed that fetches but does not parse is a hard error.
func (s *DefaultFeedService) feedEvents(ctx context.Context, key, url string, forceRefresh bool) ([]models.CalendarEvent, bool, error) {
	logger := utils.GetLogger()

	if !forceRefresh {
		if raw, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var events []models.CalendarEvent
			if err := json.Unmarshal([]byte(raw), &events); err == nil {
				return events, true, nil
			}
			// Corrupt cache entry: fall through and refetch.
			logger.Warn("discarding corrupt feed cache entry", zap.String("key", key))
		}
	}

	events, err := s.fetchFeed(ctx, url)
	if err != nil {
		if isParseError(err) {
			return nil, false, err
		}
		logger.Warn("upstream feed unreachable", zap.String("url", url), zap.Error(err))
		return nil, false, nil
	}

	if raw, err := json.Marshal(events); err == nil {
		if err := s.Cache.Set(ctx, key, raw, utils.FeedCacheTTL).Err(); err != nil {
			logger.Warn("failed to cache feed", zap.String("key", key), zap.Error(err))
		}
	}
	return events, true, nil
}

type parseError struct{ err error }

func (e parseError) Error() string { return e.err.Error() }
func (e parseError) Unwrap() error { return e.err }

func isParseError(err error) bool {
	_, ok := err.(parseError)
	return ok
}

// fetchFeed downloads and parses one iCal feed.
func (s *DefaultFeedService) fetchFeed(ctx context.Context, url string) ([]models.CalendarEvent, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed request returned status %d", resp.StatusCode)
	}

	events, err := parseICal(resp.Body, time.Local)
	if err != nil {
		return nil, parseError{err}
	}
	return events, nil
}
