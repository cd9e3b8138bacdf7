package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"homeroom/config"
	"homeroom/models"
	"homeroom/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// weatherURL is the Open-Meteo current-conditions endpoint.
const weatherURL = "https://api.open-meteo.com/v1/forecast?latitude=%f&longitude=%f&current_weather=true"

// GetNotes retrieves a user's sticky notes, newest first.
func (s *DefaultPortalService) GetNotes(userID string) ([]models.StickyNote, error) {
	return s.Repo.GetNotesByUser(userID)
}

// SaveNote inserts or updates a sticky note.
func (s *DefaultPortalService) SaveNote(note *models.StickyNote) (*models.StickyNote, error) {
	if strings.TrimSpace(note.Text) == "" {
		return nil, fmt.Errorf("note text is required")
	}
	if note.Color != "" && !utils.ValidHexColor(note.Color) {
		return nil, fmt.Errorf("invalid color %q, expected #RRGGBB", note.Color)
	}

	now := time.Now()
	if note.ID == "" {
		note.ID = uuid.New().String()
		note.CreatedAt = now
	} else {
		existing, err := s.findNote(note.UserID, note.ID)
		if err != nil {
			return nil, err
		}
		note.CreatedAt = existing.CreatedAt
	}
	note.UpdatedAt = now

	if err := s.Repo.UpsertNote(note); err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote removes a sticky note owned by the user.
func (s *DefaultPortalService) DeleteNote(userID, noteID string) error {
	if _, err := s.findNote(userID, noteID); err != nil {
		return err
	}
	return s.Repo.DeleteNote(noteID)
}

// findNote looks up one of the user's notes by ID.
func (s *DefaultPortalService) findNote(userID, noteID string) (*models.StickyNote, error) {
	notes, err := s.Repo.GetNotesByUser(userID)
	if err != nil {
		return nil, err
	}
	for i := range notes {
		if notes[i].ID == noteID {
			return &notes[i], nil
		}
	}
	return nil, fmt.Errorf("note with id %s not found", noteID)
}

// RandomQuote retrieves one quote at random.
func (s *DefaultPortalService) RandomQuote() (*models.Quote, error) {
	return s.Repo.RandomQuote()
}

// AddQuote inserts a new quote into the rotation.
func (s *DefaultPortalService) AddQuote(quote *models.Quote) (*models.Quote, error) {
	if strings.TrimSpace(quote.Text) == "" {
		return nil, fmt.Errorf("quote text is required")
	}
	if quote.ID == "" {
		quote.ID = uuid.New().String()
	}
	if err := s.Repo.AddQuote(quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// openMeteoResponse is the subset of the Open-Meteo payload we consume.
type openMeteoResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

// CurrentWeather returns the cached snapshot, fetching upstream on miss.
func (s *DefaultPortalService) CurrentWeather(ctx context.Context) (*models.Weather, error) {
	logger := utils.GetLogger()

	if raw, err := s.Cache.Get(ctx, utils.WeatherCacheKey).Result(); err == nil {
		var w models.Weather
		if err := json.Unmarshal([]byte(raw), &w); err == nil {
			return &w, nil
		}
		logger.Warn("discarding corrupt weather cache entry")
	}

	w, err := s.fetchWeather(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(w); err == nil {
		if err := s.Cache.Set(ctx, utils.WeatherCacheKey, raw, utils.WeatherCacheTTL).Err(); err != nil {
			logger.Warn("failed to cache weather snapshot", zap.Error(err))
		}
	}
	return w, nil
}

// fetchWeather queries Open-Meteo for current conditions at the campus.
func (s *DefaultPortalService) fetchWeather(ctx context.Context) (*models.Weather, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	url := fmt.Sprintf(weatherURL, config.AppConfig.WeatherLatitude, config.AppConfig.WeatherLongitude)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather request returned status %d", resp.StatusCode)
	}

	var payload openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	return &models.Weather{
		TemperatureC: payload.CurrentWeather.Temperature,
		WindSpeedKmh: payload.CurrentWeather.WindSpeed,
		WeatherCode:  payload.CurrentWeather.WeatherCode,
		FetchedAt:    time.Now(),
	}, nil
}
