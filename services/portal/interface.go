package portal

import (
	"context"
	"net/http"

	portalRepo "homeroom/database/repository/portal"
	"homeroom/models"

	"github.com/go-redis/redis/v8"
)

// PortalService serves the small glue endpoints on the portal home page:
// sticky notes, a rotating quote, and a current-weather snapshot.
type PortalService interface {
	// GetNotes retrieves a user's sticky notes, newest first.
	GetNotes(userID string) ([]models.StickyNote, error)
	// SaveNote inserts or updates a sticky note.
	SaveNote(note *models.StickyNote) (*models.StickyNote, error)
	// DeleteNote removes a sticky note owned by the user.
	DeleteNote(userID, noteID string) error

	// RandomQuote retrieves one quote at random.
	RandomQuote() (*models.Quote, error)
	// AddQuote inserts a new quote into the rotation.
	AddQuote(quote *models.Quote) (*models.Quote, error)

	// CurrentWeather returns the cached current-conditions snapshot,
	// fetching from the upstream provider on cache miss.
	CurrentWeather(ctx context.Context) (*models.Weather, error)
}

// DefaultPortalService is the production implementation.
type DefaultPortalService struct {
	Repo  portalRepo.PortalRepository
	Cache *redis.Client
	// Client is the HTTP client for weather fetches; defaults to a
	// 10s-timeout client when nil.
	Client *http.Client
}
