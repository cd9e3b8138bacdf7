package portalRepo

import "homeroom/models"

// PortalRepository defines data access for the small portal glue modules
// (sticky notes and quotes).
type PortalRepository interface {
	// GetNotesByUser retrieves a user's sticky notes, newest first.
	GetNotesByUser(userID string) ([]models.StickyNote, error)
	// UpsertNote inserts or replaces a sticky note.
	UpsertNote(note *models.StickyNote) error
	// DeleteNote removes a sticky note by its ID.
	DeleteNote(id string) error

	// RandomQuote retrieves one quote at random.
	RandomQuote() (*models.Quote, error)
	// AddQuote inserts a new quote.
	AddQuote(quote *models.Quote) error
}
