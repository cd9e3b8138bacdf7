package portalRepo

import (
	"context"
	"fmt"
	"time"

	"homeroom/database"
	"homeroom/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPortalRepo implements PortalRepository using MongoDB.
type MongoPortalRepo struct {
	notes  *mongo.Collection
	quotes *mongo.Collection
}

// NewMongoPortalRepo creates a new instance of PortalRepository using MongoDB.
func NewMongoPortalRepo() PortalRepository {
	db := database.MongoClient.Database("homeroom")
	repo := &MongoPortalRepo{
		notes:  db.Collection("stickynotes"),
		quotes: db.Collection("quotes"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPortalRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.notes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create note indexes: %w", err)
	}
	return nil
}

// GetNotesByUser retrieves a user's sticky notes, newest first.
func (r *MongoPortalRepo) GetNotesByUser(userID string) ([]models.StickyNote, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.notes.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve notes for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var notes []models.StickyNote
	for cursor.Next(ctx) {
		var n models.StickyNote
		if err := cursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("failed to decode note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// UpsertNote inserts or replaces a sticky note.
func (r *MongoPortalRepo) UpsertNote(note *models.StickyNote) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	note.UpdatedAt = time.Now()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = note.UpdatedAt
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.notes.ReplaceOne(ctx, bson.M{"id": note.ID}, note, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert note with id %s: %w", note.ID, err)
	}
	return nil
}

// DeleteNote removes a sticky note by its ID.
func (r *MongoPortalRepo) DeleteNote(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.notes.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete note with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("note with id %s not found", id)
	}
	return nil
}

// RandomQuote retrieves one quote at random using a sample aggregation.
func (r *MongoPortalRepo) RandomQuote() (*models.Quote, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.M{"size": 1}}},
	}
	cursor, err := r.quotes.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to sample quotes: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return nil, fmt.Errorf("no quotes available")
	}
	var q models.Quote
	if err := cursor.Decode(&q); err != nil {
		return nil, fmt.Errorf("failed to decode quote: %w", err)
	}
	return &q, nil
}

// AddQuote inserts a new quote.
func (r *MongoPortalRepo) AddQuote(quote *models.Quote) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.quotes.InsertOne(ctx, quote); err != nil {
		return fmt.Errorf("failed to insert quote: %w", err)
	}
	return nil
}
