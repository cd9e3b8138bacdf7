package classesRepo

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

// MongoClassRepo implements ClassRepository using MongoDB.
type MongoClassRepo struct {
	classes *mongo.Collection
	aliases *mongo.Collection
}

// NewMongoClassRepo creates a new instance of ClassRepository using MongoDB.
func NewMongoClassRepo() ClassRepository {
	db := database.MongoClient.Database("homeroom")
	repo := &MongoClassRepo{
		classes: db.Collection("classes"),
		aliases: db.Collection("aliases"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoClassRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.classes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create class indexes: %w", err)
	}

	_, err = r.aliases.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "raw", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to create alias indexes: %w", err)
	}
	return nil
}

// GetByUser retrieves all classes configured by a user.
func (r *MongoClassRepo) GetByUser(userID string) ([]models.Class, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.classes.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve classes for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var classes []models.Class
	for cursor.Next(ctx) {
		var c models.Class
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode class: %w", err)
		}
		classes = append(classes, c)
	}
	return classes, nil
}

// GetByID retrieves a single class by its unique ID.
func (r *MongoClassRepo) GetByID(id string) (*models.Class, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var c models.Class
	if err := r.classes.FindOne(ctx, bson.M{"id": id}).Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to fetch class with id %s: %w", id, err)
	}
	return &c, nil
}

// Upsert inserts or replaces a class record.
func (r *MongoClassRepo) Upsert(class *models.Class) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := r.classes.ReplaceOne(ctx, bson.M{"id": class.ID}, class, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert class with id %s: %w", class.ID, err)
	}
	return nil
}

// Delete removes a class record and any aliases that point at it.
func (r *MongoClassRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.classes.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete class with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("class with id %s not found", id)
	}
	if _, err := r.aliases.DeleteMany(ctx, bson.M{"classId": id}); err != nil {
		return fmt.Errorf("failed to delete aliases for class %s: %w", id, err)
	}
	return nil
}

// GetAliasesByUser retrieves all of a user's class aliases.
func (r *MongoClassRepo) GetAliasesByUser(userID string) ([]models.ClassAlias, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.aliases.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve aliases for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var aliases []models.ClassAlias
	for cursor.Next(ctx) {
		var a models.ClassAlias
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode alias: %w", err)
		}
		aliases = append(aliases, a)
	}
	return aliases, nil
}

// UpsertAlias inserts or replaces an alias record.
func (r *MongoClassRepo) UpsertAlias(alias *models.ClassAlias) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := r.aliases.ReplaceOne(ctx, bson.M{"id": alias.ID}, alias, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert alias with id %s: %w", alias.ID, err)
	}
	return nil
}

// DeleteAlias removes an alias record by its ID.
func (r *MongoClassRepo) DeleteAlias(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.aliases.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete alias with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("alias with id %s not found", id)
	}
	return nil
}
