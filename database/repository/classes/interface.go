package classesRepo

import "homeroom/models"

// ClassRepository defines methods for configured-class and alias data access.
type ClassRepository interface {
	// GetByUser retrieves all classes configured by a user.
	GetByUser(userID string) ([]models.Class, error)
	// GetByID retrieves a single class by its unique ID.
	GetByID(id string) (*models.Class, error)
	// Upsert inserts or replaces a class record.
	Upsert(class *models.Class) error
	// Delete removes a class record by its ID.
	Delete(id string) error

	// GetAliasesByUser retrieves all of a user's class aliases.
	GetAliasesByUser(userID string) ([]models.ClassAlias, error)
	// UpsertAlias inserts or replaces an alias record.
	UpsertAlias(alias *models.ClassAlias) error
	// DeleteAlias removes an alias record by its ID.
	DeleteAlias(id string) error
}
