package classes

import (
	classesRepo "homeroom/database/repository/classes"
	"homeroom/models"
)

// ClassService manages a user's configured classes and class aliases.
type ClassService interface {
	// GetClasses retrieves all classes configured by a user.
	GetClasses(userID string) ([]models.Class, error)
	// SaveClass validates and inserts or updates a class. A missing color
	// is assigned deterministically from the class name.
	SaveClass(class *models.Class) (*models.Class, error)
	// DeleteClass removes a class owned by the user.
	DeleteClass(userID, classID string) error

	// GetAliases retrieves all of a user's class aliases.
	GetAliases(userID string) ([]models.ClassAlias, error)
	// SaveAlias validates and inserts or updates an alias.
	SaveAlias(alias *models.ClassAlias) (*models.ClassAlias, error)
	// DeleteAlias removes an alias owned by the user.
	DeleteAlias(userID, aliasID string) error
}

// DefaultClassService is the production implementation.
type DefaultClassService struct {
	Repo classesRepo.ClassRepository
}
