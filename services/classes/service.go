package classes

import (
	"fmt"
	"strings"

	"homeroom/models"
	"homeroom/utils"

	"github.com/google/uuid"
)

// validBlocks are the block letters a class may be bound to.
var validBlocks = map[string]bool{
	"a": true, "b": true, "c": true, "d": true, "e": true, "f": true, "g": true,
	models.BlockOther: true,
}

// GetClasses retrieves all classes configured by a user.
func (s *DefaultClassService) GetClasses(userID string) ([]models.Class, error) {
	return s.Repo.GetByUser(userID)
}

// SaveClass validates and inserts or updates a class.
func (s *DefaultClassService) SaveClass(class *models.Class) (*models.Class, error) {
	if strings.TrimSpace(class.Name) == "" {
		return nil, fmt.Errorf("class name is required")
	}
	class.Block = strings.ToLower(class.Block)
	if class.Block == "" {
		class.Block = models.BlockOther
	}
	if !validBlocks[class.Block] {
		return nil, fmt.Errorf("invalid block letter %q", class.Block)
	}
	if class.Type == "" {
		class.Type = models.ClassTypeOther
	}
	if class.Color == "" {
		class.Color = utils.ClassColor(class.Name)
	} else if !utils.ValidHexColor(class.Color) {
		return nil, fmt.Errorf("invalid color %q, expected #RRGGBB", class.Color)
	}
	class.TextDark = utils.TextIsDark(class.Color)

	if class.ID == "" {
		class.ID = uuid.New().String()
	} else if err := s.checkOwner(class.UserID, class.ID); err != nil {
		return nil, err
	}
	if err := s.Repo.Upsert(class); err != nil {
		return nil, err
	}
	return class, nil
}

// DeleteClass removes a class owned by the user.
func (s *DefaultClassService) DeleteClass(userID, classID string) error {
	if err := s.checkOwner(userID, classID); err != nil {
		return err
	}
	return s.Repo.Delete(classID)
}

// GetAliases retrieves all of a user's class aliases.
func (s *DefaultClassService) GetAliases(userID string) ([]models.ClassAlias, error) {
	return s.Repo.GetAliasesByUser(userID)
}

// SaveAlias validates and inserts or updates an alias.
func (s *DefaultClassService) SaveAlias(alias *models.ClassAlias) (*models.ClassAlias, error) {
	if strings.TrimSpace(alias.Raw) == "" {
		return nil, fmt.Errorf("alias source string is required")
	}
	target, err := s.Repo.GetByID(alias.ClassID)
	if err != nil {
		return nil, fmt.Errorf("alias target class not found: %w", err)
	}
	if target.UserID != alias.UserID {
		return nil, fmt.Errorf("alias target class not found")
	}
	if alias.ID == "" {
		alias.ID = uuid.New().String()
	}
	if err := s.Repo.UpsertAlias(alias); err != nil {
		return nil, err
	}
	return alias, nil
}

// DeleteAlias removes an alias owned by the user.
func (s *DefaultClassService) DeleteAlias(userID, aliasID string) error {
	aliases, err := s.Repo.GetAliasesByUser(userID)
	if err != nil {
		return err
	}
	for _, a := range aliases {
		if a.ID == aliasID {
			return s.Repo.DeleteAlias(aliasID)
		}
	}
	return fmt.Errorf("alias with id %s not found", aliasID)
}

// checkOwner verifies the class belongs to the user.
func (s *DefaultClassService) checkOwner(userID, classID string) error {
	c, err := s.Repo.GetByID(classID)
	if err != nil {
		return fmt.Errorf("class with id %s not found", classID)
	}
	if c.UserID != userID {
		return fmt.Errorf("class with id %s not found", classID)
	}
	return nil
}
