package classes

import (
	"fmt"
	"testing"

	"homeroom/models"
	"homeroom/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memClassRepo is an in-memory ClassRepository for service tests.
type memClassRepo struct {
	classes map[string]models.Class
	aliases map[string]models.ClassAlias
}

func newMemClassRepo() *memClassRepo {
	return &memClassRepo{
		classes: make(map[string]models.Class),
		aliases: make(map[string]models.ClassAlias),
	}
}

func (r *memClassRepo) GetByUser(userID string) ([]models.Class, error) {
	var out []models.Class
	for _, c := range r.classes {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memClassRepo) GetByID(id string) (*models.Class, error) {
	c, ok := r.classes[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return &c, nil
}

func (r *memClassRepo) Upsert(class *models.Class) error {
	r.classes[class.ID] = *class
	return nil
}

func (r *memClassRepo) Delete(id string) error {
	delete(r.classes, id)
	return nil
}

func (r *memClassRepo) GetAliasesByUser(userID string) ([]models.ClassAlias, error) {
	var out []models.ClassAlias
	for _, a := range r.aliases {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memClassRepo) UpsertAlias(alias *models.ClassAlias) error {
	r.aliases[alias.ID] = *alias
	return nil
}

func (r *memClassRepo) DeleteAlias(id string) error {
	delete(r.aliases, id)
	return nil
}

func TestSaveClassAssignsColorAndID(t *testing.T) {
	svc := &DefaultClassService{Repo: newMemClassRepo()}

	saved, err := svc.SaveClass(&models.Class{UserID: "u1", Name: "Chemistry", Block: "C"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "c", saved.Block, "block letter normalized to lower case")
	assert.True(t, utils.ValidHexColor(saved.Color))
	assert.Equal(t, utils.ClassColor("Chemistry"), saved.Color)
	assert.Equal(t, models.ClassTypeOther, saved.Type)
}

func TestSaveClassKeepsValidColor(t *testing.T) {
	svc := &DefaultClassService{Repo: newMemClassRepo()}

	saved, err := svc.SaveClass(&models.Class{UserID: "u1", Name: "Chemistry", Block: "c", Color: "#336699"})
	require.NoError(t, err)
	assert.Equal(t, "#336699", saved.Color)
}

func TestSaveClassValidation(t *testing.T) {
	svc := &DefaultClassService{Repo: newMemClassRepo()}

	_, err := svc.SaveClass(&models.Class{UserID: "u1", Name: "  ", Block: "c"})
	assert.Error(t, err, "empty name")

	_, err = svc.SaveClass(&models.Class{UserID: "u1", Name: "Chemistry", Block: "z"})
	assert.Error(t, err, "bad block letter")

	_, err = svc.SaveClass(&models.Class{UserID: "u1", Name: "Chemistry", Block: "c", Color: "blue"})
	assert.Error(t, err, "bad color")
}

func TestSaveClassDefaultsBlock(t *testing.T) {
	svc := &DefaultClassService{Repo: newMemClassRepo()}

	saved, err := svc.SaveClass(&models.Class{UserID: "u1", Name: "Robotics"})
	require.NoError(t, err)
	assert.Equal(t, models.BlockOther, saved.Block)
}

func TestDeleteClassChecksOwner(t *testing.T) {
	repo := newMemClassRepo()
	svc := &DefaultClassService{Repo: repo}

	saved, err := svc.SaveClass(&models.Class{UserID: "u1", Name: "Chemistry", Block: "c"})
	require.NoError(t, err)

	assert.Error(t, svc.DeleteClass("someone-else", saved.ID))
	require.NoError(t, svc.DeleteClass("u1", saved.ID))

	classes, err := svc.GetClasses("u1")
	require.NoError(t, err)
	assert.Empty(t, classes)
}

func TestSaveAliasRequiresOwnedTarget(t *testing.T) {
	repo := newMemClassRepo()
	svc := &DefaultClassService{Repo: repo}

	saved, err := svc.SaveClass(&models.Class{UserID: "u1", Name: "AP Statistics", Block: "d"})
	require.NoError(t, err)

	alias, err := svc.SaveAlias(&models.ClassAlias{UserID: "u1", Raw: "AP Stats S2", ClassID: saved.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, alias.ID)

	_, err = svc.SaveAlias(&models.ClassAlias{UserID: "u2", Raw: "AP Stats S2", ClassID: saved.ID})
	assert.Error(t, err, "alias target owned by another user")

	_, err = svc.SaveAlias(&models.ClassAlias{UserID: "u1", Raw: "Ghost", ClassID: "missing"})
	assert.Error(t, err, "alias target does not exist")
}

func TestDeleteAliasChecksOwner(t *testing.T) {
	repo := newMemClassRepo()
	svc := &DefaultClassService{Repo: repo}

	saved, err := svc.SaveClass(&models.Class{UserID: "u1", Name: "AP Statistics", Block: "d"})
	require.NoError(t, err)
	alias, err := svc.SaveAlias(&models.ClassAlias{UserID: "u1", Raw: "AP Stats S2", ClassID: saved.ID})
	require.NoError(t, err)

	assert.Error(t, svc.DeleteAlias("u2", alias.ID))
	require.NoError(t, svc.DeleteAlias("u1", alias.ID))
}
