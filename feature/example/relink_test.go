package example_test

import (
	"context"
	"testing"

	"lexicon-manager/feature/example/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRelinkSwapsAssociatedWord(t *testing.T) {
	oldID := uuid.NewString()
	newID := uuid.NewString()
	otherID := uuid.NewString()
	svc, db := setupExampleService(t, oldID, newID, otherID)
	ctx := context.Background()

	first := models.Example{Igbo: "a", English: "a", AssociatedWords: []string{oldID, otherID}}
	second := models.Example{Igbo: "b", English: "b", AssociatedWords: []string{oldID}}
	assert.NoError(t, db.Create(&first).Error)
	assert.NoError(t, db.Create(&second).Error)

	examples, err := svc.FindByAssociatedWord(ctx, oldID)
	assert.NoError(t, err)
	assert.Len(t, examples, 2)

	err = svc.Relink(ctx, examples, oldID, newID)
	assert.NoError(t, err)

	var updated models.Example
	assert.NoError(t, db.First(&updated, "id = ?", first.ID).Error)
	assert.NotContains(t, updated.AssociatedWords, oldID)
	assert.Contains(t, updated.AssociatedWords, newID)
	assert.Contains(t, updated.AssociatedWords, otherID)

	var updatedSecond models.Example
	assert.NoError(t, db.First(&updatedSecond, "id = ?", second.ID).Error)
	assert.Equal(t, []string{newID}, updatedSecond.AssociatedWords)
}

func TestRelinkDoesNotDuplicateExistingTarget(t *testing.T) {
	oldID := uuid.NewString()
	newID := uuid.NewString()
	svc, db := setupExampleService(t, oldID, newID)
	ctx := context.Background()

	// Already references both the old and the new word.
	ex := models.Example{Igbo: "a", English: "a", AssociatedWords: []string{oldID, newID}}
	assert.NoError(t, db.Create(&ex).Error)

	examples, err := svc.FindByAssociatedWord(ctx, oldID)
	assert.NoError(t, err)

	err = svc.Relink(ctx, examples, oldID, newID)
	assert.NoError(t, err)

	var updated models.Example
	assert.NoError(t, db.First(&updated, "id = ?", ex.ID).Error)
	assert.Equal(t, []string{newID}, updated.AssociatedWords)
}

func TestRelinkIsIdempotent(t *testing.T) {
	oldID := uuid.NewString()
	newID := uuid.NewString()
	svc, db := setupExampleService(t, oldID, newID)
	ctx := context.Background()

	ex := models.Example{Igbo: "a", English: "a", AssociatedWords: []string{oldID}}
	assert.NoError(t, db.Create(&ex).Error)

	examples, err := svc.FindByAssociatedWord(ctx, oldID)
	assert.NoError(t, err)
	assert.NoError(t, svc.Relink(ctx, examples, oldID, newID))

	var afterFirst models.Example
	assert.NoError(t, db.First(&afterFirst, "id = ?", ex.ID).Error)

	// Relinking an already-relinked example changes nothing, including the
	// version counter.
	assert.NoError(t, svc.Relink(ctx, []models.Example{afterFirst}, oldID, newID))

	var afterSecond models.Example
	assert.NoError(t, db.First(&afterSecond, "id = ?", ex.ID).Error)
	assert.Equal(t, afterFirst.Version, afterSecond.Version)
	assert.Equal(t, afterFirst.AssociatedWords, afterSecond.AssociatedWords)
}

func TestRetargetSuggestion(t *testing.T) {
	sugWordID := uuid.NewString()
	canonicalID := uuid.NewString()
	svc, db := setupExampleService(t, canonicalID)
	ctx := context.Background()

	sug := models.ExampleSuggestion{
		Igbo:            "igbo",
		English:         "english",
		AssociatedWords: []string{sugWordID},
	}
	assert.NoError(t, db.Create(&sug).Error)

	assert.NoError(t, svc.RetargetSuggestion(ctx, &sug, sugWordID, canonicalID))
	assert.Equal(t, []string{canonicalID}, sug.AssociatedWords)

	var stored models.ExampleSuggestion
	assert.NoError(t, db.First(&stored, "id = ?", sug.ID).Error)
	assert.Equal(t, []string{canonicalID}, stored.AssociatedWords)
}
