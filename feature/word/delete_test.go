package word_test

import (
	"context"
	"testing"

	"lexicon-manager/core/apperr"
	examplemodels "lexicon-manager/feature/example/models"
	"lexicon-manager/feature/word/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestDeleteConsolidatesIntoPrimary(t *testing.T) {
	svc, db := setupWordService(t)
	ctx := context.Background()

	primary, err := svc.Create(ctx, models.Word{
		Word:        "nri",
		Definitions: []string{"food"},
		Variations:  []string{"nrí"},
		Stems:       []string{"ri"},
	})
	assert.NoError(t, err)

	doomed, err := svc.Create(ctx, models.Word{
		Word:        "ncha",
		Definitions: []string{"food", "meal"},
		Variations:  []string{"nchà"},
		Stems:       []string{"cha"},
	})
	assert.NoError(t, err)

	ex := examplemodels.Example{
		Igbo:            "ọ na-eri nri",
		English:         "he is eating food",
		AssociatedWords: []string{doomed.ID},
	}
	assert.NoError(t, db.Create(&ex).Error)

	updated, err := svc.Delete(ctx, doomed.ID, primary.ID)
	assert.NoError(t, err)

	// Arrays are unioned without duplicates; the deleted headword survives
	// as a variation.
	assert.Equal(t, []string{"food", "meal"}, updated.Definitions)
	assert.Equal(t, []string{"nrí", "nchà", "ncha"}, updated.Variations)
	assert.Equal(t, []string{"ri", "cha"}, updated.Stems)

	// The example now references the survivor.
	var relinked examplemodels.Example
	assert.NoError(t, db.First(&relinked, "id = ?", ex.ID).Error)
	assert.Equal(t, []string{primary.ID}, relinked.AssociatedWords)

	// The deleted record is gone.
	_, err = svc.Get(ctx, doomed.ID)
	assert.Error(t, err)
	assert.True(t, apperr.IsCategory(err, apperr.NotFound))
}

func TestDeleteFoldsExampleReferences(t *testing.T) {
	svc, db := setupWordService(t)
	ctx := context.Background()

	ex := examplemodels.Example{Igbo: "a", English: "a"}
	assert.NoError(t, db.Create(&ex).Error)

	primary, err := svc.Create(ctx, models.Word{Word: "nri"})
	assert.NoError(t, err)
	doomed, err := svc.Create(ctx, models.Word{Word: "ncha", ExampleIDs: []string{ex.ID}})
	assert.NoError(t, err)

	updated, err := svc.Delete(ctx, doomed.ID, primary.ID)
	assert.NoError(t, err)
	assert.Contains(t, updated.ExampleIDs, ex.ID)
}

func TestDeletePurgesOrphanedSuggestions(t *testing.T) {
	svc, db := setupWordService(t)
	ctx := context.Background()

	primary, err := svc.Create(ctx, models.Word{Word: "nri"})
	assert.NoError(t, err)
	doomed, err := svc.Create(ctx, models.Word{Word: "ncha"})
	assert.NoError(t, err)

	orphan := models.WordSuggestion{Word: "ncha", OriginalWordID: &doomed.ID}
	assert.NoError(t, db.Create(&orphan).Error)

	_, err = svc.Delete(ctx, doomed.ID, primary.ID)
	assert.NoError(t, err)

	err = db.First(&models.WordSuggestion{}, "id = ?", orphan.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteRejectsMissingPrimaryID(t *testing.T) {
	svc, _ := setupWordService(t)
	ctx := context.Background()

	doomed, err := svc.Create(ctx, models.Word{Word: "ncha"})
	assert.NoError(t, err)

	_, err = svc.Delete(ctx, doomed.ID, "")
	assert.Error(t, err)
	assert.True(t, apperr.IsCategory(err, apperr.Validation))

	// The word is untouched.
	_, err = svc.Get(ctx, doomed.ID)
	assert.NoError(t, err)
}

func TestDeleteRejectsMalformedPrimaryID(t *testing.T) {
	svc, _ := setupWordService(t)
	ctx := context.Background()

	doomed, err := svc.Create(ctx, models.Word{Word: "ncha"})
	assert.NoError(t, err)

	_, err = svc.Delete(ctx, doomed.ID, "not-a-uuid")
	assert.Error(t, err)
	assert.True(t, apperr.IsCategory(err, apperr.Validation))
}

func TestDeleteMissingWord(t *testing.T) {
	svc, _ := setupWordService(t)

	_, err := svc.Delete(context.Background(), uuid.NewString(), uuid.NewString())
	assert.Error(t, err)
	assert.True(t, apperr.IsCategory(err, apperr.NotFound))
}

func TestDeleteMissingPrimaryWord(t *testing.T) {
	svc, _ := setupWordService(t)
	ctx := context.Background()

	doomed, err := svc.Create(ctx, models.Word{Word: "ncha"})
	assert.NoError(t, err)

	_, err = svc.Delete(ctx, doomed.ID, uuid.NewString())
	assert.Error(t, err)
	assert.True(t, apperr.IsCategory(err, apperr.NotFound))
}
