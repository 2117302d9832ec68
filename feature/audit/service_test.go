package audit_test

import (
	"context"
	"testing"

	"lexicon-manager/core/database"
	"lexicon-manager/feature/audit"
	examplemodels "lexicon-manager/feature/example/models"
	usermodels "lexicon-manager/feature/user/models"
	wordmodels "lexicon-manager/feature/word/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupAuditService(t *testing.T) (*audit.Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)

	err = database.Migrate(db,
		&wordmodels.Word{}, &wordmodels.WordSuggestion{}, &wordmodels.MergeIntent{},
		&examplemodels.Example{}, &examplemodels.ExampleSuggestion{},
		&usermodels.User{},
	)
	assert.NoError(t, err)

	return audit.NewService(db, zap.NewNop()), db
}

func TestCheckExampleReferences(t *testing.T) {
	svc, db := setupAuditService(t)
	ctx := context.Background()

	w := wordmodels.Word{Word: "nri"}
	assert.NoError(t, db.Create(&w).Error)

	missing := uuid.NewString()
	ok := examplemodels.Example{Igbo: "a", English: "a", AssociatedWords: []string{w.ID}}
	broken := examplemodels.Example{Igbo: "b", English: "b", AssociatedWords: []string{missing}}
	assert.NoError(t, db.Create(&ok).Error)
	assert.NoError(t, db.Create(&broken).Error)

	dangling, err := svc.CheckExampleReferences(ctx)
	assert.NoError(t, err)
	assert.Len(t, dangling, 1)
	assert.Equal(t, broken.ID, dangling[0].RecordID)
	assert.Equal(t, missing, dangling[0].TargetID)
}

func TestCheckWordExamples(t *testing.T) {
	svc, db := setupAuditService(t)
	ctx := context.Background()

	ex := examplemodels.Example{Igbo: "a", English: "a"}
	assert.NoError(t, db.Create(&ex).Error)

	missing := uuid.NewString()
	w := wordmodels.Word{Word: "nri", ExampleIDs: []string{ex.ID, missing}}
	assert.NoError(t, db.Create(&w).Error)

	dangling, err := svc.CheckWordExamples(ctx)
	assert.NoError(t, err)
	assert.Len(t, dangling, 1)
	assert.Equal(t, w.ID, dangling[0].RecordID)
	assert.Equal(t, missing, dangling[0].TargetID)
}

func TestCheckDuplicates(t *testing.T) {
	svc, db := setupAuditService(t)
	ctx := context.Background()

	clean := wordmodels.Word{Word: "nri", Definitions: []string{"food"}}
	dirty := wordmodels.Word{Word: "ncha", Definitions: []string{"soap", "soap"}}
	assert.NoError(t, db.Create(&clean).Error)
	assert.NoError(t, db.Create(&dirty).Error)

	dup := uuid.NewString()
	ex := examplemodels.Example{Igbo: "a", English: "a", AssociatedWords: []string{dup, dup}}
	assert.NoError(t, db.Create(&ex).Error)

	reports, err := svc.CheckDuplicates(ctx)
	assert.NoError(t, err)
	assert.Len(t, reports, 2)

	ids := []string{reports[0].RecordID, reports[1].RecordID}
	assert.Contains(t, ids, dirty.ID)
	assert.Contains(t, ids, ex.ID)
}

func TestCheckMergedSuggestions(t *testing.T) {
	svc, db := setupAuditService(t)
	ctx := context.Background()

	w := wordmodels.Word{Word: "nri"}
	assert.NoError(t, db.Create(&w).Error)

	stamp := &examplemodels.MergeStamp{MergedBy: "editor-1"}

	// Healthy: merged and the canonical record still exists.
	healthy := wordmodels.WordSuggestion{Word: "nri", OriginalWordID: &w.ID, Merged: stamp}
	assert.NoError(t, db.Create(&healthy).Error)

	// Orphaned: merged but the canonical record is gone.
	missing := uuid.NewString()
	orphan := wordmodels.WordSuggestion{Word: "ncha", OriginalWordID: &missing, Merged: stamp}
	assert.NoError(t, db.Create(&orphan).Error)

	// Pending suggestions are never flagged.
	pending := wordmodels.WordSuggestion{Word: "mmiri", OriginalWordID: &missing}
	assert.NoError(t, db.Create(&pending).Error)

	orphans, err := svc.CheckMergedSuggestions(ctx)
	assert.NoError(t, err)
	assert.Len(t, orphans, 1)
	assert.Equal(t, orphan.ID, orphans[0].SuggestionID)
	assert.Equal(t, "word", orphans[0].Kind)
}

func TestCheckStaleIntents(t *testing.T) {
	svc, db := setupAuditService(t)
	ctx := context.Background()

	done := wordmodels.MergeIntent{SuggestionID: uuid.NewString(), CanonicalWordID: uuid.NewString(), Done: true}
	stale := wordmodels.MergeIntent{SuggestionID: uuid.NewString(), CanonicalWordID: uuid.NewString()}
	assert.NoError(t, db.Create(&done).Error)
	assert.NoError(t, db.Create(&stale).Error)

	ids, err := svc.CheckStaleIntents(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{stale.ID}, ids)
}

func TestCheckSchema(t *testing.T) {
	svc, _ := setupAuditService(t)

	report, err := svc.CheckSchema()
	assert.NoError(t, err)
	assert.True(t, report.Healthy)
	assert.Empty(t, report.MissingColumns)
}
