package checks

import (
	"context"
	"fmt"

	examplemodels "lexicon-manager/feature/example/models"
	wordmodels "lexicon-manager/feature/word/models"

	"gorm.io/gorm"
)

// DanglingRef names a record holding a reference to a nonexistent target.
type DanglingRef struct {
	RecordID string `json:"recordId"`
	TargetID string `json:"targetId"`
}

// CheckExampleReferences returns every example whose associated-word set
// names a word that no longer exists.
func CheckExampleReferences(ctx context.Context, db *gorm.DB) ([]DanglingRef, error) {
	wordIDs, err := idSet(ctx, db, &wordmodels.Word{})
	if err != nil {
		return nil, fmt.Errorf("loading word ids: %w", err)
	}

	var examples []examplemodels.Example
	if err := db.WithContext(ctx).Find(&examples).Error; err != nil {
		return nil, fmt.Errorf("loading examples: %w", err)
	}

	var dangling []DanglingRef
	for _, ex := range examples {
		for _, wordID := range ex.AssociatedWords {
			if !wordIDs[wordID] {
				dangling = append(dangling, DanglingRef{RecordID: ex.ID, TargetID: wordID})
			}
		}
	}
	return dangling, nil
}

// CheckWordExamples returns every word whose example-id list names an
// example that no longer exists.
func CheckWordExamples(ctx context.Context, db *gorm.DB) ([]DanglingRef, error) {
	exampleIDs, err := idSet(ctx, db, &examplemodels.Example{})
	if err != nil {
		return nil, fmt.Errorf("loading example ids: %w", err)
	}

	var words []wordmodels.Word
	if err := db.WithContext(ctx).Find(&words).Error; err != nil {
		return nil, fmt.Errorf("loading words: %w", err)
	}

	var dangling []DanglingRef
	for _, w := range words {
		for _, exampleID := range w.ExampleIDs {
			if !exampleIDs[exampleID] {
				dangling = append(dangling, DanglingRef{RecordID: w.ID, TargetID: exampleID})
			}
		}
	}
	return dangling, nil
}

func idSet(ctx context.Context, db *gorm.DB, model any) (map[string]bool, error) {
	var ids []string
	if err := db.WithContext(ctx).Model(model).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
