package checks

import (
	"context"
	"fmt"

	examplemodels "lexicon-manager/feature/example/models"
	wordmodels "lexicon-manager/feature/word/models"

	"gorm.io/gorm"
)

// OrphanedSuggestion names a merged suggestion whose canonical record no
// longer exists.
type OrphanedSuggestion struct {
	SuggestionID string `json:"suggestionId"`
	CanonicalID  string `json:"canonicalId"`
	Kind         string `json:"kind"`
}

// CheckMergedSuggestions returns merged suggestions pointing at canonical
// records that have since disappeared. A merged suggestion always carries
// its canonical id, so a missing target means an unarchived hard delete.
func CheckMergedSuggestions(ctx context.Context, db *gorm.DB) ([]OrphanedSuggestion, error) {
	wordIDs, err := idSet(ctx, db, &wordmodels.Word{})
	if err != nil {
		return nil, fmt.Errorf("loading word ids: %w", err)
	}
	exampleIDs, err := idSet(ctx, db, &examplemodels.Example{})
	if err != nil {
		return nil, fmt.Errorf("loading example ids: %w", err)
	}

	var orphans []OrphanedSuggestion

	var wordSugs []wordmodels.WordSuggestion
	if err := db.WithContext(ctx).Where("merged IS NOT NULL").Find(&wordSugs).Error; err != nil {
		return nil, fmt.Errorf("loading word suggestions: %w", err)
	}
	for _, sug := range wordSugs {
		if sug.OriginalWordID != nil && !wordIDs[*sug.OriginalWordID] {
			orphans = append(orphans, OrphanedSuggestion{
				SuggestionID: sug.ID,
				CanonicalID:  *sug.OriginalWordID,
				Kind:         "word",
			})
		}
	}

	var exampleSugs []examplemodels.ExampleSuggestion
	if err := db.WithContext(ctx).Where("merged IS NOT NULL").Find(&exampleSugs).Error; err != nil {
		return nil, fmt.Errorf("loading example suggestions: %w", err)
	}
	for _, sug := range exampleSugs {
		if sug.OriginalExampleID != nil && !exampleIDs[*sug.OriginalExampleID] {
			orphans = append(orphans, OrphanedSuggestion{
				SuggestionID: sug.ID,
				CanonicalID:  *sug.OriginalExampleID,
				Kind:         "example",
			})
		}
	}

	return orphans, nil
}

// CheckStaleIntents returns merge intents left undone, meaning a merge
// cascade started but never completed.
func CheckStaleIntents(ctx context.Context, db *gorm.DB) ([]string, error) {
	var ids []string
	err := db.WithContext(ctx).Model(&wordmodels.MergeIntent{}).
		Where("done = ?", false).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("loading merge intents: %w", err)
	}
	return ids, nil
}
