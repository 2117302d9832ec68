package checks

import (
	"context"
	"fmt"

	"lexicon-manager/core/reconcile"
	examplemodels "lexicon-manager/feature/example/models"
	wordmodels "lexicon-manager/feature/word/models"

	"gorm.io/gorm"
)

// DuplicateReport names a record whose array field carries repeated values.
type DuplicateReport struct {
	RecordID string `json:"recordId"`
	Field    string `json:"field"`
}

// CheckWordDuplicates flags words whose definitions, variations, stems, or
// example-id lists contain repeated values.
func CheckWordDuplicates(ctx context.Context, db *gorm.DB) ([]DuplicateReport, error) {
	var words []wordmodels.Word
	if err := db.WithContext(ctx).Find(&words).Error; err != nil {
		return nil, fmt.Errorf("loading words: %w", err)
	}

	var reports []DuplicateReport
	for _, w := range words {
		fields := map[string][]string{
			"definitions": w.Definitions,
			"variations":  w.Variations,
			"stems":       w.Stems,
			"examples":    w.ExampleIDs,
		}
		for name, values := range fields {
			if reconcile.HasDuplicates(values) {
				reports = append(reports, DuplicateReport{RecordID: w.ID, Field: name})
			}
		}
	}
	return reports, nil
}

// CheckExampleDuplicates flags examples whose associated-word set contains
// repeated ids.
func CheckExampleDuplicates(ctx context.Context, db *gorm.DB) ([]DuplicateReport, error) {
	var examples []examplemodels.Example
	if err := db.WithContext(ctx).Find(&examples).Error; err != nil {
		return nil, fmt.Errorf("loading examples: %w", err)
	}

	var reports []DuplicateReport
	for _, ex := range examples {
		if reconcile.HasDuplicates(ex.AssociatedWords) {
			reports = append(reports, DuplicateReport{RecordID: ex.ID, Field: "associatedWords"})
		}
	}
	return reports, nil
}
