package checks

import (
	"fmt"

	"lexicon-manager/core/database"

	"gorm.io/gorm"
)

// SchemaReport lists the columns each lexicon table is missing.
type SchemaReport struct {
	MissingColumns map[string][]string `json:"missingColumns"`
	Healthy        bool                `json:"healthy"`
}

// requiredColumns is the minimum column set each table needs for the merge
// and deletion engines to operate.
var requiredColumns = map[string][]string{
	"words":               {"id", "word", "word_class", "definitions", "variations", "stems", "example_ids", "version"},
	"word_suggestions":    {"id", "word", "original_word_id", "author_id", "merged", "version"},
	"examples":            {"id", "igbo", "english", "associated_words", "version"},
	"example_suggestions": {"id", "igbo", "english", "associated_words", "original_example_id", "author_id", "merged", "version"},
	"merge_intents":       {"id", "suggestion_id", "canonical_word_id", "planned_steps", "completed_steps", "done"},
	"users":               {"id", "email"},
}

// CheckSchema verifies that every lexicon table carries the columns the
// services read and write.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	report := &SchemaReport{MissingColumns: make(map[string][]string), Healthy: true}

	for table, required := range requiredColumns {
		columns, err := database.GetTableColumns(db, table)
		if err != nil {
			return nil, fmt.Errorf("inspecting table %s: %w", table, err)
		}

		present := make(map[string]bool, len(columns))
		for _, col := range columns {
			present[col.Field] = true
		}

		for _, name := range required {
			if !present[name] {
				report.MissingColumns[table] = append(report.MissingColumns[table], name)
				report.Healthy = false
			}
		}
	}
	return report, nil
}
