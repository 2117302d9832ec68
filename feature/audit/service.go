package audit

import (
	"context"

	"lexicon-manager/feature/audit/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles lexicon consistency checks.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new audit service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// CheckExampleReferences returns examples pointing at nonexistent words.
func (s *Service) CheckExampleReferences(ctx context.Context) ([]checks.DanglingRef, error) {
	return checks.CheckExampleReferences(ctx, s.db)
}

// CheckWordExamples returns words pointing at nonexistent examples.
func (s *Service) CheckWordExamples(ctx context.Context) ([]checks.DanglingRef, error) {
	return checks.CheckWordExamples(ctx, s.db)
}

// CheckDuplicates returns records whose array fields carry repeated values.
func (s *Service) CheckDuplicates(ctx context.Context) ([]checks.DuplicateReport, error) {
	wordReports, err := checks.CheckWordDuplicates(ctx, s.db)
	if err != nil {
		return nil, err
	}
	exampleReports, err := checks.CheckExampleDuplicates(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return append(wordReports, exampleReports...), nil
}

// CheckMergedSuggestions returns merged suggestions whose canonical record
// is missing.
func (s *Service) CheckMergedSuggestions(ctx context.Context) ([]checks.OrphanedSuggestion, error) {
	return checks.CheckMergedSuggestions(ctx, s.db)
}

// CheckStaleIntents returns ids of merge cascades that never completed.
func (s *Service) CheckStaleIntents(ctx context.Context) ([]string, error) {
	return checks.CheckStaleIntents(ctx, s.db)
}

// CheckSchema verifies the lexicon tables carry their required columns.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}
