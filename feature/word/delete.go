package word

import (
	"context"
	"errors"
	"strings"

	"lexicon-manager/core/apperr"
	"lexicon-manager/core/database"
	"lexicon-manager/core/reconcile"
	"lexicon-manager/feature/word/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Delete removes a canonical word and consolidates its content into a
// surviving word. The deleted word's definitions, variations (plus its own
// headword), stems, and example references are folded into the survivor,
// every example referencing the deleted id is relinked, and the deleted
// record with its orphaned suggestions is archived before the physical
// delete. Returns the updated survivor.
func (s *Service) Delete(ctx context.Context, toBeDeletedID, primaryID string) (*models.Word, error) {
	deleted, err := s.Get(ctx, toBeDeletedID)
	if err != nil {
		return nil, err
	}

	examples, err := s.examples.FindByAssociatedWord(ctx, toBeDeletedID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(primaryID) == "" {
		return nil, apperr.New(apperr.Validation, "no id provided")
	}
	if _, err := uuid.Parse(primaryID); err != nil {
		return nil, apperr.New(apperr.Validation, "invalid id")
	}

	primary, err := s.Get(ctx, primaryID)
	if err != nil {
		return nil, err
	}

	primary.Definitions = reconcile.Union(primary.Definitions, deleted.Definitions)
	// The deleted headword survives as a variation of the primary word.
	primary.Variations = reconcile.Union(primary.Variations, append(deleted.Variations, deleted.Word))
	primary.Stems = reconcile.Union(primary.Stems, deleted.Stems)
	primary.ExampleIDs = reconcile.Union(primary.ExampleIDs, deleted.ExampleIDs)

	if err := s.archiveDeleted(ctx, deleted); err != nil {
		return nil, err
	}

	if err := s.purge(ctx, deleted); err != nil {
		return nil, err
	}

	if err := s.examples.Relink(ctx, examples, deleted.ID, primary.ID); err != nil {
		return nil, err
	}

	primary.Version++
	if err := database.SaveVersioned(s.db.WithContext(ctx), primary, primary.ID, primary.Version); err != nil {
		if errors.Is(err, database.ErrVersionConflict) {
			return nil, apperr.Wrap(apperr.Conflict, "word was modified concurrently", err)
		}
		return nil, apperr.Wrap(apperr.Persistence, "saving word", err)
	}

	s.invalidate(ctx, deleted.Word)
	s.invalidate(ctx, primary.Word)

	s.logger.Info("Word deleted and consolidated",
		zap.String("deleted_id", deleted.ID),
		zap.String("primary_id", primary.ID),
		zap.Int("relinked_examples", len(examples)))
	return primary, nil
}

// archiveDeleted snapshots the word and its orphaned suggestions to object
// storage before they are removed. A nil archiver disables archiving.
func (s *Service) archiveDeleted(ctx context.Context, deleted *models.Word) error {
	if s.archiver == nil {
		return nil
	}

	if err := s.archiver.Archive(ctx, "word", deleted.ID, deleted); err != nil {
		return apperr.Wrap(apperr.Persistence, "archiving word", err)
	}

	var orphans []models.WordSuggestion
	if err := s.db.WithContext(ctx).Find(&orphans, "original_word_id = ?", deleted.ID).Error; err != nil {
		return apperr.Wrap(apperr.Persistence, "loading orphaned suggestions", err)
	}
	for i := range orphans {
		if err := s.archiver.Archive(ctx, "word-suggestion", orphans[i].ID, &orphans[i]); err != nil {
			return apperr.Wrap(apperr.Persistence, "archiving word suggestion", err)
		}
	}
	return nil
}

// purge physically removes the word and the suggestions that edited it.
func (s *Service) purge(ctx context.Context, deleted *models.Word) error {
	if err := s.db.WithContext(ctx).Delete(&models.WordSuggestion{}, "original_word_id = ?", deleted.ID).Error; err != nil {
		return apperr.Wrap(apperr.Persistence, "deleting orphaned suggestions", err)
	}
	if err := s.db.WithContext(ctx).Delete(&models.Word{}, "id = ?", deleted.ID).Error; err != nil {
		return apperr.Wrap(apperr.Persistence, "deleting word", err)
	}
	return nil
}
