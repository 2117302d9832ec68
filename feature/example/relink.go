package example

import (
	"context"
	"errors"
	"slices"

	"lexicon-manager/core/apperr"
	"lexicon-manager/core/database"
	"lexicon-manager/core/reconcile"
	"lexicon-manager/feature/example/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// FindByAssociatedWord returns every canonical example referencing wordID.
// AssociatedWords is a JSON-serialized column, so containment is answered
// with a LIKE over the serialized form; ids are UUIDs, which cannot collide
// as substrings of one another.
func (s *Service) FindByAssociatedWord(ctx context.Context, wordID string) ([]models.Example, error) {
	var examples []models.Example
	err := s.db.WithContext(ctx).
		Where("associated_words LIKE ?", "%"+wordID+"%").
		Find(&examples).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "loading examples by associated word", err)
	}
	return examples, nil
}

// SuggestionsByAssociatedWord returns every example suggestion whose
// associated-word set contains id. During a cascade, id is the parent word
// suggestion's id, not the canonical word's.
func (s *Service) SuggestionsByAssociatedWord(ctx context.Context, id string) ([]models.ExampleSuggestion, error) {
	var suggestions []models.ExampleSuggestion
	err := s.db.WithContext(ctx).
		Where("associated_words LIKE ?", "%"+id+"%").
		Find(&suggestions).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "loading example suggestions by associated word", err)
	}
	return suggestions, nil
}

// Relink rewrites each example's associated-word set from oldWordID to
// newWordID: the new id is added, every occurrence of the old id removed,
// and the result deduplicated. Saves are issued concurrently and joined;
// examples already in the target state are skipped, which makes the whole
// operation idempotent.
func (s *Service) Relink(ctx context.Context, examples []models.Example, oldWordID, newWordID string) error {
	g, ctx := errgroup.WithContext(ctx)

	for i := range examples {
		ex := &examples[i]
		g.Go(func() error {
			linked := reconcile.Union(reconcile.Without(ex.AssociatedWords, oldWordID), []string{newWordID})
			if slices.Equal(linked, ex.AssociatedWords) {
				return nil
			}

			ex.AssociatedWords = linked
			ex.Version++
			if err := database.SaveVersioned(s.db.WithContext(ctx), ex, ex.ID, ex.Version); err != nil {
				if errors.Is(err, database.ErrVersionConflict) {
					return apperr.Wrap(apperr.Conflict, "example was modified concurrently", err)
				}
				return apperr.Wrap(apperr.Persistence, "relinking example", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info("Examples relinked",
		zap.Int("count", len(examples)),
		zap.String("from", oldWordID),
		zap.String("to", newWordID))
	return nil
}

// RetargetSuggestion swaps the parent word suggestion's id for the canonical
// word's id in a nested example suggestion's associated-word set and
// persists it. Part of the post-merge cascade.
func (s *Service) RetargetSuggestion(ctx context.Context, sug *models.ExampleSuggestion, suggestionWordID, canonicalWordID string) error {
	linked := reconcile.Union(reconcile.Without(sug.AssociatedWords, suggestionWordID), []string{canonicalWordID})
	if slices.Equal(linked, sug.AssociatedWords) {
		return nil
	}

	sug.AssociatedWords = linked
	sug.Version++
	if err := database.SaveVersioned(s.db.WithContext(ctx), sug, sug.ID, sug.Version); err != nil {
		if errors.Is(err, database.ErrVersionConflict) {
			return apperr.Wrap(apperr.Conflict, "example suggestion was modified concurrently", err)
		}
		return apperr.Wrap(apperr.Persistence, "retargeting example suggestion", err)
	}
	return nil
}
