package word

import (
	"context"
	"errors"
	"time"

	"lexicon-manager/core/apperr"
	"lexicon-manager/core/database"
	"lexicon-manager/core/mailer"
	"lexicon-manager/core/reconcile"
	examplemodels "lexicon-manager/feature/example/models"
	"lexicon-manager/feature/word/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Merge validates and commits a word suggestion into a canonical Word,
// drives the post-merge cascade over its nested example suggestions, and
// returns the fully populated canonical record. The submitter is notified
// best-effort after the merge is committed.
func (s *Service) Merge(ctx context.Context, sug *models.WordSuggestion, mergedBy string) (*models.PopulatedWord, error) {
	// A pre-existing intent means a previous attempt already picked (or
	// created) the canonical record; resume against it instead of
	// branching again, so a retried create cannot duplicate the word.
	intent, err := s.findIntent(ctx, sug.ID)
	if err != nil {
		return nil, err
	}

	var canonical *models.Word
	switch {
	case intent != nil && intent.CanonicalWordID != "":
		canonical, err = s.resume(ctx, sug, intent.CanonicalWordID)
	case sug.OriginalWordID != nil && *sug.OriginalWordID != "":
		canonical, err = s.mergeInto(ctx, sug)
	default:
		canonical, err = s.createFrom(ctx, sug)
	}
	if err != nil {
		return nil, err
	}

	if intent == nil {
		if intent, err = s.createIntent(ctx, sug.ID, canonical.ID); err != nil {
			return nil, err
		}
	}

	if err := s.cascade(ctx, canonical, sug, intent, mergedBy); err != nil {
		return nil, err
	}

	populated, err := s.Populated(ctx, canonical.ID)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, canonical.Word)
	s.notify(ctx, sug.AuthorID, "word", canonical.Word, populated)

	s.logger.Info("Word suggestion merged",
		zap.String("suggestion_id", sug.ID),
		zap.String("word_id", canonical.ID),
		zap.String("merged_by", mergedBy))
	return populated, nil
}

// mergeInto overwrites the canonical word named by the suggestion.
func (s *Service) mergeInto(ctx context.Context, sug *models.WordSuggestion) (*models.Word, error) {
	canonical, err := s.Get(ctx, *sug.OriginalWordID)
	if err != nil {
		return nil, err
	}
	return s.overwrite(ctx, canonical, sug)
}

// resume re-applies the suggestion onto the canonical record recorded in a
// previous attempt's intent. Falls back to the normal branch if that record
// has since vanished.
func (s *Service) resume(ctx context.Context, sug *models.WordSuggestion, canonicalID string) (*models.Word, error) {
	canonical, err := s.Get(ctx, canonicalID)
	if err != nil {
		if apperr.IsCategory(err, apperr.NotFound) {
			if sug.OriginalWordID != nil && *sug.OriginalWordID != "" {
				return s.mergeInto(ctx, sug)
			}
			return s.createFrom(ctx, sug)
		}
		return nil, err
	}
	return s.overwrite(ctx, canonical, sug)
}

// overwrite replaces the canonical record's content with the suggestion's,
// running every array field through the reconciler so the no-duplicates
// invariant holds.
func (s *Service) overwrite(ctx context.Context, canonical *models.Word, sug *models.WordSuggestion) (*models.Word, error) {
	previous := canonical.Word
	canonical.Word = sug.Word
	canonical.WordClass = sug.WordClass
	canonical.Definitions = reconcile.Dedup(sug.Definitions)
	canonical.Variations = reconcile.Dedup(sug.Variations)
	canonical.Stems = reconcile.Dedup(sug.Stems)
	canonical.Version++

	if err := database.SaveVersioned(s.db.WithContext(ctx), canonical, canonical.ID, canonical.Version); err != nil {
		if errors.Is(err, database.ErrVersionConflict) {
			return nil, apperr.Wrap(apperr.Conflict, "word was modified concurrently", err)
		}
		return nil, apperr.Wrap(apperr.Persistence, "saving word", err)
	}

	// A rename leaves the old headword's cache entry pointing at this record.
	if previous != canonical.Word {
		s.invalidate(ctx, previous)
	}
	return canonical, nil
}

// createFrom constructs a brand-new canonical word from the suggestion.
// The word is persisted twice: once to obtain an id (example creation needs
// the parent id first), once to attach the created example ids.
func (s *Service) createFrom(ctx context.Context, sug *models.WordSuggestion) (*models.Word, error) {
	canonical := models.Word{
		Word:        sug.Word,
		WordClass:   sug.WordClass,
		Definitions: reconcile.Dedup(sug.Definitions),
		Variations:  reconcile.Dedup(sug.Variations),
		Stems:       reconcile.Dedup(sug.Stems),
	}
	if err := s.db.WithContext(ctx).Create(&canonical).Error; err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "saving the new word", err)
	}

	exampleIDs := make([]string, 0, len(sug.Examples))
	for _, draft := range sug.Examples {
		ex, err := s.examples.Create(ctx, draft.Igbo, draft.English, canonical.ID)
		if err != nil {
			return nil, apperr.Wrap(apperr.Persistence, "saving the new word", err)
		}
		exampleIDs = append(exampleIDs, ex.ID)
	}

	canonical.ExampleIDs = reconcile.Dedup(exampleIDs)
	canonical.Version++
	if err := database.SaveVersioned(s.db.WithContext(ctx), &canonical, canonical.ID, canonical.Version); err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "saving the new word", err)
	}
	return &canonical, nil
}

// cascade merges every example suggestion that referenced the word
// suggestion's own id, then stamps the outer suggestion last. Each nested
// step is planned on the intent before its retarget and completed after its
// merge; a crash mid-cascade leaves the outer suggestion still pending and
// the intent resumable.
func (s *Service) cascade(ctx context.Context, canonical *models.Word, sug *models.WordSuggestion,
	intent *models.MergeIntent, mergedBy string) error {

	nested, err := s.examples.SuggestionsByAssociatedWord(ctx, sug.ID)
	if err != nil {
		return err
	}

	// A crash between a retarget and its merge leaves the nested suggestion
	// carrying the canonical id already, invisible to the scan above. The
	// planned steps recorded before each retarget bring those back in.
	for _, id := range intent.PlannedSteps {
		if intent.StepDone(id) || containsSuggestion(nested, id) {
			continue
		}
		ns, err := s.examples.GetSuggestion(ctx, id)
		if err != nil {
			if apperr.IsCategory(err, apperr.NotFound) {
				continue
			}
			return err
		}
		nested = append(nested, *ns)
	}

	mergedExampleIDs := make([]string, 0, len(nested))
	for i := range nested {
		ns := &nested[i]
		if intent.StepDone(ns.ID) {
			continue
		}

		if !intent.StepPlanned(ns.ID) {
			intent.PlannedSteps = append(intent.PlannedSteps, ns.ID)
			if err := s.saveIntent(ctx, intent); err != nil {
				return err
			}
		}
		if err := s.examples.RetargetSuggestion(ctx, ns, sug.ID, canonical.ID); err != nil {
			return err
		}
		ex, err := s.examples.Merge(ctx, ns.ID, mergedBy)
		if err != nil {
			return err
		}
		mergedExampleIDs = append(mergedExampleIDs, ex.ID)

		intent.CompletedSteps = append(intent.CompletedSteps, ns.ID)
		if err := s.saveIntent(ctx, intent); err != nil {
			return err
		}
	}

	// Attach cascaded examples to the canonical word's reference list.
	if len(mergedExampleIDs) > 0 {
		canonical.ExampleIDs = reconcile.Union(canonical.ExampleIDs, mergedExampleIDs)
		canonical.Version++
		if err := database.SaveVersioned(s.db.WithContext(ctx), canonical, canonical.ID, canonical.Version); err != nil {
			return apperr.Wrap(apperr.Persistence, "attaching cascaded examples", err)
		}
	}

	if err := s.stampSuggestion(ctx, sug, canonical.ID, mergedBy); err != nil {
		return err
	}

	intent.Done = true
	return s.saveIntent(ctx, intent)
}

// stampSuggestion writes the authoritative merged marker onto the outer
// suggestion. On the create branch the suggestion is pointed at the new
// canonical id.
func (s *Service) stampSuggestion(ctx context.Context, sug *models.WordSuggestion, canonicalID, mergedBy string) error {
	sug.Merged = &examplemodels.MergeStamp{MergedBy: mergedBy, MergedAt: time.Now().UTC()}
	if sug.OriginalWordID == nil || *sug.OriginalWordID == "" {
		sug.OriginalWordID = &canonicalID
	}
	sug.Version++

	if err := database.SaveVersioned(s.db.WithContext(ctx), sug, sug.ID, sug.Version); err != nil {
		if errors.Is(err, database.ErrVersionConflict) {
			return apperr.Wrap(apperr.Conflict, "word suggestion was modified concurrently", err)
		}
		return apperr.Wrap(apperr.Persistence, "stamping word suggestion", err)
	}
	return nil
}

func (s *Service) findIntent(ctx context.Context, suggestionID string) (*models.MergeIntent, error) {
	var intent models.MergeIntent
	err := s.db.WithContext(ctx).First(&intent, "suggestion_id = ?", suggestionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "loading merge intent", err)
	}
	return &intent, nil
}

func (s *Service) createIntent(ctx context.Context, suggestionID, canonicalID string) (*models.MergeIntent, error) {
	intent := models.MergeIntent{
		SuggestionID:    suggestionID,
		CanonicalWordID: canonicalID,
		PlannedSteps:    []string{},
		CompletedSteps:  []string{},
	}
	if err := s.db.WithContext(ctx).Create(&intent).Error; err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "recording merge intent", err)
	}
	return &intent, nil
}

func containsSuggestion(suggestions []examplemodels.ExampleSuggestion, id string) bool {
	for i := range suggestions {
		if suggestions[i].ID == id {
			return true
		}
	}
	return false
}

func (s *Service) saveIntent(ctx context.Context, intent *models.MergeIntent) error {
	if err := s.db.WithContext(ctx).Save(intent).Error; err != nil {
		return apperr.Wrap(apperr.Persistence, "updating merge intent", err)
	}
	return nil
}

// notify looks up the submitter's address and dispatches a confirmation.
// Absence of a user or address is not an error; delivery is fire-and-forget.
func (s *Service) notify(ctx context.Context, authorID, suggestionType, headword string, payload any) {
	if authorID == "" || s.directory == nil {
		return
	}

	email, err := s.directory.EmailOf(ctx, authorID)
	if err != nil {
		s.logger.Warn("Submitter lookup failed", zap.String("author_id", authorID), zap.Error(err))
		return
	}

	s.dispatcher.Dispatch(mailer.Notice{
		To:             email,
		SuggestionType: suggestionType,
		DeepLink:       s.serverCfg.DeepLink(headword),
		Payload:        payload,
	})
}
