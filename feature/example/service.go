package example

import (
	"context"
	"errors"
	"strings"
	"time"

	"lexicon-manager/core/apperr"
	"lexicon-manager/core/database"
	"lexicon-manager/core/mailer"
	"lexicon-manager/core/reconcile"
	"lexicon-manager/core/server"
	"lexicon-manager/feature/example/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// WordChecker answers whether a canonical word exists. Implemented by the
// word feature; the interface lives here to keep the dependency one-way.
type WordChecker interface {
	WordExists(ctx context.Context, id string) (bool, error)
}

// Directory resolves a submitter's contact address. Implemented by the user
// feature; absent users or empty addresses are not errors.
type Directory interface {
	EmailOf(ctx context.Context, userID string) (string, error)
}

// Service handles example merges and relinking.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
	words  WordChecker

	directory  Directory
	dispatcher *mailer.Dispatcher
	serverCfg  server.Config
}

// NewService creates a new example service.
func NewService(db *gorm.DB, logger *zap.Logger, words WordChecker) *Service {
	return &Service{db: db, logger: logger, words: words}
}

// EnableNotifications wires submitter notification for merged suggestions.
// Set after construction because the directory comes from a feature that is
// wired later.
func (s *Service) EnableNotifications(directory Directory, dispatcher *mailer.Dispatcher, cfg server.Config) {
	s.directory = directory
	s.dispatcher = dispatcher
	s.serverCfg = cfg
}

// Get returns a canonical example by id.
func (s *Service) Get(ctx context.Context, id string) (*models.Example, error) {
	var ex models.Example
	if err := s.db.WithContext(ctx).First(&ex, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "example doesn't exist")
		}
		return nil, apperr.Wrap(apperr.Persistence, "loading example", err)
	}
	return &ex, nil
}

// GetSuggestion returns an example suggestion by id.
func (s *Service) GetSuggestion(ctx context.Context, id string) (*models.ExampleSuggestion, error) {
	var sug models.ExampleSuggestion
	if err := s.db.WithContext(ctx).First(&sug, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "example suggestion doesn't exist")
		}
		return nil, apperr.Wrap(apperr.Persistence, "loading example suggestion", err)
	}
	return &sug, nil
}

// Merge validates and commits an example suggestion into a canonical
// Example, creating a new record or updating the one named by
// originalExampleId. The suggestion is stamped with merge metadata and
// persisted regardless of branch.
func (s *Service) Merge(ctx context.Context, suggestionID, mergedBy string) (*models.Example, error) {
	sug, err := s.GetSuggestion(ctx, suggestionID)
	if err != nil {
		return nil, err
	}

	normalized, err := s.validate(ctx, sug)
	if err != nil {
		return nil, err
	}
	sug.AssociatedWords = normalized

	var canonical *models.Example
	if sug.OriginalExampleID != nil && *sug.OriginalExampleID != "" {
		canonical, err = s.mergeInto(ctx, sug)
	} else {
		canonical, err = s.createFrom(ctx, sug)
	}
	if err != nil {
		return nil, err
	}

	if err := s.stamp(ctx, sug, canonical.ID, mergedBy); err != nil {
		return nil, err
	}

	s.notify(ctx, sug.AuthorID, canonical)

	s.logger.Info("Example suggestion merged",
		zap.String("suggestion_id", sug.ID),
		zap.String("example_id", canonical.ID),
		zap.String("merged_by", mergedBy))
	return canonical, nil
}

// Create inserts a canonical example directly, associated with one word.
// Used by the word merge engine when materializing embedded drafts.
func (s *Service) Create(ctx context.Context, igbo, english, wordID string) (*models.Example, error) {
	ex := models.Example{
		Igbo:            igbo,
		English:         english,
		AssociatedWords: []string{wordID},
	}
	if err := s.db.WithContext(ctx).Create(&ex).Error; err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "saving the new example", err)
	}
	return &ex, nil
}

// notify looks up the submitter's address and dispatches a confirmation.
// Disabled until EnableNotifications is called; delivery is fire-and-forget.
func (s *Service) notify(ctx context.Context, authorID string, canonical *models.Example) {
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
		SuggestionType: "example",
		DeepLink:       s.serverCfg.ExampleLink(canonical.ID),
		Payload:        canonical,
	})
}

// validate enforces the merge preconditions and returns the associated-word
// ids normalized to their canonical string form, so identifier comparisons
// are unaffected by representation differences.
func (s *Service) validate(ctx context.Context, sug *models.ExampleSuggestion) ([]string, error) {
	if strings.TrimSpace(sug.Igbo) == "" && strings.TrimSpace(sug.English) == "" {
		return nil, apperr.New(apperr.Validation, "missing required text")
	}

	// A canonical example is reachable only through its associated words, so
	// an empty set may never survive a merge.
	if len(sug.AssociatedWords) == 0 {
		return nil, apperr.New(apperr.Validation, "missing associated words")
	}

	normalized := make([]string, 0, len(sug.AssociatedWords))
	for _, raw := range sug.AssociatedWords {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, apperr.New(apperr.Validation, "invalid associated word")
		}
		normalized = append(normalized, id.String())
	}

	for _, id := range normalized {
		exists, err := s.words.WordExists(ctx, id)
		if err != nil {
			return nil, apperr.Wrap(apperr.Persistence, "checking associated word", err)
		}
		if !exists {
			return nil, apperr.New(apperr.Validation, "unknown associated word")
		}
	}

	if reconcile.HasDuplicates(normalized) {
		return nil, apperr.New(apperr.Validation, "duplicate associated words")
	}

	return normalized, nil
}

// mergeInto overwrites the canonical example named by the suggestion.
func (s *Service) mergeInto(ctx context.Context, sug *models.ExampleSuggestion) (*models.Example, error) {
	var canonical models.Example
	if err := s.db.WithContext(ctx).First(&canonical, "id = ?", *sug.OriginalExampleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "example doesn't exist")
		}
		return nil, apperr.Wrap(apperr.Persistence, "loading example", err)
	}

	canonical.Igbo = sug.Igbo
	canonical.English = sug.English
	canonical.AssociatedWords = reconcile.Dedup(sug.AssociatedWords)
	canonical.Version++

	if err := database.SaveVersioned(s.db.WithContext(ctx), &canonical, canonical.ID, canonical.Version); err != nil {
		if errors.Is(err, database.ErrVersionConflict) {
			return nil, apperr.Wrap(apperr.Conflict, "example was modified concurrently", err)
		}
		return nil, apperr.Wrap(apperr.Persistence, "saving example", err)
	}
	return &canonical, nil
}

// createFrom instantiates a brand-new canonical example from the suggestion.
func (s *Service) createFrom(ctx context.Context, sug *models.ExampleSuggestion) (*models.Example, error) {
	canonical := models.Example{
		Igbo:            sug.Igbo,
		English:         sug.English,
		AssociatedWords: reconcile.Dedup(sug.AssociatedWords),
	}
	if err := s.db.WithContext(ctx).Create(&canonical).Error; err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "saving the new example", err)
	}
	return &canonical, nil
}

// stamp writes the merge metadata onto the suggestion. On the create branch
// the suggestion is pointed at the new canonical id so a retry becomes an
// update instead of a second create.
func (s *Service) stamp(ctx context.Context, sug *models.ExampleSuggestion, canonicalID, mergedBy string) error {
	sug.Merged = &models.MergeStamp{MergedBy: mergedBy, MergedAt: time.Now().UTC()}
	if sug.OriginalExampleID == nil || *sug.OriginalExampleID == "" {
		sug.OriginalExampleID = &canonicalID
	}
	sug.Version++

	if err := database.SaveVersioned(s.db.WithContext(ctx), sug, sug.ID, sug.Version); err != nil {
		if errors.Is(err, database.ErrVersionConflict) {
			return apperr.Wrap(apperr.Conflict, "example suggestion was modified concurrently", err)
		}
		return apperr.Wrap(apperr.Persistence, "stamping example suggestion", err)
	}
	return nil
}
