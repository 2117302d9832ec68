package word

import (
	"context"
	"encoding/json"
	"errors"

	"lexicon-manager/core/apperr"
	"lexicon-manager/core/cache"
	"lexicon-manager/core/mailer"
	"lexicon-manager/core/reconcile"
	"lexicon-manager/core/server"
	"lexicon-manager/core/storage"
	"lexicon-manager/feature/example"
	"lexicon-manager/feature/word/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Directory resolves a submitter's contact address. Implemented by the user
// feature; absent users or empty addresses are not errors.
type Directory interface {
	EmailOf(ctx context.Context, userID string) (string, error)
}

// Service handles word merges, creation, and deletion/consolidation.
type Service struct {
	db         *gorm.DB
	logger     *zap.Logger
	examples   *example.Service
	directory  Directory
	dispatcher *mailer.Dispatcher
	cache      *cache.Cache
	archiver   *storage.Archiver
	serverCfg  server.Config
}

// NewService creates a new word service. The cache and archiver may be nil
// (caching disabled, archiving disabled).
func NewService(db *gorm.DB, logger *zap.Logger, examples *example.Service, directory Directory,
	dispatcher *mailer.Dispatcher, wordCache *cache.Cache, archiver *storage.Archiver, serverCfg server.Config) *Service {
	return &Service{
		db:         db,
		logger:     logger,
		examples:   examples,
		directory:  directory,
		dispatcher: dispatcher,
		cache:      wordCache,
		archiver:   archiver,
		serverCfg:  serverCfg,
	}
}

// Get returns a canonical word by id.
func (s *Service) Get(ctx context.Context, id string) (*models.Word, error) {
	var w models.Word
	if err := s.db.WithContext(ctx).First(&w, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "word doesn't exist")
		}
		return nil, apperr.Wrap(apperr.Persistence, "loading word", err)
	}
	return &w, nil
}

// GetSuggestion returns a word suggestion by id.
func (s *Service) GetSuggestion(ctx context.Context, id string) (*models.WordSuggestion, error) {
	var sug models.WordSuggestion
	if err := s.db.WithContext(ctx).First(&sug, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "word suggestion doesn't exist")
		}
		return nil, apperr.Wrap(apperr.Persistence, "loading word suggestion", err)
	}
	return &sug, nil
}

// Populated returns a word with its example references resolved.
func (s *Service) Populated(ctx context.Context, id string) (*models.PopulatedWord, error) {
	w, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	populated := models.PopulatedWord{Word: *w}
	if len(w.ExampleIDs) > 0 {
		if err := s.db.WithContext(ctx).Where("id IN ?", w.ExampleIDs).Find(&populated.Examples).Error; err != nil {
			return nil, apperr.Wrap(apperr.Persistence, "loading word examples", err)
		}
	}
	return &populated, nil
}

// FindByHeadword returns the populated word for a headword, cache-aside.
func (s *Service) FindByHeadword(ctx context.Context, headword string) (*models.PopulatedWord, error) {
	key := cache.WordKey(headword)
	if payload, err := s.cache.Get(ctx, key); err == nil {
		var cached models.PopulatedWord
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	var w models.Word
	if err := s.db.WithContext(ctx).First(&w, "word = ?", headword).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "word doesn't exist")
		}
		return nil, apperr.Wrap(apperr.Persistence, "loading word", err)
	}

	populated, err := s.Populated(ctx, w.ID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(populated); err == nil {
		_ = s.cache.Set(ctx, key, payload)
	}
	return populated, nil
}

// Create inserts a canonical word directly (administrative path; also used
// internally by the merge engine). Array fields are deduplicated on the way
// in.
func (s *Service) Create(ctx context.Context, fields models.Word) (*models.Word, error) {
	w := models.Word{
		Word:        fields.Word,
		WordClass:   fields.WordClass,
		Definitions: reconcile.Dedup(fields.Definitions),
		Variations:  reconcile.Dedup(fields.Variations),
		Stems:       reconcile.Dedup(fields.Stems),
		ExampleIDs:  reconcile.Dedup(fields.ExampleIDs),
	}
	if err := s.db.WithContext(ctx).Create(&w).Error; err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "saving the new word", err)
	}

	s.invalidate(ctx, w.Word)
	return &w, nil
}

// invalidate drops the cached entry for a headword after a mutation.
func (s *Service) invalidate(ctx context.Context, headword string) {
	if err := s.cache.Delete(ctx, cache.WordKey(headword)); err != nil {
		s.logger.Warn("Cache invalidation failed", zap.String("word", headword), zap.Error(err))
	}
}
