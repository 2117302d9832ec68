package user

import (
	"context"
	"errors"

	"lexicon-manager/core/apperr"
	"lexicon-manager/feature/user/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service answers user lookups.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new user service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "user doesn't exist")
		}
		return nil, apperr.Wrap(apperr.Persistence, "loading user", err)
	}
	return &u, nil
}

// EmailOf returns the contact address for a user id, or an empty string if
// the user does not exist. Missing users are not an error here; the caller
// treats an empty address as "do not notify".
func (s *Service) EmailOf(ctx context.Context, userID string) (string, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", apperr.Wrap(apperr.Persistence, "loading user", err)
	}
	return u.Email, nil
}
