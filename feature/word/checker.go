package word

import (
	"context"

	"lexicon-manager/feature/word/models"

	"gorm.io/gorm"
)

// Checker answers word-existence queries for other features. It is a
// standalone type (not a Service method) so the example feature can be
// wired before the word service exists.
type Checker struct {
	db *gorm.DB
}

// NewChecker creates a Checker over the words table.
func NewChecker(db *gorm.DB) *Checker {
	return &Checker{db: db}
}

// WordExists reports whether a canonical word with the given id exists.
func (c *Checker) WordExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&models.Word{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
