package apperr_test

import (
	"errors"
	"testing"

	"lexicon-manager/core/apperr"

	"github.com/stretchr/testify/assert"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperr.Wrap(apperr.Persistence, "saving word", cause)

	assert.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "saving word: connection reset", err.Error())
}

func TestWrapNilCause(t *testing.T) {
	assert.NoError(t, apperr.Wrap(apperr.Persistence, "saving word", nil))
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, apperr.Validation, apperr.CategoryOf(apperr.New(apperr.Validation, "missing required text")))
	assert.Equal(t, apperr.NotFound, apperr.CategoryOf(apperr.New(apperr.NotFound, "word doesn't exist")))

	// Untagged errors are treated as store failures
	assert.Equal(t, apperr.Persistence, apperr.CategoryOf(errors.New("boom")))
}

func TestCategorySurvivesWrapping(t *testing.T) {
	inner := apperr.New(apperr.Conflict, "version changed")
	outer := apperr.Wrap(apperr.Persistence, "relinking examples", inner)

	// errors.As finds the outermost tagged error first
	assert.Equal(t, apperr.Persistence, apperr.CategoryOf(outer))
	assert.True(t, apperr.IsCategory(errors.Unwrap(outer), apperr.Conflict))
}
