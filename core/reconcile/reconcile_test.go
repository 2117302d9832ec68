package reconcile_test

import (
	"testing"

	"lexicon-manager/core/reconcile"

	"github.com/stretchr/testify/assert"
)

func TestUnionPreservesFirstSeenOrder(t *testing.T) {
	a := []string{"food", "meal"}
	b := []string{"meal", "dish", "food"}

	assert.Equal(t, []string{"food", "meal", "dish"}, reconcile.Union(a, b))
}

func TestUnionEmptyInputs(t *testing.T) {
	assert.Equal(t, []string{"a"}, reconcile.Union([]string{"a"}, nil))
	assert.Equal(t, []string{"b"}, reconcile.Union(nil, []string{"b"}))
	assert.Empty(t, reconcile.Union[string](nil, nil))
}

func TestUnionIsIdempotent(t *testing.T) {
	a := []string{"x", "y", "x"}
	b := []string{"z", "y"}

	once := reconcile.Union(a, b)
	twice := reconcile.Union(once, b)
	assert.Equal(t, once, twice)
}

func TestUnionDropsDuplicatesWithinOneInput(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, reconcile.Union([]string{"a", "a", "b"}, nil))
}

func TestDedup(t *testing.T) {
	assert.Equal(t, []string{"id1", "id2"}, reconcile.Dedup([]string{"id1", "id2", "id1"}))
	assert.Empty(t, reconcile.Dedup[string](nil))
}

func TestWithout(t *testing.T) {
	got := reconcile.Without([]string{"old", "keep", "old"}, "old")
	assert.Equal(t, []string{"keep"}, got)

	assert.Empty(t, reconcile.Without([]string{"old"}, "old"))
}

func TestHasDuplicates(t *testing.T) {
	assert.True(t, reconcile.HasDuplicates([]string{"a", "b", "a"}))
	assert.False(t, reconcile.HasDuplicates([]string{"a", "b"}))
	assert.False(t, reconcile.HasDuplicates[string](nil))
}
