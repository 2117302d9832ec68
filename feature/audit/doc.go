// Package audit runs consistency checks over the lexicon tables: dangling
// cross-references between words and examples, duplicate array values that
// slipped past the reconciler, merged suggestions whose canonical record is
// missing, and schema drift. Checks report; they never mutate.
package audit
