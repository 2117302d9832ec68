// Package word implements the Word Merge Engine and the word
// deletion/consolidation engine.
//
// Merging a word suggestion either overwrites the canonical word named by
// originalWordId or creates a brand-new canonical word (materializing any
// embedded example drafts). Both branches then run the post-merge cascade:
// every example suggestion that referenced the word suggestion's id is
// retargeted to the canonical id and driven through the example merge
// engine. A durable merge intent is written before the cascade starts and
// updated after each nested step, so a failed merge can be retried without
// duplicating already-completed work. The outer suggestion's merge stamp is
// written last.
//
// Deleting a word folds its definitions, variations (including its own
// headword), and stems into a surviving word, archives the deleted record
// and its orphaned suggestions to object storage, and relinks every example
// to the survivor.
package word
