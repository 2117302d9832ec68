// Package example implements the Example Merge Engine and the
// cross-reference relinker.
//
// An example suggestion is validated (non-empty text, well-formed and
// existing associated words, no duplicates) and committed into a canonical
// Example: either updating the record named by originalExampleId or creating
// a brand-new one. The suggestion is stamped with the merger's identity
// either way.
//
// The relinker rewrites example-to-word back-references when a word's
// identity changes (merge cascade or deletion), enforcing the "no dangling,
// no duplicate" invariant. It is idempotent so a retried operation converges
// on the same final state.
package example
