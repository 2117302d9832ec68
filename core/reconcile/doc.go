// Package reconcile provides the dedup/union logic for denormalized array
// fields (definitions, variations, stems, reference lists).
//
// Every merge and deletion path funnels its array reconciliation through this
// package so the "no duplicate values" invariant holds everywhere. All
// functions are pure: inputs are never mutated, outputs preserve first-seen
// order.
//
// # Usage
//
//	merged := reconcile.Union(primary.Definitions, deleted.Definitions)
//	clean := reconcile.Dedup(example.AssociatedWords)
package reconcile
