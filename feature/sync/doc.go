// Package sync implements the reconciliation stage and the sync orchestrator.
//
// One run moves through a fixed sequence: fetch every primary-provider page,
// delete the previous dataset generation, then enrich, reconcile, and persist
// each item, and finally append a run log. The fetch is all-or-nothing: a
// failed page aborts the run before anything destructive happens. The
// per-item phase isolates faults so a single bad item never costs the rest.
//
// Execution is strictly sequential. The per-provider pacers assume no
// overlapping requests; adding concurrency here requires re-deriving the
// whole throttling model first.
package sync
