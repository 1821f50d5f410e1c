// Package rawg is the client for the game-database enrichment provider.
//
// It supplies free-text descriptions and genre lists per title, consulted
// once per item during a sync run. Enrichment is best effort by contract:
// a failed or empty lookup leaves the canonical record without description
// and genres, it never fails the run.
package rawg
