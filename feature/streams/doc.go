// Package streams serves on-demand livestream and clip lookups for catalog
// games.
//
// The livestream provider identifies games by its own numeric ids with no
// fuzzy search, so lookups go through the name-matching fallback chain. A
// successful resolution is cached on the canonical record and trusted for
// seven days; resolution failures are never cached.
package streams
