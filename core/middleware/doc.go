// Package middleware groups the Fiber middlewares used by the HTTP surface.
//
// Subpackages:
//   - rayid: assigns a unique ray id to every request for log correlation.
//   - auth: static API-key protection for the whole API.
package middleware
