// Package catalog owns the canonical game records and their persistence.
//
// It defines the reconciled data model (one record per title plus the
// append-only sync run log), the GORM repository implementing the
// full-replace lifecycle, and thin HTTP handlers exposing the current
// generation and the freshness indicator.
//
// # HTTP Endpoints
//
//   - GET /catalog/games        : list the current generation, best score first.
//   - GET /catalog/games/:slug  : one canonical record.
//   - GET /catalog/status       : most recent sync run log.
package catalog
