// Package namematch resolves human-readable titles to external identifiers
// when a provider offers only exact name lookup.
//
// Providers catalog the same game under inconsistent names ("Game 2" vs
// "Game II" vs "Game Remastered"). The package models the compensation as an
// ordered fallback chain of title transforms applied until one resolves, so
// new transforms can be added and tested independently of the callers.
package namematch
