// Package twitch is the client for the livestream provider.
//
// The provider requires an OAuth2 client-credentials token; the client owns
// a process-wide token cache refreshed at 90% of the declared TTL, guarded
// by a mutex and a singleflight group so concurrent callers never race a
// refresh. Because the catalog endpoint only supports exact name lookup,
// the Resolver applies the namematch fallback chain on top of it.
package twitch
