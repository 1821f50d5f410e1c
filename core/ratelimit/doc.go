// Package ratelimit provides request pacing for external provider APIs.
//
// The three providers are free-tier rate limited, so every outbound call path
// owns a Pacer parameterized by the provider's documented quota. The pacer is
// a token bucket (golang.org/x/time/rate) rather than a fixed sleep between
// calls: it stays correct independent of call ordering.
package ratelimit
