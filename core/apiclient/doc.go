// Package apiclient builds the shared HTTP client used by provider adapters.
package apiclient
