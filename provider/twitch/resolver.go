package twitch

import (
	"context"

	"catalog-sync/core/namematch"

	"go.uber.org/zap"
)

// Resolver converts a canonical title into the provider's game id using the
// name-matching fallback chain. The provider has no fuzzy search, so each
// chain attempt costs exactly one exact-name lookup.
type Resolver struct {
	client     *Client
	transforms []namematch.Transform
	logger     *zap.Logger
}

// NewResolver creates a resolver with the default fallback chain.
func NewResolver(client *Client, logger *zap.Logger) *Resolver {
	return &Resolver{
		client:     client,
		transforms: namematch.DefaultTransforms(),
		logger:     logger,
	}
}

// ResolveID resolves a title to a game id, or "" after the whole chain
// fails. False negatives are expected and acceptable; the chain does not
// guarantee an ambiguous short title cannot match the wrong game.
func (r *Resolver) ResolveID(ctx context.Context, title string) (string, error) {
	id, err := namematch.Resolve(ctx, title, r.transforms, r.client.LookupGame)
	if err != nil {
		return "", err
	}
	if id == "" {
		r.logger.Debug("Title unresolved after full fallback chain", zap.String("title", title))
	}
	return id, nil
}
