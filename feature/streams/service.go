package streams

import (
	"context"
	"errors"
	"time"

	"catalog-sync/feature/catalog"
	"catalog-sync/provider/twitch"

	"go.uber.org/zap"
)

// ErrUnresolved is returned when the whole fallback chain fails to match a
// title on the livestream provider.
var ErrUnresolved = errors.New("streams: title not resolvable on livestream provider")

// LivestreamAPI is the subset of the livestream client this feature uses.
type LivestreamAPI interface {
	LiveStreams(ctx context.Context, gameID string, first int) ([]twitch.Stream, error)
	TopClips(ctx context.Context, gameID string, first int) ([]twitch.Clip, error)
}

// IDResolver resolves a title to the livestream provider's game id.
type IDResolver interface {
	ResolveID(ctx context.Context, title string) (string, error)
}

// Service serves on-demand livestream and clip lookups for catalog games.
//
// The resolved provider id is cached on the canonical record and trusted for
// models.TwitchIDTTL; after that it is treated as stale and re-resolved.
// Resolution failures are not cached, so the next request retries the chain.
type Service struct {
	repo     catalog.Repository
	api      LivestreamAPI
	resolver IDResolver
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates a new streams service.
func NewService(repo catalog.Repository, api LivestreamAPI, resolver IDResolver, logg *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		api:      api,
		resolver: resolver,
		logger:   logg,
		now:      time.Now,
	}
}

// LiveStreams returns current broadcasts of the game with the given slug.
func (s *Service) LiveStreams(ctx context.Context, slug string, first int) ([]twitch.Stream, error) {
	gameID, err := s.gameID(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.api.LiveStreams(ctx, gameID, first)
}

// TopClips returns top clips of the game with the given slug.
func (s *Service) TopClips(ctx context.Context, slug string, first int) ([]twitch.Clip, error) {
	gameID, err := s.gameID(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.api.TopClips(ctx, gameID, first)
}

// gameID returns the provider id for a slug, consulting the cached id on the
// canonical record before running the fallback chain.
func (s *Service) gameID(ctx context.Context, slug string) (string, error) {
	game, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return "", err
	}

	now := s.now()
	if game.TwitchIDFresh(now) {
		return *game.TwitchID, nil
	}

	id, err := s.resolver.ResolveID(ctx, game.Name)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", ErrUnresolved
	}

	// Cache the resolution on the record. A failed write only costs the
	// cache, not the lookup.
	if err := s.repo.UpdateTwitchID(ctx, game.ID, id, now); err != nil {
		s.logger.Warn("Failed to cache resolved livestream id",
			zap.String("slug", slug), zap.Error(err))
	}

	return id, nil
}
