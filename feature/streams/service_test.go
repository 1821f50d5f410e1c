package streams

import (
	"context"
	"fmt"
	"testing"
	"time"

	"catalog-sync/feature/catalog"
	"catalog-sync/feature/catalog/models"
	"catalog-sync/provider/twitch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	game        *models.Game
	updatedID   string
	updatedAt   time.Time
	updateCalls int
}

func (r *fakeRepo) GetBySlug(_ context.Context, slug string) (*models.Game, error) {
	if r.game == nil || r.game.Slug != slug {
		return nil, catalog.ErrNotFound
	}
	copied := *r.game
	return &copied, nil
}

func (r *fakeRepo) UpdateTwitchID(_ context.Context, _ uint, twitchID string, checkedAt time.Time) error {
	r.updateCalls++
	r.updatedID = twitchID
	r.updatedAt = checkedAt
	return nil
}

func (r *fakeRepo) DeleteAll(context.Context) error                   { return nil }
func (r *fakeRepo) Insert(context.Context, *models.Game) error        { return nil }
func (r *fakeRepo) List(context.Context) ([]models.Game, error)       { return nil, nil }
func (r *fakeRepo) AppendSyncLog(context.Context, *models.SyncLog) error { return nil }
func (r *fakeRepo) LatestSyncLog(context.Context, string) (*models.SyncLog, error) {
	return nil, catalog.ErrNotFound
}

type fakeAPI struct {
	streamCalls []string
}

func (a *fakeAPI) LiveStreams(_ context.Context, gameID string, _ int) ([]twitch.Stream, error) {
	a.streamCalls = append(a.streamCalls, gameID)
	return []twitch.Stream{{ID: "s1", ViewerCount: 100}}, nil
}

func (a *fakeAPI) TopClips(_ context.Context, gameID string, _ int) ([]twitch.Clip, error) {
	return []twitch.Clip{{ID: "c1"}}, nil
}

type fakeResolver struct {
	id    string
	err   error
	calls int
}

func (r *fakeResolver) ResolveID(context.Context, string) (string, error) {
	r.calls++
	return r.id, r.err
}

func newService(repo *fakeRepo, api *fakeAPI, resolver *fakeResolver, at time.Time) *Service {
	s := NewService(repo, api, resolver, zap.NewNop())
	s.now = func() time.Time { return at }
	return s
}

func TestLiveStreams_UsesFreshCachedID(t *testing.T) {
	now := time.Now()
	id := "512710"
	checked := now.Add(-2 * 24 * time.Hour)
	repo := &fakeRepo{game: &models.Game{
		ID: 1, Slug: "elden-ring", Name: "Elden Ring",
		TwitchID: &id, TwitchIDCheckedAt: &checked,
	}}
	api := &fakeAPI{}
	resolver := &fakeResolver{id: "should-not-be-used"}

	streams, err := newService(repo, api, resolver, now).LiveStreams(context.Background(), "elden-ring", 10)
	require.NoError(t, err)
	require.Len(t, streams, 1)

	// The cached id is trusted: no resolution, no cache write.
	assert.Zero(t, resolver.calls)
	assert.Zero(t, repo.updateCalls)
	assert.Equal(t, []string{"512710"}, api.streamCalls)
}

func TestLiveStreams_ReResolvesStaleID(t *testing.T) {
	now := time.Now()
	id := "old-id"
	checked := now.Add(-8 * 24 * time.Hour)
	repo := &fakeRepo{game: &models.Game{
		ID: 1, Slug: "elden-ring", Name: "Elden Ring",
		TwitchID: &id, TwitchIDCheckedAt: &checked,
	}}
	api := &fakeAPI{}
	resolver := &fakeResolver{id: "fresh-id"}

	_, err := newService(repo, api, resolver, now).LiveStreams(context.Background(), "elden-ring", 10)
	require.NoError(t, err)

	assert.Equal(t, 1, resolver.calls)
	assert.Equal(t, "fresh-id", repo.updatedID)
	assert.Equal(t, now, repo.updatedAt)
	assert.Equal(t, []string{"fresh-id"}, api.streamCalls)
}

func TestLiveStreams_UnresolvedTitle(t *testing.T) {
	repo := &fakeRepo{game: &models.Game{ID: 1, Slug: "obscure", Name: "Obscure Game 3"}}
	resolver := &fakeResolver{id: ""}

	_, err := newService(repo, &fakeAPI{}, resolver, time.Now()).LiveStreams(context.Background(), "obscure", 10)
	assert.ErrorIs(t, err, ErrUnresolved)
	// Failures are not cached; a later request retries the chain.
	assert.Zero(t, repo.updateCalls)
}

func TestLiveStreams_UnknownSlug(t *testing.T) {
	repo := &fakeRepo{}
	_, err := newService(repo, &fakeAPI{}, &fakeResolver{}, time.Now()).LiveStreams(context.Background(), "nope", 10)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestTopClips_ResolvesOnce(t *testing.T) {
	repo := &fakeRepo{game: &models.Game{ID: 1, Slug: "hades", Name: "Hades"}}
	resolver := &fakeResolver{id: "510"}

	clips, err := newService(repo, &fakeAPI{}, resolver, time.Now()).TopClips(context.Background(), "hades", 5)
	require.NoError(t, err)
	require.Len(t, clips, 1)
	assert.Equal(t, 1, resolver.calls)
	assert.Equal(t, "510", repo.updatedID)
}

func TestLiveStreams_ResolverError(t *testing.T) {
	repo := &fakeRepo{game: &models.Game{ID: 1, Slug: "hades", Name: "Hades"}}
	resolver := &fakeResolver{err: fmt.Errorf("provider unreachable")}

	_, err := newService(repo, &fakeAPI{}, resolver, time.Now()).LiveStreams(context.Background(), "hades", 10)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnresolved)
}
