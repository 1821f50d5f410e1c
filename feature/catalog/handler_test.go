package catalog

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"catalog-sync/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubRepository serves canned data to the handlers.
type stubRepository struct {
	games   []models.Game
	bySlug  map[string]*models.Game
	latest  *models.SyncLog
	listErr error
}

func (s *stubRepository) DeleteAll(ctx context.Context) error                 { return nil }
func (s *stubRepository) Insert(ctx context.Context, game *models.Game) error { return nil }

func (s *stubRepository) List(ctx context.Context) ([]models.Game, error) {
	return s.games, s.listErr
}

func (s *stubRepository) GetBySlug(ctx context.Context, slug string) (*models.Game, error) {
	if g, ok := s.bySlug[slug]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

func (s *stubRepository) UpdateTwitchID(ctx context.Context, gameID uint, twitchID string, checkedAt time.Time) error {
	return nil
}

func (s *stubRepository) AppendSyncLog(ctx context.Context, entry *models.SyncLog) error {
	return nil
}

func (s *stubRepository) LatestSyncLog(ctx context.Context, operationType string) (*models.SyncLog, error) {
	if s.latest == nil {
		return nil, ErrNotFound
	}
	return s.latest, nil
}

func setupTestApp(repo Repository) *fiber.App {
	app := fiber.New()
	NewHandler(repo, zap.NewNop()).RegisterRoutes(app)
	return app
}

func TestHandleListGames(t *testing.T) {
	repo := &stubRepository{games: []models.Game{
		{Name: "Alpha", Slug: "alpha", Score: 93},
		{Name: "Beta", Slug: "beta", Score: 88},
	}}
	app := setupTestApp(repo)

	req := httptest.NewRequest("GET", "/catalog/games", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []models.Game
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "alpha", body[0].Slug)
}

func TestHandleGetGame(t *testing.T) {
	game := &models.Game{Name: "Alpha", Slug: "alpha", Score: 93}
	repo := &stubRepository{bySlug: map[string]*models.Game{"alpha": game}}
	app := setupTestApp(repo)

	req := httptest.NewRequest("GET", "/catalog/games/alpha", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body models.Game
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Alpha", body.Name)
}

func TestHandleGetGame_NotFound(t *testing.T) {
	app := setupTestApp(&stubRepository{})

	req := httptest.NewRequest("GET", "/catalog/games/nope", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleStatus(t *testing.T) {
	repo := &stubRepository{latest: &models.SyncLog{
		OperationType: models.OperationCatalogSync,
		Status:        models.StatusSuccess,
		Message:       "synced 60 titles",
		Details:       models.SyncDetails{Fetched: 60, Persisted: 60},
	}}
	app := setupTestApp(repo)

	req := httptest.NewRequest("GET", "/catalog/status", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body models.SyncLog
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, models.StatusSuccess, body.Status)
	assert.Equal(t, 60, body.Details.Persisted)
}

func TestHandleStatus_NeverRan(t *testing.T) {
	app := setupTestApp(&stubRepository{})

	req := httptest.NewRequest("GET", "/catalog/status", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
