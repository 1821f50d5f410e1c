package catalog

import (
	"context"
	"testing"
	"time"

	"catalog-sync/feature/catalog/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestRepository_DeleteAll(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `games`").
		WillReturnResult(sqlmock.NewResult(0, 60))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteAll(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Insert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `games`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	game := &models.Game{
		OpenCriticID: 463,
		Slug:         "elden-ring",
		Name:         "Elden Ring",
		Score:        95,
	}
	require.NoError(t, repo.Insert(context.Background(), game))
	assert.Equal(t, uint(7), game.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetBySlug(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "opencritic_id", "slug", "name", "score"}).
			AddRow(1, 463, "elden-ring", "Elden Ring", 95)
		mock.ExpectQuery("SELECT \\* FROM `games` WHERE slug = \\?").
			WithArgs("elden-ring", 1).
			WillReturnRows(rows)

		game, err := repo.GetBySlug(context.Background(), "elden-ring")
		require.NoError(t, err)
		assert.Equal(t, "Elden Ring", game.Name)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT \\* FROM `games` WHERE slug = \\?").
			WithArgs("nope", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetBySlug(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepository_UpdateTwitchID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `games` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateTwitchID(context.Background(), 1, "512710", time.Now())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SyncLog(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	t.Run("append", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `sync_logs`").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		entry := &models.SyncLog{
			OperationType: models.OperationCatalogSync,
			Status:        models.StatusSuccess,
			Details:       models.SyncDetails{Fetched: 60, Persisted: 60},
		}
		require.NoError(t, repo.AppendSyncLog(context.Background(), entry))
	})

	t.Run("latest", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "operation_type", "status", "message"}).
			AddRow(9, models.OperationCatalogSync, models.StatusSuccess, "synced 60 titles")
		mock.ExpectQuery("SELECT \\* FROM `sync_logs` WHERE operation_type = \\?").
			WithArgs(models.OperationCatalogSync, 1).
			WillReturnRows(rows)

		entry, err := repo.LatestSyncLog(context.Background(), models.OperationCatalogSync)
		require.NoError(t, err)
		assert.Equal(t, models.StatusSuccess, entry.Status)
	})

	t.Run("never ran", func(t *testing.T) {
		mock.ExpectQuery("SELECT \\* FROM `sync_logs` WHERE operation_type = \\?").
			WithArgs("other_pipeline", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.LatestSyncLog(context.Background(), "other_pipeline")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
