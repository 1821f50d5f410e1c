package boxart

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"catalog-sync/core/apiclient"
	"catalog-sync/core/storage"
	"catalog-sync/feature/catalog/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Mirror copies box-art thumbnails from the provider CDN into our own
// object storage, so the presentation layer never hotlinks the provider.
//
// Mirroring is best effort and runs after a sync: a failed download or
// upload only costs that one image.
type Mirror struct {
	client     storage.Client
	bucket     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewMirror creates a box-art mirror writing into the given bucket.
func NewMirror(client storage.Client, bucket string, logg *zap.Logger) *Mirror {
	return &Mirror{
		client:     client,
		bucket:     bucket,
		httpClient: apiclient.New(30),
		logger:     logg,
	}
}

// MirrorAll uploads the thumbnail of every game that has one.
// It returns how many images were mirrored; per-image failures are logged
// and skipped. Only bucket provisioning is fatal.
func (m *Mirror) MirrorAll(ctx context.Context, games []models.Game) (int, error) {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return 0, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return 0, fmt.Errorf("failed to create bucket %s: %w", m.bucket, err)
		}
	}

	mirrored := 0
	for _, game := range games {
		if game.ThumbnailURL == nil {
			continue
		}
		if err := m.mirrorOne(ctx, game.Slug, *game.ThumbnailURL); err != nil {
			m.logger.Warn("Failed to mirror box art",
				zap.String("slug", game.Slug), zap.Error(err))
			continue
		}
		mirrored++
	}

	removed := m.pruneStale(ctx, games)

	m.logger.Info("Box-art mirroring completed",
		zap.Int("mirrored", mirrored), zap.Int("removed", removed),
		zap.Int("games", len(games)))
	return mirrored, nil
}

// pruneStale removes mirrored images whose slug has left the catalog, so the
// bucket tracks the current generation. An object is kept as long as its slug
// exists, even when this run could not refresh it.
func (m *Mirror) pruneStale(ctx context.Context, games []models.Game) int {
	keep := make(map[string]struct{}, len(games))
	for _, game := range games {
		keep[objectName(game.Slug)] = struct{}{}
	}

	removed := 0
	for obj := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{Prefix: "boxart/"}) {
		if obj.Err != nil {
			m.logger.Warn("Failed to list mirrored box art", zap.Error(obj.Err))
			return removed
		}
		if _, ok := keep[obj.Key]; ok {
			continue
		}
		if err := m.client.RemoveObject(ctx, m.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			m.logger.Warn("Failed to remove stale box art",
				zap.String("object", obj.Key), zap.Error(err))
			continue
		}
		removed++
	}
	return removed
}

func (m *Mirror) mirrorOne(ctx context.Context, slug, thumbnailURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, thumbnailURL, nil)
	if err != nil {
		return err
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("download returned HTTP %d", resp.StatusCode)
	}

	// Buffer the image so the upload knows its size; box art is small.
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("download read failed: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	_, err = m.client.PutObject(ctx, m.bucket, objectName(slug),
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	return nil
}

func objectName(slug string) string {
	return fmt.Sprintf("boxart/%s.jpg", slug)
}
