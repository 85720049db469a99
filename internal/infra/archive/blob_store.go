// Package archive writes export documents to a gocloud.dev blob bucket.
package archive

import (
	"context"
	"log/slog"
	"path"

	"macrolog/config"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
)

// blobStore implements ArchiveStore on top of a blob.Bucket.
type blobStore struct {
	bucket *blob.Bucket
	prefix string
}

// NewBlobStore wraps an open bucket. Keys are written below prefix.
func NewBlobStore(bucket *blob.Bucket, prefix string) service.ArchiveStore {
	return &blobStore{bucket: bucket, prefix: prefix}
}

func (s *blobStore) Write(ctx context.Context, key string, contentType string, data []byte) (*service.ArchiveObject, error) {
	fullKey := path.Join(s.prefix, key)

	err := s.bucket.WriteAll(ctx, fullKey, data, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to write %s", fullKey)
	}

	return &service.ArchiveObject{Key: fullKey, Size: int64(len(data))}, nil
}

// disabledStore is used when no bucket is configured.
type disabledStore struct{}

func (disabledStore) Write(context.Context, string, string, []byte) (*service.ArchiveObject, error) {
	return nil, domainerrors.ErrArchiveUnavailable
}

// StoreParams holds dependencies for ArchiveStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewArchiveStore opens the configured bucket URL. Without one, exports are disabled.
func NewArchiveStore(params StoreParams) (service.ArchiveStore, error) {
	cfg := params.Config.Archive
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Archive bucket not configured, exports disabled")

		return disabledStore{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open archive bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Archive bucket opened", slog.String("url", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStore(bucket, cfg.Prefix), nil
}

// Module provides the archive FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewArchiveStore),
)
