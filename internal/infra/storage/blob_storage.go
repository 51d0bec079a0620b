package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"recipebox/config"
	"recipebox/internal/domain/service"
	"recipebox/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// BlobParams holds dependencies for the gocloud.dev object store, injected by Fx
type BlobParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type blobObjectStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// NewBlobObjectStore opens storage.bucketUrl (file://, mem:// or gs://) and serves objects
// from storage.publicBaseUrl.
func NewBlobObjectStore(params BlobParams) (service.ObjectStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required for the blob object store")
	}
	if cfg.PublicBaseURL == "" {
		return nil, errors.New("storage.publicBaseUrl is required for the blob object store")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Blob object store opened", slog.String("bucket_url", cfg.BucketURL))

	return newBlobObjectStore(bucket, cfg.PublicBaseURL, params.Logger), nil
}

func newBlobObjectStore(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) *blobObjectStore {
	return &blobObjectStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

func (s *blobObjectStore) Upload(ctx context.Context, path string, content io.Reader, size int64, contentType string, progress service.ProgressFunc) (string, error) {
	w, err := s.bucket.NewWriter(ctx, path, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open object %s", path)
	}

	if _, err := io.Copy(w, newProgressReader(content, size, progress)); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write object %s", path)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize object %s", path)
	}

	return s.publicBaseURL + "/" + escapeKey(path), nil
}

func (s *blobObjectStore) Exists(ctx context.Context, ref string) (bool, error) {
	key, ok := s.ObjectPath(ref)
	if !ok {
		return false, nil
	}

	exists, err := s.bucket.Exists(ctx, key)

	return exists, errors.Wrapf(err, "failed to stat object %s", key)
}

func (s *blobObjectStore) Delete(ctx context.Context, ref string) error {
	key, ok := s.ObjectPath(ref)
	if !ok {
		return errors.Wrap(service.ErrObjectNotFound, "not an object of this store")
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return service.ErrObjectNotFound
		}

		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}

func (s *blobObjectStore) Owns(ref string) bool {
	_, ok := s.ObjectPath(ref)

	return ok
}

func (s *blobObjectStore) DeleteByPrefix(ctx context.Context, prefix string, keep func(path string) bool) (int, error) {
	it := s.bucket.List(&blob.ListOptions{Prefix: prefix})

	deleted := 0
	for {
		obj, err := it.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return deleted, errors.Wrapf(err, "failed to list objects under %s", prefix)
		}
		if obj.IsDir || (keep != nil && keep(obj.Key)) {
			continue
		}

		if err := s.bucket.Delete(ctx, obj.Key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			return deleted, errors.Wrapf(err, "failed to delete object %s", obj.Key)
		}
		deleted++
	}

	return deleted, nil
}

func (s *blobObjectStore) ObjectPath(ref string) (string, bool) {
	rest, ok := strings.CutPrefix(ref, s.publicBaseURL+"/")
	if !ok || rest == "" {
		return "", false
	}
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}

	key, err := url.PathUnescape(rest)
	if err != nil || key == "" {
		return "", false
	}

	return key, true
}

// escapeKey escapes each segment of key and keeps the separators.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return strings.Join(segments, "/")
}
