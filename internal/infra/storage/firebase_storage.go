package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"recipebox/internal/domain/service"
	"recipebox/internal/errors"
	"recipebox/internal/infra/firebaseapp"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"google.golang.org/api/iterator"
)

const (
	firebaseStorageHost = "firebasestorage.googleapis.com"
	downloadTokensKey   = "firebaseStorageDownloadTokens"
)

// FirebaseParams holds dependencies for the Firebase Storage object store, injected by Fx
type FirebaseParams struct {
	fx.In

	App    *firebaseapp.App
	Logger *slog.Logger
}

type firebaseObjectStore struct {
	bucket     *gcs.BucketHandle
	bucketName string
	logger     *slog.Logger
}

// NewFirebaseObjectStore stores objects in the project's default Firebase Storage bucket and
// hands out token-protected download URLs, the same URLs the Firebase client SDKs produce.
func NewFirebaseObjectStore(params FirebaseParams) (service.ObjectStore, error) {
	bucketName := params.App.StorageBucket()
	if bucketName == "" {
		return nil, errors.New("firebase.storageBucket is required for the firebase object store")
	}

	client, err := params.App.Storage()
	if err != nil {
		return nil, err
	}

	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	return &firebaseObjectStore{
		bucket:     bucket,
		bucketName: bucketName,
		logger:     params.Logger,
	}, nil
}

func (s *firebaseObjectStore) Upload(ctx context.Context, path string, content io.Reader, size int64, contentType string, progress service.ProgressFunc) (string, error) {
	token := uuid.NewString()

	w := s.bucket.Object(path).NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = map[string]string{downloadTokensKey: token}
	progress = wholePercent(progress)
	if progress != nil {
		w.ProgressFunc = func(written int64) {
			progress(written, size)
		}
	}

	if _, err := io.Copy(w, content); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write object %s", path)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize object %s", path)
	}
	if progress != nil {
		progress(size, size)
	}

	return firebaseDownloadURL(s.bucketName, path, token), nil
}

func (s *firebaseObjectStore) Exists(ctx context.Context, ref string) (bool, error) {
	path, ok := s.ObjectPath(ref)
	if !ok {
		return false, nil
	}

	_, err := s.bucket.Object(path).Attrs(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return false, nil
		}

		return false, errors.Wrapf(err, "failed to stat object %s", path)
	}

	return true, nil
}

func (s *firebaseObjectStore) Delete(ctx context.Context, ref string) error {
	path, ok := s.ObjectPath(ref)
	if !ok {
		return errors.Wrapf(service.ErrObjectNotFound, "not an object of bucket %s", s.bucketName)
	}

	if err := s.bucket.Object(path).Delete(ctx); err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return service.ErrObjectNotFound
		}

		return errors.Wrapf(err, "failed to delete object %s", path)
	}

	return nil
}

func (s *firebaseObjectStore) Owns(ref string) bool {
	_, ok := s.ObjectPath(ref)

	return ok
}

func (s *firebaseObjectStore) DeleteByPrefix(ctx context.Context, prefix string, keep func(path string) bool) (int, error) {
	it := s.bucket.Objects(ctx, &gcs.Query{Prefix: prefix})

	deleted := 0
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return deleted, errors.Wrapf(err, "failed to list objects under %s", prefix)
		}
		if keep != nil && keep(attrs.Name) {
			continue
		}

		if err := s.bucket.Object(attrs.Name).Delete(ctx); err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
			return deleted, errors.Wrapf(err, "failed to delete object %s", attrs.Name)
		}
		deleted++
	}

	return deleted, nil
}

func (s *firebaseObjectStore) ObjectPath(ref string) (string, bool) {
	return parseFirebaseDownloadURL(s.bucketName, ref)
}

// firebaseDownloadURL builds the download URL of an object. The object path is escaped
// as a single segment, so "/" becomes "%2F".
func firebaseDownloadURL(bucket, path, token string) string {
	return "https://" + firebaseStorageHost + "/v0/b/" + bucket + "/o/" +
		url.PathEscape(path) + "?alt=media&token=" + url.QueryEscape(token)
}

// parseFirebaseDownloadURL extracts the object path from a download URL of bucket.
func parseFirebaseDownloadURL(bucket, ref string) (string, bool) {
	u, err := url.Parse(ref)
	if err != nil || u.Host != firebaseStorageHost {
		return "", false
	}

	rest, ok := strings.CutPrefix(u.EscapedPath(), "/v0/b/"+bucket+"/o/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return "", false
	}

	path, err := url.PathUnescape(rest)
	if err != nil || path == "" {
		return "", false
	}

	return path, true
}
