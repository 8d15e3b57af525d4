// Package gcs implements the blobkit storage contract on Google Cloud
// Storage.
//
// Upload returns the constructed public URL
// https://storage.googleapis.com/<bucket>/<key>. That locator only
// dereferences if the bucket allows public reads; for private buckets
// callers should use SignedViewURL instead, which issues a V4-signed
// read URL regardless of bucket ACLs. Deleting a missing object fails:
// the service reports ErrObjectNotExist, surfaced as REMOVE_FAILED.
package gcs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	gcstorage "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	apperrors "github.com/kbukum/blobkit/errors"
	"github.com/kbukum/blobkit/logger"
	"github.com/kbukum/blobkit/storage"
)

const publicURLFormat = "https://storage.googleapis.com/%s/%s"

func init() {
	storage.RegisterFactory(storage.ProviderGoogle, func(cfg storage.Config, providerCfg any, log *logger.Logger) (storage.Storage, error) {
		c := &Config{}
		if providerCfg != nil {
			pc, ok := providerCfg.(*Config)
			if !ok {
				return nil, apperrors.InvalidConfig(fmt.Sprintf("gcs: expected *gcs.Config, got %T", providerCfg))
			}
			c = pc
		}
		c.ApplyDefaults()
		if err := c.Validate(); err != nil {
			return nil, err
		}
		return NewStorage(context.Background(), c)
	})
}

// Storage implements storage.Storage using Google Cloud Storage.
type Storage struct {
	storage.SignedURLClient

	bucket *gcstorage.BucketHandle
	name   string
}

// NewStorage creates a new GCS storage client from the given config.
func NewStorage(ctx context.Context, cfg *Config) (*Storage, error) {
	client, err := gcstorage.NewClient(ctx, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, apperrors.InvalidConfig("gcs: create client").WithVendor(err)
	}
	return &Storage{
		bucket: client.Bucket(cfg.Bucket),
		name:   cfg.Bucket,
	}, nil
}

// Upload stores payload under opts.Key and returns the object's public
// URL. See the package comment for the public-read assumption.
func (s *Storage) Upload(ctx context.Context, payload storage.Payload, opts storage.UploadOptions) (string, error) {
	if err := storage.ValidateUpload(payload, opts); err != nil {
		return "", err
	}

	w := s.bucket.Object(opts.Key).NewWriter(ctx)
	w.ContentType = payload.ContentType
	if _, err := w.Write(payload.Data); err != nil {
		_ = w.Close()
		return "", apperrors.UploadFailed("gcs write rejected").WithVendor(err).WithDetail("key", opts.Key)
	}
	if err := w.Close(); err != nil {
		return "", apperrors.UploadFailed("gcs write rejected").WithVendor(err).WithDetail("key", opts.Key)
	}
	return fmt.Sprintf(publicURLFormat, s.name, opts.Key), nil
}

// Download retrieves the full content of the object at key.
func (s *Storage) Download(ctx context.Context, key string) (storage.Payload, error) {
	r, err := s.bucket.Object(key).NewReader(ctx)
	if err != nil {
		e := apperrors.DownloadFailed(key).WithVendor(err)
		if isNotFound(err) {
			e = e.WithDetail("not_found", true)
		}
		return storage.Payload{}, e
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return storage.Payload{}, apperrors.DownloadFailed(key).WithVendor(err)
	}
	return storage.Payload{Data: data, ContentType: r.Attrs.ContentType}, nil
}

// Delete removes the object at key. Deleting a missing object fails with
// REMOVE_FAILED: the service reports ErrObjectNotExist rather than
// treating the delete as a no-op.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Object(key).Delete(ctx); err != nil {
		e := apperrors.RemoveFailed(key).WithVendor(err)
		if isNotFound(err) {
			e = e.WithDetail("not_found", true)
		}
		return e
	}
	return nil
}

// SignedUploadURL issues a V4-signed write URL for key. Signing uses the
// service-account key held by the client; no network round trip occurs.
func (s *Storage) SignedUploadURL(ctx context.Context, key string, opts storage.SignOptions) (string, error) {
	if err := storage.ValidateSignedUpload(key, opts); err != nil {
		return "", err
	}

	u, err := s.bucket.SignedURL(key, &gcstorage.SignedURLOptions{
		Scheme:      gcstorage.SigningSchemeV4,
		Method:      http.MethodPut,
		Expires:     time.Now().Add(opts.ExpiryOrDefault()),
		ContentType: opts.ContentType,
	})
	if err != nil {
		return "", apperrors.SignURLFailed(key).WithVendor(err)
	}
	return u, nil
}

// SignedViewURL issues a V4-signed read URL for key. This is the correct
// locator for objects in private buckets.
func (s *Storage) SignedViewURL(ctx context.Context, key string, opts storage.SignOptions) (string, error) {
	if err := storage.ValidateView(key); err != nil {
		return "", err
	}

	u, err := s.bucket.SignedURL(key, &gcstorage.SignedURLOptions{
		Scheme:  gcstorage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(opts.ExpiryOrDefault()),
	})
	if err != nil {
		return "", apperrors.SignURLFailed(key).WithVendor(err)
	}
	return u, nil
}

// compile-time check
var _ storage.Storage = (*Storage)(nil)
