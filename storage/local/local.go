// Package local implements the blobkit storage contract on the local
// filesystem, for development and testing.
//
// Signed URL operations return plain file:// URLs; no expiry is
// enforced, since there is no remote service to verify a signature.
// Deleting a missing key succeeds, matching the S3 backend's behavior.
package local

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"

	apperrors "github.com/kbukum/blobkit/errors"
	"github.com/kbukum/blobkit/logger"
	"github.com/kbukum/blobkit/storage"
)

func init() {
	storage.RegisterFactory(storage.ProviderLocal, func(cfg storage.Config, providerCfg any, log *logger.Logger) (storage.Storage, error) {
		c := &Config{}
		if providerCfg != nil {
			pc, ok := providerCfg.(*Config)
			if !ok {
				return nil, apperrors.InvalidConfig(fmt.Sprintf("local: expected *local.Config, got %T", providerCfg))
			}
			c = pc
		}
		c.ApplyDefaults()
		if err := c.Validate(); err != nil {
			return nil, err
		}
		return NewStorage(c.BasePath)
	})
}

// Storage implements storage.Storage using the local filesystem.
type Storage struct {
	storage.SignedURLClient

	basePath string
}

// NewStorage creates a new local filesystem storage.
func NewStorage(basePath string) (*Storage, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, apperrors.InvalidConfig("local: resolve base path").WithVendor(err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, apperrors.InvalidConfig("local: create base directory").WithVendor(err)
	}
	return &Storage{basePath: abs}, nil
}

// Upload writes payload to a local file and returns its file:// URL.
func (s *Storage) Upload(_ context.Context, payload storage.Payload, opts storage.UploadOptions) (string, error) {
	if err := storage.ValidateUpload(payload, opts); err != nil {
		return "", err
	}

	fullPath := s.fullPath(opts.Key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return "", apperrors.UploadFailed("create directory").WithVendor(err)
	}
	if err := os.WriteFile(fullPath, payload.Data, 0o640); err != nil {
		return "", apperrors.UploadFailed("write file").WithVendor(err)
	}
	return fileURL(fullPath), nil
}

// Download reads the full content of the local file at key. The content
// type is inferred from the key's extension.
func (s *Storage) Download(_ context.Context, key string) (storage.Payload, error) {
	data, err := os.ReadFile(s.fullPath(key))
	if err != nil {
		e := apperrors.DownloadFailed(key).WithVendor(err)
		if os.IsNotExist(err) {
			e = e.WithDetail("not_found", true)
		}
		return storage.Payload{}, e
	}

	ct := mime.TypeByExtension(filepath.Ext(key))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return storage.Payload{Data: data, ContentType: ct}, nil
}

// Delete removes the local file at key. Deleting a missing key succeeds.
func (s *Storage) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.fullPath(key)); err != nil && !os.IsNotExist(err) {
		return apperrors.RemoveFailed(key).WithVendor(err)
	}
	return nil
}

// SignedUploadURL returns a file:// URL for key. No signature or expiry
// is involved; this backend exists for development only.
func (s *Storage) SignedUploadURL(_ context.Context, key string, opts storage.SignOptions) (string, error) {
	if err := storage.ValidateSignedUpload(key, opts); err != nil {
		return "", err
	}
	return fileURL(s.fullPath(key)), nil
}

// SignedViewURL returns a file:// URL for key.
func (s *Storage) SignedViewURL(_ context.Context, key string, _ storage.SignOptions) (string, error) {
	if err := storage.ValidateView(key); err != nil {
		return "", err
	}
	return fileURL(s.fullPath(key)), nil
}

func (s *Storage) fullPath(key string) string {
	return filepath.Join(s.basePath, filepath.Clean("/"+key))
}

func fileURL(fullPath string) string {
	u := &url.URL{Scheme: "file", Path: fullPath}
	return u.String()
}

// compile-time check
var _ storage.Storage = (*Storage)(nil)
