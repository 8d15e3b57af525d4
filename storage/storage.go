package storage

import (
	"context"
	"time"

	apperrors "github.com/kbukum/blobkit/errors"
)

// DefaultSignExpiry is the validity window applied to signed URLs when
// the caller does not specify one.
const DefaultSignExpiry = 60 * time.Second

// Payload is the raw binary content of an object plus its declared
// content type. It is immutable once submitted for upload.
type Payload struct {
	Data        []byte
	ContentType string
}

// UploadOptions configures an Upload operation.
type UploadOptions struct {
	// Key is the object key within the backend's container. Required.
	Key string
}

// SignOptions configures signed URL issuance.
type SignOptions struct {
	// Expiry is how long the issued URL stays valid.
	// Zero means DefaultSignExpiry.
	Expiry time.Duration

	// ContentType is the content type the signed upload must declare.
	// Required for SignedUploadURL; ignored for SignedViewURL.
	ContentType string
}

// ExpiryOrDefault returns the configured expiry, or DefaultSignExpiry
// if none was set.
func (o SignOptions) ExpiryOrDefault() time.Duration {
	if o.Expiry > 0 {
		return o.Expiry
	}
	return DefaultSignExpiry
}

// Storage defines the interface for object storage operations. All
// implementations are safe for concurrent use; they hold only an
// immutable client handle and container name.
type Storage interface {
	// Upload stores payload under opts.Key and returns a durable
	// (non-expiring) locator URL for the stored object.
	Upload(ctx context.Context, payload Payload, opts UploadOptions) (string, error)

	// Download retrieves the full content of the object at key.
	Download(ctx context.Context, key string) (Payload, error)

	// Delete removes the object at key. Behavior for a missing key is
	// backend-defined and documented per backend package.
	Delete(ctx context.Context, key string) error

	// SignedUploadURL issues a time-bounded URL granting write access to
	// key, valid for opts.Expiry (default 60s).
	SignedUploadURL(ctx context.Context, key string, opts SignOptions) (string, error)

	// SignedViewURL issues a time-bounded read-only URL for key.
	SignedViewURL(ctx context.Context, key string, opts SignOptions) (string, error)

	// UploadToSignedURL performs the HTTP transfer against a previously
	// issued signed URL. The transfer is a plain PUT and does not depend
	// on which backend issued the URL.
	UploadToSignedURL(ctx context.Context, rawURL string, payload Payload) error
}

// ValidateUpload enforces the upload contract's required fields. Every
// backend calls this before touching its vendor client so missing-field
// behavior is uniform across backends.
func ValidateUpload(payload Payload, opts UploadOptions) error {
	if opts.Key == "" {
		return apperrors.UploadFailed("object key is required")
	}
	if payload.ContentType == "" {
		return apperrors.UploadFailed("content type is required")
	}
	return nil
}

// ValidateSignedUpload enforces required fields for signed upload URL
// issuance.
func ValidateSignedUpload(key string, opts SignOptions) error {
	if err := ValidateView(key); err != nil {
		return err
	}
	if opts.ContentType == "" {
		return apperrors.SignURLFailed(key).WithDetail("reason", "content type is required")
	}
	return nil
}

// ValidateView enforces required fields for signed view URL issuance.
// Every backend calls this so missing-key behavior is uniform.
func ValidateView(key string) error {
	if key == "" {
		return apperrors.SignURLFailed(key).WithDetail("reason", "object key is required")
	}
	return nil
}
