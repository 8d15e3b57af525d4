package testutil

import (
	"context"
	"fmt"
	"sync"

	apperrors "github.com/kbukum/blobkit/errors"
	"github.com/kbukum/blobkit/storage"
)

// Fake is an in-memory implementation of storage.Storage. It is safe
// for concurrent use and supports per-operation failure injection via
// FailOn.
type Fake struct {
	storage.SignedURLClient

	// FailOn names an operation ("upload", "download", "delete", "sign")
	// that should fail with its contract error. Empty means no injected
	// failures.
	FailOn string

	// Signer, when set, backs the signed URL operations so issued URLs
	// actually accept transfers.
	Signer *SignServer

	mu      sync.Mutex
	objects map[string]storage.Payload
}

// NewFake creates an empty in-memory storage fake.
func NewFake() *Fake {
	return &Fake{objects: make(map[string]storage.Payload)}
}

// Upload stores payload under opts.Key.
func (f *Fake) Upload(_ context.Context, payload storage.Payload, opts storage.UploadOptions) (string, error) {
	if err := storage.ValidateUpload(payload, opts); err != nil {
		return "", err
	}
	if f.FailOn == "upload" {
		return "", apperrors.UploadFailed("injected failure")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[opts.Key] = payload
	return "https://fake.storage.test/" + opts.Key, nil
}

// Download returns the stored payload for key.
func (f *Fake) Download(_ context.Context, key string) (storage.Payload, error) {
	if f.FailOn == "download" {
		return storage.Payload{}, apperrors.DownloadFailed(key)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.objects[key]
	if !ok {
		return storage.Payload{}, apperrors.DownloadFailed(key).WithDetail("not_found", true)
	}
	return p, nil
}

// Delete removes the object at key. Deleting a missing key succeeds.
func (f *Fake) Delete(_ context.Context, key string) error {
	if f.FailOn == "delete" {
		return apperrors.RemoveFailed(key)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

// SignedUploadURL issues a URL honored by the attached SignServer, or a
// synthetic URL if none is attached.
func (f *Fake) SignedUploadURL(_ context.Context, key string, opts storage.SignOptions) (string, error) {
	if err := storage.ValidateSignedUpload(key, opts); err != nil {
		return "", err
	}
	if f.FailOn == "sign" {
		return "", apperrors.SignURLFailed(key)
	}
	if f.Signer != nil {
		return f.Signer.SignedURL(key, opts.ExpiryOrDefault()), nil
	}
	return fmt.Sprintf("https://fake.storage.test/%s?sig=upload", key), nil
}

// SignedViewURL issues a read URL for key.
func (f *Fake) SignedViewURL(_ context.Context, key string, opts storage.SignOptions) (string, error) {
	if err := storage.ValidateView(key); err != nil {
		return "", err
	}
	if f.FailOn == "sign" {
		return "", apperrors.SignURLFailed(key)
	}
	if f.Signer != nil {
		return f.Signer.SignedURL(key, opts.ExpiryOrDefault()), nil
	}
	return fmt.Sprintf("https://fake.storage.test/%s?sig=view", key), nil
}

// Object returns the stored payload and whether key exists.
func (f *Fake) Object(key string) (storage.Payload, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.objects[key]
	return p, ok
}

// Len returns the number of stored objects.
func (f *Fake) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

// compile-time check
var _ storage.Storage = (*Fake)(nil)
