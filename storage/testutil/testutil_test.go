package testutil

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/kbukum/blobkit/errors"
	"github.com/kbukum/blobkit/storage"
)

func TestFake_RoundTrip(t *testing.T) {
	f := NewFake()
	ctx := context.Background()

	url, err := f.Upload(ctx, storage.Payload{Data: []byte("hello"), ContentType: "text/plain"}, storage.UploadOptions{Key: "a.txt"})
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if url == "" {
		t.Error("expected a locator URL")
	}

	p, err := f.Download(ctx, "a.txt")
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if string(p.Data) != "hello" || p.ContentType != "text/plain" {
		t.Errorf("Download() = %q (%s)", p.Data, p.ContentType)
	}

	if err := f.Delete(ctx, "a.txt"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := f.Download(ctx, "a.txt"); !apperrors.IsCode(err, apperrors.ErrCodeDownloadFailed) {
		t.Errorf("expected DOWNLOAD_FAILED after delete, got %v", err)
	}
}

func TestFake_FailureInjection(t *testing.T) {
	f := NewFake()
	f.FailOn = "upload"

	_, err := f.Upload(context.Background(), storage.Payload{Data: []byte("x"), ContentType: "text/plain"}, storage.UploadOptions{Key: "a.txt"})
	if !apperrors.IsCode(err, apperrors.ErrCodeUploadFailed) {
		t.Errorf("expected UPLOAD_FAILED, got %v", err)
	}
	if f.Len() != 0 {
		t.Error("expected no stored objects after injected failure")
	}
}

func TestSignServer_AcceptsBeforeExpiry(t *testing.T) {
	srv := NewSignServer()
	defer srv.Close()

	f := NewFake()
	f.Signer = srv
	ctx := context.Background()

	u, err := f.SignedUploadURL(ctx, "a.txt", storage.SignOptions{Expiry: time.Minute, ContentType: "text/plain"})
	if err != nil {
		t.Fatalf("SignedUploadURL() error = %v", err)
	}

	err = f.UploadToSignedURL(ctx, u, storage.Payload{Data: []byte("hello"), ContentType: "text/plain"})
	if err != nil {
		t.Fatalf("UploadToSignedURL() error = %v", err)
	}

	data, ok := srv.Object("a.txt")
	if !ok || string(data) != "hello" {
		t.Errorf("stored object = %q, %v", data, ok)
	}
}

func TestSignServer_RejectsAfterExpiry(t *testing.T) {
	srv := NewSignServer()
	defer srv.Close()

	f := NewFake()
	f.Signer = srv

	// Issue a URL whose validity window has already elapsed. Fake's
	// SignedUploadURL maps non-positive expiries to the default window,
	// so the server issues this one directly.
	u := srv.SignedURL("a.txt", -2*time.Second)

	err := f.UploadToSignedURL(context.Background(), u, storage.Payload{Data: []byte("hello"), ContentType: "text/plain"})
	if !apperrors.IsCode(err, apperrors.ErrCodeUploadFailed) {
		t.Fatalf("expected UPLOAD_FAILED for expired URL, got %v", err)
	}
	if _, ok := srv.Object("a.txt"); ok {
		t.Error("expected no stored object for rejected transfer")
	}
}

func TestSignServer_TamperedURL(t *testing.T) {
	srv := NewSignServer()
	defer srv.Close()

	var c storage.SignedURLClient
	err := c.UploadToSignedURL(context.Background(), srv.srv.URL+"/a.txt?expires=garbage",
		storage.Payload{Data: []byte("x"), ContentType: "text/plain"})
	if !apperrors.IsCode(err, apperrors.ErrCodeUploadFailed) {
		t.Errorf("expected UPLOAD_FAILED for tampered URL, got %v", err)
	}
}
