// Package azure implements the blobkit storage contract on Azure Blob
// Storage.
//
// SAS URLs are computed client-side from the shared account key, so
// issuance costs no network round trip here. The user-delegation SAS
// path, which does require a round trip to the service, is not used.
// Deleting a missing blob fails: the service answers 404 BlobNotFound,
// surfaced as a REMOVE_FAILED error.
package azure

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/sas"

	apperrors "github.com/kbukum/blobkit/errors"
	"github.com/kbukum/blobkit/logger"
	"github.com/kbukum/blobkit/storage"
)

func init() {
	storage.RegisterFactory(storage.ProviderAzure, func(cfg storage.Config, providerCfg any, log *logger.Logger) (storage.Storage, error) {
		c := &Config{}
		if providerCfg != nil {
			pc, ok := providerCfg.(*Config)
			if !ok {
				return nil, apperrors.InvalidConfig(fmt.Sprintf("azure: expected *azure.Config, got %T", providerCfg))
			}
			c = pc
		}
		c.ApplyDefaults()
		if err := c.Validate(); err != nil {
			return nil, err
		}
		return NewStorage(c)
	})
}

// Storage implements storage.Storage using Azure Blob Storage.
type Storage struct {
	storage.SignedURLClient

	client    *azblob.Client
	container string
}

// NewStorage creates a new Azure Blob storage client from the given config.
func NewStorage(cfg *Config) (*Storage, error) {
	cred, err := azblob.NewSharedKeyCredential(cfg.AccountName, cfg.AccountKey)
	if err != nil {
		return nil, apperrors.InvalidConfig("azure: bad shared key credential").WithVendor(err)
	}

	client, err := azblob.NewClientWithSharedKeyCredential(cfg.ServiceURL(), cred, nil)
	if err != nil {
		return nil, apperrors.InvalidConfig("azure: create client").WithVendor(err)
	}

	return &Storage{
		client:    client,
		container: cfg.Container,
	}, nil
}

// Upload stores payload under opts.Key and returns the blob's unsigned URL.
func (s *Storage) Upload(ctx context.Context, payload storage.Payload, opts storage.UploadOptions) (string, error) {
	if err := storage.ValidateUpload(payload, opts); err != nil {
		return "", err
	}

	_, err := s.client.UploadStream(ctx, s.container, opts.Key, bytes.NewReader(payload.Data), &azblob.UploadStreamOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &payload.ContentType},
	})
	if err != nil {
		return "", apperrors.UploadFailed("azure blob write rejected").WithVendor(err).WithDetail("key", opts.Key)
	}
	return s.blobClient(opts.Key).URL(), nil
}

// Download retrieves the full content of the blob at key.
func (s *Storage) Download(ctx context.Context, key string) (storage.Payload, error) {
	resp, err := s.client.DownloadStream(ctx, s.container, key, nil)
	if err != nil {
		e := apperrors.DownloadFailed(key).WithVendor(err)
		if isNotFound(err) {
			e = e.WithDetail("not_found", true)
		}
		return storage.Payload{}, e
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return storage.Payload{}, apperrors.DownloadFailed(key).WithVendor(err)
	}

	ct := ""
	if resp.ContentType != nil {
		ct = *resp.ContentType
	}
	return storage.Payload{Data: data, ContentType: ct}, nil
}

// Delete removes the blob at key. Deleting a missing blob fails with
// REMOVE_FAILED: the service reports 404 BlobNotFound rather than
// treating the delete as a no-op.
func (s *Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteBlob(ctx, s.container, key, nil)
	if err != nil {
		e := apperrors.RemoveFailed(key).WithVendor(err)
		if isNotFound(err) {
			e = e.WithDetail("not_found", true)
		}
		return e
	}
	return nil
}

// SignedUploadURL issues a write-scoped SAS URL for key, signed locally
// with the shared account key.
func (s *Storage) SignedUploadURL(ctx context.Context, key string, opts storage.SignOptions) (string, error) {
	if err := storage.ValidateSignedUpload(key, opts); err != nil {
		return "", err
	}
	return s.sasURL(key, sas.BlobPermissions{Create: true, Write: true}, opts.ExpiryOrDefault())
}

// SignedViewURL issues a read-scoped SAS URL for key.
func (s *Storage) SignedViewURL(ctx context.Context, key string, opts storage.SignOptions) (string, error) {
	if err := storage.ValidateView(key); err != nil {
		return "", err
	}
	return s.sasURL(key, sas.BlobPermissions{Read: true}, opts.ExpiryOrDefault())
}

func (s *Storage) sasURL(key string, perms sas.BlobPermissions, expiry time.Duration) (string, error) {
	u, err := s.blobClient(key).GetSASURL(perms, time.Now().UTC().Add(expiry), nil)
	if err != nil {
		return "", apperrors.SignURLFailed(key).WithVendor(err)
	}
	return u, nil
}

func (s *Storage) blobClient(key string) *blob.Client {
	return s.client.ServiceClient().NewContainerClient(s.container).NewBlobClient(key)
}

// compile-time check
var _ storage.Storage = (*Storage)(nil)
