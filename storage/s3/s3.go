// Package s3 implements the blobkit storage contract on Amazon S3 and
// S3-compatible services (MinIO, etc.).
//
// Signed URLs are computed client-side by the SDK's presigner, without a
// network round trip. Deleting a missing key succeeds: S3 DeleteObject
// is a no-op for nonexistent objects.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	apperrors "github.com/kbukum/blobkit/errors"
	"github.com/kbukum/blobkit/logger"
	"github.com/kbukum/blobkit/storage"
)

func init() {
	storage.RegisterFactory(storage.ProviderS3, func(cfg storage.Config, providerCfg any, log *logger.Logger) (storage.Storage, error) {
		c := &Config{}
		if providerCfg != nil {
			pc, ok := providerCfg.(*Config)
			if !ok {
				return nil, apperrors.InvalidConfig(fmt.Sprintf("s3: expected *s3.Config, got %T", providerCfg))
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

// Storage implements storage.Storage using Amazon S3 (or S3-compatible services).
type Storage struct {
	storage.SignedURLClient

	client  *awss3.Client
	presign *awss3.PresignClient
	bucket  string
}

// NewStorage creates a new S3 storage client from the given config.
func NewStorage(ctx context.Context, cfg *Config) (*Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, apperrors.InvalidConfig("s3: load aws config").WithVendor(err)
	}

	var s3Opts []func(*awss3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *awss3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	} else if cfg.ForcePathStyle {
		s3Opts = append(s3Opts, func(o *awss3.Options) {
			o.UsePathStyle = true
		})
	}

	client := awss3.NewFromConfig(awsCfg, s3Opts...)
	return &Storage{
		client:  client,
		presign: awss3.NewPresignClient(client),
		bucket:  cfg.Bucket,
	}, nil
}

// Upload stores payload under opts.Key and returns the object's
// endpoint-resolved URL.
func (s *Storage) Upload(ctx context.Context, payload storage.Payload, opts storage.UploadOptions) (string, error) {
	if err := storage.ValidateUpload(payload, opts); err != nil {
		return "", err
	}

	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(opts.Key),
		Body:        bytes.NewReader(payload.Data),
		ContentType: aws.String(payload.ContentType),
	})
	if err != nil {
		return "", apperrors.UploadFailed("s3 write rejected").WithVendor(err).WithDetail("key", opts.Key)
	}
	return s.objectURL(opts.Key), nil
}

// Download retrieves the full content of the object at key.
func (s *Storage) Download(ctx context.Context, key string) (storage.Payload, error) {
	out, err := s.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		e := apperrors.DownloadFailed(key).WithVendor(err)
		if isNotFound(err) {
			e = e.WithDetail("not_found", true)
		}
		return storage.Payload{}, e
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return storage.Payload{}, apperrors.DownloadFailed(key).WithVendor(err)
	}
	return storage.Payload{
		Data:        data,
		ContentType: aws.ToString(out.ContentType),
	}, nil
}

// Delete removes the object at key. Deleting a missing key succeeds;
// S3 DeleteObject does not distinguish it from a real delete.
func (s *Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return apperrors.RemoveFailed(key).WithVendor(err)
	}
	return nil
}

// SignedUploadURL issues a write-scoped presigned URL for key. Signing
// happens client-side; no network round trip occurs.
func (s *Storage) SignedUploadURL(ctx context.Context, key string, opts storage.SignOptions) (string, error) {
	if err := storage.ValidateSignedUpload(key, opts); err != nil {
		return "", err
	}

	req, err := s.presign.PresignPutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(opts.ContentType),
	}, awss3.WithPresignExpires(opts.ExpiryOrDefault()))
	if err != nil {
		return "", apperrors.SignURLFailed(key).WithVendor(err)
	}
	return req.URL, nil
}

// SignedViewURL issues a read-scoped presigned URL for key. S3 has no
// separate read-URL primitive; this is the same presigner with GET
// semantics.
func (s *Storage) SignedViewURL(ctx context.Context, key string, opts storage.SignOptions) (string, error) {
	if err := storage.ValidateView(key); err != nil {
		return "", err
	}

	req, err := s.presign.PresignGetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, awss3.WithPresignExpires(opts.ExpiryOrDefault()))
	if err != nil {
		return "", apperrors.SignURLFailed(key).WithVendor(err)
	}
	return req.URL, nil
}

func (s *Storage) objectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.resolveEndpoint(), s.bucket, key)
}

func (s *Storage) resolveEndpoint() string {
	opts := s.client.Options()
	if opts.BaseEndpoint != nil && *opts.BaseEndpoint != "" {
		return *opts.BaseEndpoint
	}
	return fmt.Sprintf("https://s3.%s.amazonaws.com", opts.Region)
}

// compile-time check
var _ storage.Storage = (*Storage)(nil)
