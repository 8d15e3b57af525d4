// Package storage provides a multi-backend object storage abstraction
// with pluggable cloud backends.
//
// It defines one capability contract (upload, download, delete, signed
// upload URL, signed view URL, direct upload to a signed URL) that every
// backend satisfies identically in signature and error semantics.
//
// # Backends
//
//   - storage/s3: Amazon S3 and S3-compatible storage (MinIO, etc.)
//   - storage/azure: Azure Blob Storage
//   - storage/gcs: Google Cloud Storage
//   - storage/local: Local filesystem storage for development/testing
//
// Backends register themselves when imported:
//
//	import _ "github.com/kbukum/blobkit/storage/s3"
//
// # Selection
//
// A Selector binds a provider identifier to exactly one constructed
// backend at construction time; callers then interact purely through the
// Storage interface and never branch on backend type again:
//
//	storage:
//	  provider: "s3"
//
//	sel, err := storage.NewSelector(cfg, &s3.Config{Bucket: "my-bucket"}, log)
//	store := sel.Service()
//
// # Errors
//
// Every backend failure is wrapped into an errors.AppError with one code
// per operation family. No vendor SDK error type crosses this boundary.
// Nothing is retried inside this package; the caller is the retry
// authority.
package storage
