package gcs

import (
	"errors"
	"net/http"

	gcstorage "cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
)

// isNotFound reports whether err is the vendor's missing-object failure.
// Only the classification is used; the vendor error itself stays inside
// this package.
func isNotFound(err error) bool {
	if errors.Is(err, gcstorage.ErrObjectNotExist) || errors.Is(err, gcstorage.ErrBucketNotExist) {
		return true
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusNotFound
	}
	return false
}
