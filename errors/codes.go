package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Operation failures, one code per operation family.
const (
	// ErrCodeUploadFailed indicates an object write was rejected or the
	// transfer failed. Also returned for invalid upload input (missing key
	// or content type).
	ErrCodeUploadFailed ErrorCode = "UPLOAD_FAILED"
	// ErrCodeDownloadFailed indicates the object does not exist or the
	// transfer failed.
	ErrCodeDownloadFailed ErrorCode = "DOWNLOAD_FAILED"
	// ErrCodeRemoveFailed indicates an object delete failed at the backend.
	ErrCodeRemoveFailed ErrorCode = "REMOVE_FAILED"
	// ErrCodeSignURLFailed indicates a signed URL could not be issued.
	ErrCodeSignURLFailed ErrorCode = "SIGN_URL_FAILED"
)

// Construction-time failures.
const (
	// ErrCodeUnsupportedBackend indicates the requested provider matches
	// no registered backend.
	ErrCodeUnsupportedBackend ErrorCode = "UNSUPPORTED_BACKEND"
	// ErrCodeInvalidConfig indicates required backend configuration is
	// missing or malformed.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeUploadFailed:   true,
	ErrCodeDownloadFailed: true,
	ErrCodeRemoveFailed:   true,
	ErrCodeSignURLFailed:  true,
}

// IsRetryableCode returns true if the error code indicates a failure the
// caller may retry. The core itself never retries; the caller is the
// retry authority.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
