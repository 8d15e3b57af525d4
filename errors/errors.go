package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified storage error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried by the caller.
	Retryable bool `json:"retryable"`
	// Vendor is the originating vendor message, where available. Only the
	// message string is retained; the vendor error value is discarded so
	// vendor types stay behind the adapter boundary.
	Vendor string `json:"vendor,omitempty"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Vendor != "" {
		return fmt.Sprintf("%s: %s (vendor: %s)", e.Code, e.Message, e.Vendor)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithVendor records the originating vendor message and returns the receiver.
func (e *AppError) WithVendor(err error) *AppError {
	if err != nil {
		e.Vendor = err.Error()
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// IsCode reports whether err is (or wraps) an AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var ae *AppError
	if stderrors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

// CodeOf returns the error code of err, or "" if err is not an AppError.
func CodeOf(err error) ErrorCode {
	var ae *AppError
	if stderrors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// --- Common Error Constructors ---

// UploadFailed creates a new AppError for a failed object upload.
func UploadFailed(reason string) *AppError {
	return &AppError{
		Code: ErrCodeUploadFailed, Message: fmt.Sprintf("Upload failed: %s", reason),
		Retryable: true,
	}
}

// DownloadFailed creates a new AppError for a failed object download.
func DownloadFailed(key string) *AppError {
	return &AppError{
		Code: ErrCodeDownloadFailed, Message: fmt.Sprintf("Download failed for object %q.", key),
		Retryable: true,
		Details:   map[string]any{"key": key},
	}
}

// RemoveFailed creates a new AppError for a failed object delete.
func RemoveFailed(key string) *AppError {
	return &AppError{
		Code: ErrCodeRemoveFailed, Message: fmt.Sprintf("Remove failed for object %q.", key),
		Retryable: true,
		Details:   map[string]any{"key": key},
	}
}

// SignURLFailed creates a new AppError for a failed signed URL issuance.
func SignURLFailed(key string) *AppError {
	return &AppError{
		Code: ErrCodeSignURLFailed, Message: fmt.Sprintf("Could not issue signed URL for object %q.", key),
		Retryable: true,
		Details:   map[string]any{"key": key},
	}
}

// UnsupportedBackend creates a new AppError for an unknown provider identifier.
func UnsupportedBackend(provider string) *AppError {
	return &AppError{
		Code: ErrCodeUnsupportedBackend, Message: fmt.Sprintf("Unsupported storage backend %q.", provider),
		Retryable: false,
		Details:   map[string]any{"provider": provider},
	}
}

// InvalidConfig creates a new AppError for missing or malformed configuration.
func InvalidConfig(reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidConfig, Message: fmt.Sprintf("Invalid storage configuration: %s", reason),
		Retryable: false,
	}
}
