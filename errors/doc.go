// Package errors provides the unified failure taxonomy for blobkit.
//
// Every storage backend wraps vendor-level failures into an AppError
// carrying a machine-readable code, a human-readable message, and the
// originating vendor message. Vendor error values themselves never
// cross the storage contract boundary; callers branch on the code:
//
//	payload, err := store.Download(ctx, key)
//	if apperrors.IsCode(err, apperrors.ErrCodeDownloadFailed) {
//	    ...
//	}
package errors
