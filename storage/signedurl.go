package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/kbukum/blobkit/errors"
)

const signedURLTimeout = 5 * time.Minute

var defaultSignedURLClient = &http.Client{Timeout: signedURLTimeout}

// SignedURLClient performs direct HTTP transfers against previously
// issued signed URLs. The transfer is a plain PUT carrying the payload's
// content type; it does not depend on which backend issued the URL, so
// every backend embeds this type to satisfy Storage.UploadToSignedURL.
//
// The zero value is ready to use and shares a default client with a
// 5 minute timeout.
type SignedURLClient struct {
	// HTTPClient overrides the HTTP client used for transfers. Nil means
	// the shared default.
	HTTPClient *http.Client
}

// UploadToSignedURL uploads payload to rawURL via HTTP PUT. The issuing
// backend enforces URL validity; an expired or tampered URL surfaces
// here as a rejected status.
func (c SignedURLClient) UploadToSignedURL(ctx context.Context, rawURL string, payload Payload) error {
	if payload.ContentType == "" {
		return apperrors.UploadFailed("content type is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, rawURL, bytes.NewReader(payload.Data))
	if err != nil {
		return apperrors.UploadFailed("invalid signed URL").WithVendor(err)
	}
	req.Header.Set("Content-Type", payload.ContentType)
	req.ContentLength = int64(len(payload.Data))

	resp, err := c.client().Do(req)
	if err != nil {
		return apperrors.UploadFailed("signed URL transfer failed").WithVendor(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		e := apperrors.UploadFailed("signed URL transfer rejected").
			WithDetail("status", resp.StatusCode)
		e.Vendor = strings.TrimSpace(string(body))
		return e
	}
	return nil
}

func (c SignedURLClient) client() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return defaultSignedURLClient
}
