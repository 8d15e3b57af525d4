package azure

import (
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// isNotFound reports whether err is the vendor's missing-blob failure.
// Only the classification is used; the vendor error itself stays inside
// this package.
func isNotFound(err error) bool {
	return bloberror.HasCode(err,
		bloberror.BlobNotFound,
		bloberror.ContainerNotFound,
		bloberror.ResourceNotFound,
	)
}
