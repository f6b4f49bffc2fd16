package storage

import (
	"context"
	"errors"
	"strings"

	"go-greenery-relay/pkg/models"
)

// DefaultMimeType is declared for images whose source gives no usable Content-Type
const DefaultMimeType = "image/png"

// ErrUnexpectedStatus is wrapped by fetchers when the source answers with a non-2xx status
var ErrUnexpectedStatus = errors.New("unexpected status")

// ImageFetcher downloads an image and reports its declared media type
type ImageFetcher interface {
	FetchImage(ctx context.Context, imageURL string) (*models.ImagePayload, error)
}

// ResolveMimeType keeps a declared Content-Type only when it names an image.
// The bytes themselves are never sniffed.
func ResolveMimeType(contentType string) string {
	if strings.HasPrefix(contentType, "image/") {
		return contentType
	}
	return DefaultMimeType
}
