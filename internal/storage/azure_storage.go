package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	"go-greenery-relay/pkg/models"
)

// AzureImageFetcher downloads blobs from a single storage account using a shared key,
// so images in private containers can be analyzed by their plain blob URL.
type AzureImageFetcher struct {
	client *azblob.Client
	host   string
}

func NewAzureImageFetcher(accountName string, accountKey string) (*AzureImageFetcher, error) {
	credential, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, fmt.Errorf("invalid azure credential: %w", err)
	}

	host := fmt.Sprintf("%s.blob.core.windows.net", accountName)
	client, err := azblob.NewClientWithSharedKeyCredential("https://"+host, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("azure client: %w", err)
	}

	return &AzureImageFetcher{client: client, host: host}, nil
}

// Handles reports whether imageURL points into this fetcher's storage account
func (s *AzureImageFetcher) Handles(u *url.URL) bool {
	return u.Scheme == "https" && strings.EqualFold(u.Hostname(), s.host)
}

func (s *AzureImageFetcher) FetchImage(ctx context.Context, blobURL string) (*models.ImagePayload, error) {
	containerName, blobName, err := splitBlobPath(blobURL)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.DownloadStream(ctx, containerName, blobName, nil)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob: %w", err)
	}

	contentType := ""
	if resp.ContentType != nil {
		contentType = *resp.ContentType
	}
	return &models.ImagePayload{Data: data, MimeType: ResolveMimeType(contentType)}, nil
}

// splitBlobPath turns /container/dir/name.png into ("container", "dir/name.png")
func splitBlobPath(blobURL string) (string, string, error) {
	parsedURL, err := url.Parse(blobURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid blob URL: %w", err)
	}
	path := strings.TrimPrefix(parsedURL.Path, "/")
	containerName, blobName, ok := strings.Cut(path, "/")
	if !ok || containerName == "" || blobName == "" {
		return "", "", fmt.Errorf("blob URL must be https://<account>.blob.core.windows.net/<container>/<blob>: %q", blobURL)
	}
	return containerName, blobName, nil
}
