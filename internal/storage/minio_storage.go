package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"go-greenery-relay/pkg/models"
)

// MinioScheme is the URL scheme served by MinioImageFetcher
const MinioScheme = "s3"

// MinioImageFetcher reads s3://bucket/key objects from a MinIO or S3-compatible endpoint
type MinioImageFetcher struct {
	client *minio.Client
}

func NewMinioImageFetcher(endpoint, region, accessKey, secretKey string, useSSL bool) (*MinioImageFetcher, error) {
	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	return &MinioImageFetcher{client: cli}, nil
}

// Handles reports whether u uses the s3 scheme
func (s *MinioImageFetcher) Handles(u *url.URL) bool {
	return u.Scheme == MinioScheme
}

func (s *MinioImageFetcher) FetchImage(ctx context.Context, objectURL string) (*models.ImagePayload, error) {
	bucket, key, err := splitObjectURL(objectURL)
	if err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer obj.Close()

	// GetObject is lazy; Stat surfaces missing objects and access errors
	info, err := obj.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat object: %w", err)
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read object: %w", err)
	}
	return &models.ImagePayload{Data: data, MimeType: ResolveMimeType(info.ContentType)}, nil
}

func splitObjectURL(objectURL string) (string, string, error) {
	u, err := url.Parse(objectURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid object URL: %w", err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Scheme != MinioScheme || u.Host == "" || key == "" {
		return "", "", fmt.Errorf("object URL must be s3://<bucket>/<key>: %q", objectURL)
	}
	return u.Host, key, nil
}
