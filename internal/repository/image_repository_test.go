package repository

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"go-greenery-relay/pkg/models"
	"go-greenery-relay/pkg/validation"
)

type recordingFetcher struct {
	name   string
	scheme string
	calls  []string
}

func (f *recordingFetcher) FetchImage(ctx context.Context, imageURL string) (*models.ImagePayload, error) {
	f.calls = append(f.calls, imageURL)
	return &models.ImagePayload{Data: []byte(f.name), MimeType: "image/png"}, nil
}

func (f *recordingFetcher) Handles(u *url.URL) bool {
	return u.Scheme == f.scheme
}

func TestSourceImageRepository_Routing(t *testing.T) {
	httpFetcher := &recordingFetcher{name: "http"}
	s3Fetcher := &recordingFetcher{name: "s3", scheme: "s3"}
	validator := validation.NewURLValidatorWithOptions([]string{"http", "https", "s3"}, nil)
	repo := NewSourceImageRepository(validator, httpFetcher, s3Fetcher)

	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com/a.png", "http"},
		{"http://example.com/b.png", "http"},
		{"s3://imagery/c.png", "s3"},
	}

	for _, tt := range tests {
		payload, err := repo.FetchImage(context.Background(), tt.url)
		if err != nil {
			t.Fatalf("FetchImage(%q): unexpected error %v", tt.url, err)
		}
		if string(payload.Data) != tt.want {
			t.Errorf("FetchImage(%q) served by %q, want %q", tt.url, payload.Data, tt.want)
		}
	}

	if len(httpFetcher.calls) != 2 || len(s3Fetcher.calls) != 1 {
		t.Errorf("Unexpected call counts: http=%d s3=%d", len(httpFetcher.calls), len(s3Fetcher.calls))
	}
}

func TestSourceImageRepository_RejectsBeforeFetching(t *testing.T) {
	httpFetcher := &recordingFetcher{name: "http"}
	repo := NewSourceImageRepository(validation.NewURLValidator(), httpFetcher)

	for _, bad := range []string{"not-a-url", "ftp://example.com/a.png", "s3://imagery/c.png", "http://"} {
		_, err := repo.FetchImage(context.Background(), bad)
		if !errors.Is(err, ErrInvalidImageURL) {
			t.Errorf("FetchImage(%q): expected ErrInvalidImageURL, got %v", bad, err)
		}
	}
	if len(httpFetcher.calls) != 0 {
		t.Errorf("Expected no fetches, got %v", httpFetcher.calls)
	}
}

func TestSourceImageRepository_AllowedSchemeWithoutSource(t *testing.T) {
	httpFetcher := &recordingFetcher{name: "http"}
	validator := validation.NewURLValidatorWithOptions([]string{"http", "https", "s3"}, nil)
	repo := NewSourceImageRepository(validator, httpFetcher)

	_, err := repo.FetchImage(context.Background(), "s3://imagery/c.png")
	if !errors.Is(err, ErrNoSource) {
		t.Errorf("Expected ErrNoSource, got %v", err)
	}
}
