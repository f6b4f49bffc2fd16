package storage

import (
	"net/url"
	"testing"
)

func TestSplitBlobPath(t *testing.T) {
	tests := []struct {
		url           string
		wantContainer string
		wantBlob      string
		wantErr       bool
	}{
		{"https://acct.blob.core.windows.net/tiles/nyc/12.png", "tiles", "nyc/12.png", false},
		{"https://acct.blob.core.windows.net/tiles/a.png?sv=2024", "tiles", "a.png", false},
		{"https://acct.blob.core.windows.net/tiles", "", "", true},
		{"https://acct.blob.core.windows.net/", "", "", true},
	}

	for _, tt := range tests {
		container, blob, err := splitBlobPath(tt.url)
		if tt.wantErr {
			if err == nil {
				t.Errorf("splitBlobPath(%q): expected error", tt.url)
			}
			continue
		}
		if err != nil {
			t.Errorf("splitBlobPath(%q): unexpected error %v", tt.url, err)
			continue
		}
		if container != tt.wantContainer || blob != tt.wantBlob {
			t.Errorf("splitBlobPath(%q) = (%q, %q), want (%q, %q)", tt.url, container, blob, tt.wantContainer, tt.wantBlob)
		}
	}
}

func TestSplitObjectURL(t *testing.T) {
	bucket, key, err := splitObjectURL("s3://imagery/2024/tile.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bucket != "imagery" || key != "2024/tile.jpg" {
		t.Errorf("got (%q, %q)", bucket, key)
	}

	for _, bad := range []string{"s3://imagery", "s3:///key", "https://imagery/key"} {
		if _, _, err := splitObjectURL(bad); err == nil {
			t.Errorf("splitObjectURL(%q): expected error", bad)
		}
	}
}

func TestFetchers_Handles(t *testing.T) {
	azure, err := NewAzureImageFetcher("acct", "a2V5")
	if err != nil {
		t.Fatalf("NewAzureImageFetcher: %v", err)
	}
	minioFetcher, err := NewMinioImageFetcher("localhost:9000", "", "access", "secret", false)
	if err != nil {
		t.Fatalf("NewMinioImageFetcher: %v", err)
	}

	tests := []struct {
		raw       string
		wantAzure bool
		wantMinio bool
	}{
		{"https://acct.blob.core.windows.net/c/b.png", true, false},
		{"https://ACCT.blob.core.windows.net/c/b.png", true, false},
		{"http://acct.blob.core.windows.net/c/b.png", false, false},
		{"https://other.blob.core.windows.net/c/b.png", false, false},
		{"s3://bucket/key.png", false, true},
		{"https://example.com/a.png", false, false},
	}

	for _, tt := range tests {
		u, err := url.Parse(tt.raw)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.raw, err)
		}
		if got := azure.Handles(u); got != tt.wantAzure {
			t.Errorf("azure.Handles(%q) = %v", tt.raw, got)
		}
		if got := minioFetcher.Handles(u); got != tt.wantMinio {
			t.Errorf("minio.Handles(%q) = %v", tt.raw, got)
		}
	}
}
