package provider

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"go-greenery-relay/pkg/models"
)

var _ Provider = (*GeminiProvider)(nil)

// GeminiProvider calls the Gemini API generateContent endpoint
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// GeminiOptions configures NewGeminiProvider. BaseURL is only set to reach a proxy or a test server.
type GeminiOptions struct {
	APIKey  string
	Model   string
	BaseURL string
}

func NewGeminiProvider(ctx context.Context, opts GeminiOptions) (*GeminiProvider, error) {
	cfg := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &GeminiProvider{client: client, model: opts.Model}, nil
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}

func (g *GeminiProvider) GenerateContent(ctx context.Context, prompt string, image *models.ImagePayload) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(image.Data, image.MimeType),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
