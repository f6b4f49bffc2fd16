package provider

import (
	"context"
	"errors"

	"go-greenery-relay/pkg/models"
)

// ErrEmptyResponse is returned when the provider answers without any text
var ErrEmptyResponse = errors.New("provider returned no text")

// Provider is a multimodal inference API. It receives the prompt followed by the
// image, in that order, and returns the model's text answer unmodified.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Name returns a short label for logs, e.g. "gemini"
	Name() string

	GenerateContent(ctx context.Context, prompt string, image *models.ImagePayload) (string, error)
}
