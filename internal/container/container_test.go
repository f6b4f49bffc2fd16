package container

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"go-greenery-relay/internal/config"
)

func TestNewContainer_ServesHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		RequestTimeout:     time.Second,
		MaxRequestBodySize: 1024,
		AllowedOrigins:     []string{"https://urban-infra.vercel.app"},
		Provider:           config.ProviderGemini,
		GeminiAPIKey:       "test-key",
		GeminiModel:        "gemini-1.5-flash",
	}

	c, err := NewContainer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer c.Close()

	if c.Provider().Name() != "gemini" {
		t.Errorf("Expected gemini provider, got %s", c.Provider().Name())
	}

	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestNewContainer_UnknownProvider(t *testing.T) {
	cfg := &config.Config{Provider: "bard", AllowedOrigins: []string{"https://urban-infra.vercel.app"}}

	if _, err := NewContainer(context.Background(), cfg); err == nil {
		t.Error("Expected error for unknown provider")
	}
}
