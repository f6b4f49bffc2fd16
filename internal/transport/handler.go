package transport

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-greenery-relay/internal/config"
	apperrors "go-greenery-relay/internal/errors"
	"go-greenery-relay/internal/logger"
	"go-greenery-relay/internal/observer"
	"go-greenery-relay/internal/service"
	"go-greenery-relay/pkg/models"
)

const (
	healthStatus    = "Backend is running"
	requestIDHeader = "X-Request-ID"
	jsonContentType = "application/json; charset=utf-8"
)

// NewHandler builds the gin engine serving the relay routes
func NewHandler(svc service.AnalysisService, metrics *observer.MetricsObserver, cfg *config.Config) http.Handler {
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		requestID(),
		accessLog(),
		cors.New(corsConfig(cfg.AllowedOrigins)),
		requestSizeLimiter(cfg.MaxRequestBodySize),
	)

	r.GET("/", healthCheck)
	r.POST("/analyze", analyzeImage(svc, cfg.RequestTimeout))
	if metrics != nil {
		r.GET("/metrics", metricsSnapshot(metrics))
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins:  origins,
		AllowWildcard: true,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
}

func analyzeImage(svc service.AnalysisService, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AnalysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				respondError(c, apperrors.NewPayloadTooLargeError(tooLarge.Limit))
				return
			}
			respondError(c, apperrors.NewValidationError(err))
			return
		}

		imageURL, ok := req.URL()
		if !ok {
			respondError(c, apperrors.NewValidationError(nil))
			return
		}

		ctx := c.Request.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		result, err := svc.Analyze(ctx, imageURL)
		if err != nil {
			respondError(c, err)
			return
		}

		c.Data(http.StatusOK, jsonContentType, result.Body)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: healthStatus})
}

func metricsSnapshot(metrics *observer.MetricsObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, metrics.GetMetrics())
	}
}

// Middleware and helper functions
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(requestIDHeader, id)
		c.Set("request_id", id)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
			"origin":     c.GetHeader("Origin"),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("Request completed with server error")
			return
		}
		entry.Info("Request completed")
	}
}

func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// respondError logs err with its full cause and writes only the public message
func respondError(c *gin.Context, err error) {
	code := apperrors.GetStatusCode(err)
	fields := logrus.Fields{
		"request_id":  c.GetString("request_id"),
		"status_code": code,
		"path":        c.Request.URL.Path,
		"ip":          c.ClientIP(),
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		fields["error_type"] = appErr.Type
	}

	switch {
	case appErr != nil && appErr.Type == apperrors.ErrorTypeAnalysis && appErr.Cause != nil:
		logger.WithStack(appErr.Cause).WithFields(fields).Error("Analysis failed")
	case code >= http.StatusInternalServerError:
		logger.WithError(err).WithFields(fields).Error("Request failed")
	default:
		logger.WithError(err).WithFields(fields).Warn("Request rejected")
	}

	c.AbortWithStatusJSON(code, models.ErrorResponse{Error: apperrors.PublicMessage(err)})
}
