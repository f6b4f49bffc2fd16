package service

import (
	"context"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	apperrors "go-greenery-relay/internal/errors"
	"go-greenery-relay/internal/logger"
	"go-greenery-relay/internal/observer"
	"go-greenery-relay/internal/prompt"
	"go-greenery-relay/internal/provider"
	"go-greenery-relay/internal/repository"
	"go-greenery-relay/internal/strategy"
	"go-greenery-relay/pkg/models"
)

// AnalysisService runs one greenery assessment per call: fetch, infer, unwrap, respond.
// Nothing is cached between calls.
type AnalysisService interface {
	Analyze(ctx context.Context, imageURL string) (*models.Analysis, error)
}

// Options holds the collaborators and per-step timeouts of the pipeline
type Options struct {
	Repository      repository.ImageRepository
	Provider        provider.Provider
	Strategy        strategy.ResultStrategy
	Events          observer.Subject
	Prompt          string
	FetchTimeout    time.Duration
	AnalysisTimeout time.Duration
}

type analysisService struct {
	repo            repository.ImageRepository
	provider        provider.Provider
	strategy        strategy.ResultStrategy
	events          observer.Subject
	prompt          string
	fetchTimeout    time.Duration
	analysisTimeout time.Duration
}

// NewAnalysisService creates the pipeline. A blank prompt falls back to prompt.GreeneryAnalysis,
// a nil strategy to pass-through and a zero timeout to no step deadline.
func NewAnalysisService(opts Options) AnalysisService {
	s := &analysisService{
		repo:            opts.Repository,
		provider:        opts.Provider,
		strategy:        opts.Strategy,
		events:          opts.Events,
		prompt:          opts.Prompt,
		fetchTimeout:    opts.FetchTimeout,
		analysisTimeout: opts.AnalysisTimeout,
	}
	if s.prompt == "" {
		s.prompt = prompt.GreeneryAnalysis
	}
	if s.strategy == nil {
		s.strategy = strategy.NewPassThroughStrategy()
	}
	if s.events == nil {
		s.events = observer.NewEventPublisher()
	}
	return s
}

func (s *analysisService) Analyze(ctx context.Context, imageURL string) (*models.Analysis, error) {
	start := time.Now()
	requestID := logger.RequestIDFromContext(ctx)
	s.publish(ctx, observer.AnalysisEvent{EventType: observer.AnalysisStarted, RequestID: requestID, ImageURL: imageURL})

	image, err := s.fetch(ctx, imageURL)
	if err != nil {
		appErr := apperrors.NewFetchError(imageURL, err)
		s.publish(ctx, observer.AnalysisEvent{
			EventType:      observer.ImageFetchFailed,
			RequestID:      requestID,
			ImageURL:       imageURL,
			ProcessingTime: time.Since(start),
			ErrorType:      string(appErr.Type),
			ErrorMessage:   err.Error(),
		})
		return nil, appErr
	}
	s.publish(ctx, observer.AnalysisEvent{
		EventType: observer.ImageFetched,
		RequestID: requestID,
		ImageURL:  imageURL,
		Success:   true,
		Metadata:  map[string]interface{}{"image_bytes": len(image.Data), "mime_type": image.MimeType},
	})

	body, err := s.infer(ctx, image)
	if err != nil {
		appErr := apperrors.NewAnalysisError(err)
		s.publish(ctx, observer.AnalysisEvent{
			EventType:      observer.AnalysisFailed,
			RequestID:      requestID,
			ImageURL:       imageURL,
			ProcessingTime: time.Since(start),
			ErrorType:      string(appErr.Type),
			ErrorMessage:   err.Error(),
			Metadata:       map[string]interface{}{"provider": s.provider.Name()},
		})
		return nil, appErr
	}

	s.publish(ctx, observer.AnalysisEvent{
		EventType:      observer.AnalysisCompleted,
		RequestID:      requestID,
		ImageURL:       imageURL,
		ProcessingTime: time.Since(start),
		Success:        true,
		Metadata: map[string]interface{}{
			"provider":       s.provider.Name(),
			"strategy":       s.strategy.GetStrategyName(),
			"prompt_version": prompt.Version,
		},
	})
	return &models.Analysis{Body: body}, nil
}

func (s *analysisService) fetch(ctx context.Context, imageURL string) (*models.ImagePayload, error) {
	ctx, cancel := withOptionalTimeout(ctx, s.fetchTimeout)
	defer cancel()
	return s.repo.FetchImage(ctx, imageURL)
}

// infer calls the provider and turns its text into the response body.
// Errors carry a stack trace from this point for the server log.
func (s *analysisService) infer(ctx context.Context, image *models.ImagePayload) ([]byte, error) {
	ctx, cancel := withOptionalTimeout(ctx, s.analysisTimeout)
	defer cancel()

	text, err := s.provider.GenerateContent(ctx, s.prompt, image)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "%s provider call", s.provider.Name())
	}

	body, err := UnwrapJSON(text)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"request_id": logger.RequestIDFromContext(ctx),
			"provider":   s.provider.Name(),
			"raw_text":   text,
		}).Debug("Provider output could not be parsed")
		return nil, pkgerrors.Wrap(err, "unwrap provider output")
	}

	body, err = s.strategy.Apply(body)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "%s rejected provider output", s.strategy.GetStrategyName())
	}
	return body, nil
}

func (s *analysisService) publish(ctx context.Context, event observer.AnalysisEvent) {
	s.events.NotifyObservers(ctx, event)
}

func withOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
