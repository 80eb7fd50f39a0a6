package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/VictorKimathi/medical-ai-assistant/internal/domain"
	"github.com/VictorKimathi/medical-ai-assistant/internal/observability"
)

type ImageAnalysisService struct {
	AI      domain.ImageAnalyzer
	Logger  domain.LoggingRepository
	Timeout time.Duration
}

func NewImageAnalysisService(ai domain.ImageAnalyzer, logger domain.LoggingRepository, timeout time.Duration) *ImageAnalysisService {
	return &ImageAnalysisService{AI: ai, Logger: logger, Timeout: timeout}
}

// Analyze checks the image and asks the model for exactly one analysis. The
// returned text is the model's output, unmodified.
func (s *ImageAnalysisService) Analyze(ctx context.Context, image domain.Image) (*domain.Analysis, error) {
	log := s.Logger.With(
		"service.name", "image_analysis",
		"http.request.id", observability.GetRequestID(ctx),
		"file.name", image.FileName,
		"file.mime_type", image.MimeType,
		"file.size", image.Size(),
		"event.category", []string{"process"})

	if image.Size() == 0 {
		log.Warn("image rejected", "event.action", "validate_image", "event.outcome", "failed", "error.message", domain.ErrEmptyImage.Message)
		return nil, domain.ErrEmptyImage
	}
	if !domain.IsAllowedMimeType(image.MimeType) {
		log.Warn("image rejected", "event.action", "validate_image", "event.outcome", "failed", "error.message", domain.ErrUnsupportedMimeType.Message)
		return nil, domain.ErrUnsupportedMimeType
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	log.Info("image analysis started", "event.type", []string{"start"}, "ai.model", s.AI.Model(), "ai.session_style", s.AI.Style())

	aiStartTime := time.Now()
	text, err := s.AI.AnalyzeImage(ctx, image)
	aiDurationTime := time.Since(aiStartTime)
	if err != nil {
		log.Error(
			"failed to analyze image by ai service",
			"event.action", "analyze_image_by_ai",
			"event.type", []string{"error", "end"},
			"event.outcome", "failed",
			"error.message", err.Error(),
			"event.duration", aiDurationTime.Nanoseconds())

		var de *domain.DomainError
		if errors.As(err, &de) {
			return nil, err
		}
		return nil, domain.NewDomainError(domain.ErrCodeExternal, "failed to analyze image with ai model", err)
	}

	log.Info(
		"image analyzed successfully",
		"event.type", []string{"end"},
		"event.outcome", "success",
		"response.length", len(text),
		"event.duration", aiDurationTime.Nanoseconds())

	return &domain.Analysis{Text: text, Model: s.AI.Model(), Style: s.AI.Style(), Duration: aiDurationTime}, nil
}
