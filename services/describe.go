package services

import (
	"context"
	"strings"

	"github.com/dcode-github/estate-envision/genai"
	"go.uber.org/zap"
)

// DescriptionService fronts the text generator. A nil generator means the
// feature is not configured.
type DescriptionService struct {
	generator genai.Generator
	logger    *zap.Logger
}

func NewDescriptionService(generator genai.Generator, logger *zap.Logger) *DescriptionService {
	return &DescriptionService{generator: generator, logger: logger}
}

func (s *DescriptionService) Generate(ctx context.Context, in genai.DescriptionInput) (string, error) {
	if s.generator == nil {
		return "", &Error{Kind: KindUnavailable, Message: "Description generation is not configured."}
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return "", validation("Title is required to generate a description.")
	}

	text, err := s.generator.GenerateDescription(ctx, in)
	if err != nil {
		s.logger.Error("error generating description", zap.String("title", in.Title), zap.Error(err))
		return "", &Error{Kind: KindUnavailable, Message: "Failed to generate description. Please try again.", Err: err}
	}
	return text, nil
}
