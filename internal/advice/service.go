package advice

import (
	"context"
	"strings"

	"advisor-backend/internal/llm"
)

const defaultCategory = "general"

// Service contains business logic for advice generation.
type Service struct {
	LLM llm.Client
}

// Generate asks the model for advice on the given question. The category
// defaults to "general" and the question is echoed back verbatim.
func (s *Service) Generate(ctx context.Context, question, category string) (Response, error) {
	if strings.TrimSpace(category) == "" {
		category = defaultCategory
	}

	text, err := s.LLM.GenerateAdvice(ctx, llm.AdviceInput{
		Question: question,
		Category: category,
	})
	if err != nil {
		return Response{}, err
	}

	return Response{
		Advice:   text,
		Question: question,
	}, nil
}
