package savedadvice

import (
	"context"

	"advisor-backend/internal/ideas"
)

const deletedMessage = "Saved advice deleted successfully"

// Service contains business logic for saved advice. Records are stored as
// ideas: the question as the title, the advice text as the description.
type Service struct {
	Repo ideas.Repo
}

// Create stores a question/advice pair and returns the saved record.
func (s *Service) Create(ctx context.Context, question, advice string) (SavedAdvice, error) {
	idea, err := s.Repo.CreateIdea(ctx, question, advice)
	if err != nil {
		return SavedAdvice{}, err
	}
	return toResponse(idea), nil
}

// List returns every stored record in storage order.
func (s *Service) List(ctx context.Context) ([]SavedAdvice, error) {
	all, err := s.Repo.ListIdeas(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SavedAdvice, 0, len(all))
	for _, idea := range all {
		out = append(out, toResponse(idea))
	}
	return out, nil
}

// Get returns one record or ideas.ErrNotFound, passed through untouched.
func (s *Service) Get(ctx context.Context, id int64) (SavedAdvice, error) {
	idea, err := s.Repo.GetIdea(ctx, id)
	if err != nil {
		return SavedAdvice{}, err
	}
	return toResponse(idea), nil
}

// Delete removes one record and returns a confirmation payload. A missing id
// surfaces as ideas.ErrNotFound.
func (s *Service) Delete(ctx context.Context, id int64) (DeleteResponse, error) {
	if err := s.Repo.DeleteIdea(ctx, id); err != nil {
		return DeleteResponse{}, err
	}
	return DeleteResponse{
		Message: deletedMessage,
		ID:      id,
	}, nil
}
