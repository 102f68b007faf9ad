package ideas

import "context"

// Repo defines persistence operations for ideas and their recommendations.
type Repo interface {
	CreateIdea(ctx context.Context, title, description string) (Idea, error)
	AddRecommendation(ctx context.Context, ideaID int64, text string) (Recommendation, error)
	ListIdeas(ctx context.Context) ([]Idea, error)
	GetIdea(ctx context.Context, id int64) (Idea, error)
	DeleteIdea(ctx context.Context, id int64) error
	RecommendationsForIdea(ctx context.Context, ideaID int64) ([]Recommendation, error)
}
