package ideas

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo. It backs tests and local
// runs without a configured database.
type MemoryRepo struct {
	mu         sync.RWMutex
	nextIdeaID int64
	nextRecID  int64
	ideas      []Idea
	recs       map[int64][]Recommendation // ideaID -> recommendations
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		recs: make(map[int64][]Recommendation),
	}
}

// CreateIdea stores a new idea with the next id and the current time.
func (r *MemoryRepo) CreateIdea(ctx context.Context, title, description string) (Idea, error) {
	if err := ctx.Err(); err != nil {
		return Idea{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextIdeaID++
	idea := Idea{
		ID:          r.nextIdeaID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	r.ideas = append(r.ideas, idea)
	return idea, nil
}

// AddRecommendation stores a recommendation for an existing idea.
func (r *MemoryRepo) AddRecommendation(ctx context.Context, ideaID int64, text string) (Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return Recommendation{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ideaExistsLocked(ideaID) {
		return Recommendation{}, ErrNotFound
	}
	r.nextRecID++
	rec := Recommendation{
		ID:        r.nextRecID,
		IdeaID:    ideaID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	r.recs[ideaID] = append(r.recs[ideaID], rec)
	return rec, nil
}

// ListIdeas returns all ideas in insertion order.
func (r *MemoryRepo) ListIdeas(ctx context.Context) ([]Idea, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Idea, len(r.ideas))
	copy(out, r.ideas)
	return out, nil
}

// GetIdea returns the idea for the given id or ErrNotFound.
func (r *MemoryRepo) GetIdea(ctx context.Context, id int64) (Idea, error) {
	if err := ctx.Err(); err != nil {
		return Idea{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, idea := range r.ideas {
		if idea.ID == id {
			return idea, nil
		}
	}
	return Idea{}, ErrNotFound
}

// DeleteIdea removes the idea and all of its recommendations.
func (r *MemoryRepo) DeleteIdea(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, idea := range r.ideas {
		if idea.ID == id {
			r.ideas = append(r.ideas[:i], r.ideas[i+1:]...)
			delete(r.recs, id)
			return nil
		}
	}
	return ErrNotFound
}

// RecommendationsForIdea returns the idea's recommendations, newest first.
func (r *MemoryRepo) RecommendationsForIdea(ctx context.Context, ideaID int64) ([]Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	recs := r.recs[ideaID]
	out := make([]Recommendation, len(recs))
	// Stored in insertion order; reverse for newest-first.
	for i, rec := range recs {
		out[len(recs)-1-i] = rec
	}
	return out, nil
}

func (r *MemoryRepo) ideaExistsLocked(id int64) bool {
	for _, idea := range r.ideas {
		if idea.ID == id {
			return true
		}
	}
	return false
}

var _ Repo = (*MemoryRepo)(nil)
