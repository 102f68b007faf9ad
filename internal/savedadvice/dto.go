package savedadvice

import (
	"time"

	"advisor-backend/internal/ideas"
)

// CreateRequest is the body of a save call.
type CreateRequest struct {
	Question string `json:"question"`
	Advice   string `json:"advice"`
}

// SavedAdvice is the outward-facing representation of a stored record.
type SavedAdvice struct {
	ID        int64  `json:"id"`
	Question  string `json:"question"`
	Advice    string `json:"advice"`
	CreatedAt string `json:"created_at"`
}

// DeleteResponse confirms a delete.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

func toResponse(idea ideas.Idea) SavedAdvice {
	return SavedAdvice{
		ID:        idea.ID,
		Question:  idea.Title,
		Advice:    idea.Description,
		CreatedAt: idea.CreatedAt.Format(time.RFC3339),
	}
}
